// Package worker runs per-game work on a fixed pool of goroutines and
// hands results back in input order.
package worker

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesstree-go/internal/game"
)

// WorkItem is one imported game. Index is its position in the input,
// counting from 0.
type WorkItem struct {
	Game  *game.Game
	Index int
}

// ProcessResult is what a worker produced for one game.
type ProcessResult struct {
	Game      *game.Game
	Index     int
	Skipped   bool   // Game did not pass the filters
	Positions int    // Positions recorded in the index
	Output    []byte // Rendered game, written in input order
	Error     error
}

// ProcessFunc processes one game. A game is owned by exactly one worker
// while it runs.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a pool of workers for parallel game processing.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool. processFunc is required; by default the
// pool has 1 worker and a buffer of 10 items.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Items that arrive after ctx is done
// or the pool is stopped are drained without processing.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() || ctx.Err() != nil {
			continue // Drain channel without processing
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit queues a work item, blocking while the buffer is full. It returns
// the context error if ctx is done first.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// TrySubmit attempts to submit a work item without blocking.
// Returns false if the work channel is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// InOrder reads results until the channel closes and calls emit for each
// in Index order, holding back results that arrive early. Indexes must be
// 0, 1, 2, ... with no gaps for everything to be emitted; results still
// held when the channel closes are emitted in ascending order. The first
// error from emit stops emission, but the channel is still drained.
func InOrder(results <-chan ProcessResult, emit func(ProcessResult) error) error {
	pending := make(map[int]ProcessResult)
	next := 0
	var err error

	send := func(r ProcessResult) {
		if err == nil {
			err = emit(r)
		}
	}

	for r := range results {
		pending[r.Index] = r
		for {
			ready, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			send(ready)
			next++
		}
	}

	if len(pending) > 0 {
		rest := make([]int, 0, len(pending))
		for i := range pending {
			rest = append(rest, i)
		}
		slices.Sort(rest)
		for _, i := range rest {
			send(pending[i])
		}
	}
	return err
}
