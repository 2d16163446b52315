// processor.go - Parallel import of PGN input and in-order output
package main

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/config"
	"github.com/lgbarn/chesstree-go/internal/eco"
	"github.com/lgbarn/chesstree-go/internal/game"
	"github.com/lgbarn/chesstree-go/internal/hashing"
	"github.com/lgbarn/chesstree-go/internal/index"
	"github.com/lgbarn/chesstree-go/internal/output"
	"github.com/lgbarn/chesstree-go/internal/parser"
	"github.com/lgbarn/chesstree-go/internal/processing"
	"github.com/lgbarn/chesstree-go/internal/worker"
)

// importStats counts what an import did.
type importStats struct {
	games       int
	output      int
	skipped     int
	duplicates  int
	withErrors  int
	classified  int
	positions   int
	failedFiles int
}

// importer parses PGN input, hands each game to a worker pool and writes
// the results in input order. The store and the duplicate detector are the
// only state shared between workers.
type importer struct {
	cfg        *config.Config
	store      index.Store
	detector   *hashing.ThreadSafeDuplicateDetector
	classifier *eco.ECOClassifier
	filter     gameFilter
	split      bool // Write each line of the tree as its own game
	validate   bool // Log the problems processing.ValidateGame finds
	out        *bufio.Writer
	json       *output.JSONWriter
	stats      importStats

	// gameBase numbers games across input files for the index.
	gameBase int
}

// newImporter creates an importer writing to cfg.OutputFile. store may be
// nil to disable indexing.
func newImporter(cfg *config.Config, store index.Store) *importer {
	im := &importer{
		cfg:   cfg,
		store: store,
		out:   bufio.NewWriter(cfg.OutputFile),
	}
	if cfg.Duplicate.Suppress {
		im.detector = hashing.NewThreadSafeDuplicateDetector(false, 0)
	}
	if cfg.Output.JSONFormat {
		im.json = output.NewJSONWriter(im.out, cfg)
	}
	return im
}

// importFiles imports each named file, or stdin when there are none. A file
// that cannot be opened is logged and skipped.
func (im *importer) importFiles(ctx context.Context, filenames []string) error {
	if len(filenames) == 0 {
		if err := im.importReader(ctx, os.Stdin, "stdin"); err != nil {
			return err
		}
		return im.finish()
	}

	for _, filename := range filenames {
		if ctx.Err() != nil {
			break
		}
		file, err := os.Open(filename) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			im.cfg.Logger.Error().Err(err).Str("file", filename).Msg("cannot open input")
			im.stats.failedFiles++
			continue
		}
		err = im.importReader(ctx, file, filename)
		file.Close() //nolint:errcheck,gosec // G104: read-only file
		if err != nil {
			return err
		}
	}
	return im.finish()
}

// importReader imports every game of one input.
func (im *importer) importReader(ctx context.Context, r io.Reader, name string) error {
	im.cfg.CurrentInputFile = name
	p := parser.NewParser(r, im.cfg)

	pool := worker.NewPool(im.process,
		worker.WithWorkers(im.cfg.Import.WorkerCount()),
		worker.WithBufferSize(4*im.cfg.Import.WorkerCount()),
	)
	pool.Start(ctx)

	emitted := make(chan error, 1)
	go func() {
		emitted <- worker.InOrder(pool.Results(), im.emit)
	}()

	var parseErr error
	n := 0
	for {
		g, err := p.ParseGame()
		if err != nil {
			parseErr = err
			break
		}
		if g == nil {
			break
		}
		if err := pool.Submit(ctx, worker.WorkItem{Game: g, Index: n}); err != nil {
			parseErr = err
			break
		}
		n++
	}
	pool.Close()

	emitErr := <-emitted
	im.gameBase += n
	im.cfg.Logger.Info().Str("file", name).Int("games", n).Msg("imported")

	if emitErr != nil {
		return emitErr
	}
	return parseErr
}

// process runs on a worker: it classifies and filters the game, records it
// in the index and renders it as PGN.
func (im *importer) process(_ context.Context, item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Game: item.Game, Index: item.Index}

	if im.classifier != nil {
		im.classifier.AddECOTags(item.Game)
	}
	if !im.filter.matches(item.Game) {
		result.Skipped = true
		return result
	}

	if im.store != nil {
		n, err := index.IndexGame(im.store, item.Game, im.gameBase+item.Index+1)
		if err != nil {
			result.Error = err
			return result
		}
		result.Positions = n
	}

	if im.json == nil || im.cfg.Duplicate.DuplicateFile != nil {
		var buf bytes.Buffer
		for _, g := range im.outputGames(item.Game) {
			if err := output.OutputGame(g, im.cfg, &buf); err != nil {
				result.Error = err
				return result
			}
		}
		result.Output = buf.Bytes()
	}
	return result
}

// emit runs in input order. Duplicates are decided here so that the
// earlier of two equal games is always the one kept.
func (im *importer) emit(r worker.ProcessResult) error {
	if r.Error != nil {
		return r.Error
	}

	im.stats.games++
	if len(r.Game.Errors) > 0 {
		im.stats.withErrors++
	}
	if im.classifier != nil && r.Game.HasTag(chess.TagECO) {
		im.stats.classified++
	}
	if r.Skipped {
		im.stats.skipped++
		return nil
	}
	im.stats.positions += r.Positions
	if im.validate {
		im.logProblems(r.Game)
	}

	if im.detector != nil && im.detector.CheckAndAdd(r.Game) {
		im.stats.duplicates++
		if w := im.cfg.Duplicate.DuplicateFile; w != nil {
			_, err := w.Write(r.Output)
			return err
		}
		return nil
	}

	im.stats.output++
	if im.json != nil {
		for _, g := range im.outputGames(r.Game) {
			if err := im.json.WriteGame(g); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := im.out.Write(r.Output)
	return err
}

// outputGames returns the games written for g.
func (im *importer) outputGames(g *game.Game) []*game.Game {
	if im.split {
		return processing.SplitVariations(g)
	}
	return []*game.Game{g}
}

// logProblems logs what validation finds wrong with g.
func (im *importer) logProblems(g *game.Game) {
	for _, problem := range processing.ValidateGame(g).Problems {
		im.cfg.Logger.Warn().
			Str("file", im.cfg.CurrentInputFile).
			Int("game", g.Number).
			Int("line", g.StartLine).
			Msg(problem)
	}
}

// finish writes any batched JSON and flushes the output.
func (im *importer) finish() error {
	if im.json != nil {
		if err := im.json.Close(); err != nil {
			return err
		}
	}
	return im.out.Flush()
}
