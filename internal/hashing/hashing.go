// Package hashing provides position keys and duplicate detection for
// chess games.
package hashing

import (
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
	"github.com/lgbarn/chesstree-go/internal/game"
)

// PositionKey returns a 64-bit key for the position. It covers piece
// placement, side to move, castling rights and the en passant square, so
// positions that repeat each other share a key.
func PositionKey(pos *chess.Position) uint64 {
	return xxhash.Sum64String(engine.EPD(pos))
}

// NodeKey returns the key of the position at a game tree node.
func NodeKey(n *game.Node) uint64 {
	pos := n.Position()
	return PositionKey(&pos)
}

// DuplicateDetector tracks seen games for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores signatures by final position key
	hashTable map[uint64][]GameSignature
	// useExactMatch also compares the move sequence
	useExactMatch bool
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// uniqueCount tracks stored signatures
	uniqueCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Key is the position key of the final main-line position
	Key uint64
	// PlyCount is the number of half-moves in the main line
	PlyCount int
	// MovesHash is a hash of the main-line move sequence
	MovesHash uint64
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of a game's main line.
func Signature(g *game.Game) GameSignature {
	return GameSignature{
		Key:       NodeKey(g.End()),
		PlyCount:  g.PlyCount(),
		MovesHash: NewGameHasher(HashMoveSequence).HashGame(g),
	}
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate. Once the detector is full new
// games are still checked but no longer stored.
func (d *DuplicateDetector) CheckAndAdd(g *game.Game) bool {
	if g == nil || g.Root == nil {
		return false
	}
	return d.checkAndAddSignature(Signature(g))
}

func (d *DuplicateDetector) checkAndAddSignature(sig GameSignature) bool {
	for _, existing := range d.hashTable[sig.Key] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if !d.IsFull() {
		d.hashTable[sig.Key] = append(d.hashTable[sig.Key], sig)
		d.uniqueCount++
	}
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Key != b.Key || a.PlyCount != b.PlyCount {
		return false
	}
	if d.useExactMatch && a.MovesHash != b.MovesHash {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.uniqueCount
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.uniqueCount >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
	d.uniqueCount = 0
}

// HashType specifies what to hash for a game.
type HashType int

const (
	// HashFinalPosition hashes only the final position
	HashFinalPosition HashType = iota
	// HashAllPositions hashes all positions throughout the main line
	HashAllPositions
	// HashMoveSequence hashes the main-line moves
	HashMoveSequence
)

// GameHasher provides different hashing strategies for games.
type GameHasher struct {
	hashType HashType
}

// NewGameHasher creates a new game hasher with the specified strategy.
func NewGameHasher(ht HashType) *GameHasher {
	return &GameHasher{hashType: ht}
}

// HashGame generates a hash for the game's main line.
func (gh *GameHasher) HashGame(g *game.Game) uint64 {
	switch gh.hashType {
	case HashAllPositions:
		h := xxhash.New()
		_, _ = h.WriteString(strconv.FormatUint(NodeKey(g.Root), 16))
		for n := range g.Root.MainLine() {
			_, _ = h.WriteString(" " + strconv.FormatUint(NodeKey(n), 16))
		}
		return h.Sum64()
	case HashMoveSequence:
		h := xxhash.New()
		_, _ = h.WriteString(strconv.FormatUint(NodeKey(g.Root), 16))
		for n := range g.Root.MainLine() {
			_, _ = h.WriteString(" " + n.Move().UCI())
		}
		return h.Sum64()
	default:
		return NodeKey(g.End())
	}
}
