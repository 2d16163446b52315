// Package eco provides ECO (Encyclopaedia of Chess Openings) classification.
package eco

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/config"
	"github.com/lgbarn/chesstree-go/internal/game"
	"github.com/lgbarn/chesstree-go/internal/hashing"
	"github.com/lgbarn/chesstree-go/internal/parser"
)

// ECOHalfMoveLimit is the maximum distance from an ECO line for a match.
const ECOHalfMoveLimit = 6

// ECOTableSize is the size of the ECO hash table.
const ECOTableSize = 4096

// Tags written by classification besides ECO.
const (
	TagOpening      = "Opening"
	TagVariation    = "Variation"
	TagSubVariation = "SubVariation"
)

// ECOEntry represents a single ECO classification entry.
type ECOEntry struct {
	ECOCode        string // e.g., "B33"
	Opening        string // e.g., "Sicilian"
	Variation      string // e.g., "Sveshnikov"
	SubVariation   string
	RequiredHash   uint64 // Position key for matching
	CumulativeHash uint64 // XOR of the keys of every position on the line
	HalfMoves      int    // Number of half-moves to reach this position
	Next           *ECOEntry
}

// ECOClassifier provides ECO classification for chess games.
type ECOClassifier struct {
	table         [ECOTableSize]*ECOEntry
	maxHalfMoves  int
	entriesLoaded int
}

// NewECOClassifier creates a new ECO classifier.
func NewECOClassifier() *ECOClassifier {
	return &ECOClassifier{
		maxHalfMoves: ECOHalfMoveLimit,
	}
}

// LoadFromFile loads ECO data from a PGN file.
func (ec *ECOClassifier) LoadFromFile(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("cannot open ECO file: %w", err)
	}
	defer file.Close()

	return ec.LoadFromReader(file)
}

// LoadFromReader loads ECO data from a reader. Each game is one line; its
// final position is classified by its ECO, Opening, Variation and
// SubVariation tags.
func (ec *ECOClassifier) LoadFromReader(r io.Reader) error {
	cfg := config.NewConfig()
	cfg.SetLogFile(io.Discard)

	p := parser.NewParser(r, cfg)
	games, err := p.ParseAllGames()
	if err != nil {
		return fmt.Errorf("error parsing ECO file: %w", err)
	}

	for _, g := range games {
		ec.addECOEntry(g)
	}

	return nil
}

// addECOEntry adds the position at the end of a line from the ECO file.
func (ec *ECOClassifier) addECOEntry(g *game.Game) {
	ecoCode := g.GetTag(chess.TagECO)
	if ecoCode == "" {
		return // Skip entries without ECO code
	}

	var cumulativeHash uint64
	halfMoves := 0
	node := g.Root
	for next := node.Next(); next != nil; next = next.Next() {
		node = next
		halfMoves++
		cumulativeHash ^= hashing.NodeKey(node)
	}

	if halfMoves == 0 {
		return // No moves in this entry
	}

	entry := &ECOEntry{
		ECOCode:        ecoCode,
		Opening:        g.GetTag(TagOpening),
		Variation:      g.GetTag(TagVariation),
		SubVariation:   g.GetTag(TagSubVariation),
		RequiredHash:   hashing.NodeKey(node),
		CumulativeHash: cumulativeHash,
		HalfMoves:      halfMoves,
	}

	// The first of two identical lines wins.
	ix := entry.RequiredHash % ECOTableSize
	for existing := ec.table[ix]; existing != nil; existing = existing.Next {
		if existing.RequiredHash == entry.RequiredHash &&
			existing.HalfMoves == entry.HalfMoves &&
			existing.CumulativeHash == entry.CumulativeHash {
			return
		}
	}

	entry.Next = ec.table[ix]
	ec.table[ix] = entry
	ec.entriesLoaded++

	if halfMoves+ECOHalfMoveLimit > ec.maxHalfMoves {
		ec.maxHalfMoves = halfMoves + ECOHalfMoveLimit
	}
}

// ClassifyGame finds the deepest ECO match along the main line of a game.
// Returns nil if no position matches. The classifier is safe for concurrent
// use once loading is finished.
func (ec *ECOClassifier) ClassifyGame(g *game.Game) *ECOEntry {
	if ec.entriesLoaded == 0 {
		return nil
	}

	var bestMatch *ECOEntry
	var cumulativeHash uint64
	halfMoves := 0

	for node := range g.Root.MainLine() {
		halfMoves++
		if halfMoves > ec.maxHalfMoves {
			break
		}

		posHash := hashing.NodeKey(node)
		cumulativeHash ^= posHash

		if match := ec.findMatch(posHash, cumulativeHash, halfMoves); match != nil {
			bestMatch = match
		}
	}

	return bestMatch
}

// findMatch looks up a position in the ECO table.
func (ec *ECOClassifier) findMatch(posHash, cumulativeHash uint64, halfMoves int) *ECOEntry {
	ix := posHash % ECOTableSize
	var possible *ECOEntry

	for entry := ec.table[ix]; entry != nil; entry = entry.Next {
		if entry.RequiredHash == posHash {
			// Exact match on position and cumulative hash
			if entry.HalfMoves == halfMoves && entry.CumulativeHash == cumulativeHash {
				return entry
			}
			// Partial match within limit
			if abs(halfMoves-entry.HalfMoves) <= ECOHalfMoveLimit {
				possible = entry
			}
		}
	}

	return possible
}

// AddECOTags adds ECO, Opening, and Variation tags to a game.
func (ec *ECOClassifier) AddECOTags(g *game.Game) bool {
	match := ec.ClassifyGame(g)
	if match == nil {
		return false
	}

	g.SetTag(chess.TagECO, match.ECOCode)
	if match.Opening != "" {
		g.SetTag(TagOpening, match.Opening)
	}
	if match.Variation != "" {
		g.SetTag(TagVariation, match.Variation)
	}
	if match.SubVariation != "" {
		g.SetTag(TagSubVariation, match.SubVariation)
	}

	return true
}

// EntriesLoaded returns the number of ECO entries loaded.
func (ec *ECOClassifier) EntriesLoaded() int {
	return ec.entriesLoaded
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
