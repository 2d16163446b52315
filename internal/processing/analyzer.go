// Package processing provides game analysis, validation, and processing logic.
package processing

import (
	"fmt"
	"maps"
	"slices"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
	"github.com/lgbarn/chesstree-go/internal/errors"
	"github.com/lgbarn/chesstree-go/internal/game"
	"github.com/lgbarn/chesstree-go/internal/hashing"
)

// GameAnalysis holds analysis results from replaying the main line of a game.
type GameAnalysis struct {
	FinalPosition     chess.Position
	Outcome           string
	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool
	Positions         []uint64 // Position keys, start position first

	// Extended draw rule detection
	Has75MoveRule           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool
	HasMaterialOdds         bool
}

// FiftyMoveTriggered returns true if the game triggered the fifty-move rule.
func (ga *GameAnalysis) FiftyMoveTriggered() bool {
	return ga.HasFiftyMoveRule
}

// RepetitionDetected returns true if the game has a threefold repetition.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.HasUnderpromotion
}

// ValidationResult holds the result of game validation.
type ValidationResult struct {
	Valid    bool
	ErrorPly int
	ErrorMsg string
	Problems []string
}

// AnalyzeGame walks the main line of a game and reports its features.
// Repetitions count anywhere on the main line, not only at the end.
func AnalyzeGame(g *game.Game) *GameAnalysis {
	analysis := &GameAnalysis{}

	if g.FEN() != "" {
		start := g.Root.Position()
		analysis.HasMaterialOdds = hasMaterialOdds(&start)
	}

	key := hashing.NodeKey(g.Root)
	analysis.Positions = append(analysis.Positions, key)
	positionCount := map[uint64]int{key: 1}

	node := g.Root
	for next := node.Next(); next != nil; next = next.Next() {
		node = next
		pos := node.Position()

		if pos.HalfmoveClock >= 100 {
			analysis.HasFiftyMoveRule = true
		}
		if pos.HalfmoveClock >= 150 {
			analysis.Has75MoveRule = true
		}

		if m := node.Move(); m.IsPromotion() && m.Promotion != chess.Queen {
			analysis.HasUnderpromotion = true
		}

		key = hashing.PositionKey(&pos)
		analysis.Positions = append(analysis.Positions, key)
		positionCount[key]++
		if positionCount[key] >= 3 {
			analysis.HasRepetition = true
		}
		if positionCount[key] >= 5 {
			analysis.Has5FoldRepetition = true
		}
	}

	analysis.FinalPosition = node.Position()
	analysis.HasInsufficientMaterial = engine.IsInsufficientMaterial(&analysis.FinalPosition)
	analysis.Outcome = g.Outcome()
	return analysis
}

// hasMaterialOdds reports whether the two sides start with different
// material.
func hasMaterialOdds(pos *chess.Position) bool {
	for _, t := range chess.PieceTypes {
		if pos.Count(chess.White, t) != pos.Count(chess.Black, t) {
			return true
		}
	}
	return false
}

// ValidateGame checks a parsed game. Movetext errors make it invalid; missing
// roster tags and results the final position contradicts are reported as
// problems.
func ValidateGame(g *game.Game) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for _, tag := range chess.SevenTagRoster {
		if g.GetTag(tag) == "" {
			result.Problems = append(result.Problems, fmt.Sprintf("missing required tag: %s", tag))
		}
	}

	resultTag := g.Result()
	if resultTag != "" && !chess.IsResult(resultTag) {
		result.Problems = append(result.Problems, fmt.Sprintf("invalid result: %s", resultTag))
	}

	final := g.End().Position()
	if decided := engine.Result(&final); decided != chess.ResultUnknown &&
		chess.IsResult(resultTag) && resultTag != decided {
		result.Problems = append(result.Problems,
			fmt.Sprintf("result %s contradicts final position (%s)", resultTag, decided))
	}

	if len(g.Errors) > 0 {
		result.Valid = false
		result.ErrorMsg = g.Errors[0].Error()
		var gameErr *errors.GameError
		if errors.As(g.Errors[0], &gameErr) {
			result.ErrorPly = gameErr.PlyNum
		}
	}

	return result
}

// HasComments checks if a game has any comments, variations included.
func HasComments(g *game.Game) bool {
	for node := range g.Root.Walk() {
		if node.Comment != "" || node.StartComment != "" {
			return true
		}
	}
	return false
}

// SplitVariations returns one game per line of the tree: the main line
// first, then each variation in the order it appears. Every game has the
// tags of the original and the comments and NAGs of its moves, but no
// variations.
func SplitVariations(g *game.Game) []*game.Game {
	var games []*game.Game
	for node := range g.Root.Walk() {
		if node.NumVariations() == 0 {
			games = append(games, copyLine(g, node))
		}
	}
	return games
}

// copyLine builds a game holding the path from the root to leaf.
func copyLine(original *game.Game, leaf *game.Node) *game.Game {
	line := &game.Game{
		Tags: maps.Clone(original.Tags),
		Root: game.NewRoot(original.Root.Position()),
	}
	if line.Tags == nil {
		line.Tags = make(map[string]string)
	}
	line.Number = original.Number
	line.StartLine = original.StartLine
	line.EndLine = original.EndLine
	line.Root.StartComment = original.Root.StartComment
	line.Root.Comment = original.Root.Comment

	node := line.Root
	for _, src := range leaf.Path()[1:] {
		// Every move already replayed legally from the same start.
		node, _ = node.AddMainVariation(src.Move())
		node.Comment = src.Comment
		node.NAGs = slices.Clone(src.NAGs)
	}
	return line
}
