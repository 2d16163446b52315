// filters.go - Game selection by validity and game features
package main

import (
	"github.com/lgbarn/chesstree-go/internal/engine"
	"github.com/lgbarn/chesstree-go/internal/game"
	"github.com/lgbarn/chesstree-go/internal/processing"
)

// gameFilter selects games for output. The zero value selects every game.
type gameFilter struct {
	strict         bool
	commented      bool
	checkmate      bool
	stalemate      bool
	repetition     bool
	fiftyMove      bool
	underpromotion bool
}

// filterFromFlags builds the filter from command-line flags.
func filterFromFlags() gameFilter {
	return gameFilter{
		strict:         *strictMode,
		commented:      *commentedFilter,
		checkmate:      *checkmateFilter,
		stalemate:      *stalemateFilter,
		repetition:     *repetitionFilter,
		fiftyMove:      *fiftyMoveFilter,
		underpromotion: *underpromoFilter,
	}
}

// needsAnalysis reports whether matching must replay the main line.
func (f gameFilter) needsAnalysis() bool {
	return f.checkmate || f.stalemate || f.repetition || f.fiftyMove || f.underpromotion
}

// matches reports whether g passes every selected criterion.
func (f gameFilter) matches(g *game.Game) bool {
	if f.strict && !processing.ValidateGame(g).Valid {
		return false
	}
	if f.commented && !processing.HasComments(g) {
		return false
	}
	if !f.needsAnalysis() {
		return true
	}

	analysis := processing.AnalyzeGame(g)
	final := &analysis.FinalPosition
	switch {
	case f.checkmate && !engine.IsCheckmate(final):
		return false
	case f.stalemate && !engine.IsStalemate(final):
		return false
	case f.repetition && !analysis.RepetitionDetected():
		return false
	case f.fiftyMove && !analysis.FiftyMoveTriggered():
		return false
	case f.underpromotion && !analysis.UnderpromotionFound():
		return false
	}
	return true
}
