// position.go - Position commands: FEN, board, legal moves, perft and book
package main

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
	"github.com/lgbarn/chesstree-go/internal/errors"
	"github.com/lgbarn/chesstree-go/internal/index"
	"github.com/lgbarn/chesstree-go/internal/notation"
)

// positionOptions selects what is reported about a position.
type positionOptions struct {
	board  bool
	colour bool
	legal  bool
	perft  int
	book   bool
}

// buildPosition parses fen, or starts from the initial position when fen
// is empty, and plays moves in order.
func buildPosition(fen, moves string) (chess.Position, error) {
	pos := engine.NewInitialPosition()
	if fen != "" {
		var err error
		if pos, err = engine.ParseFEN(fen); err != nil {
			return chess.Position{}, err
		}
	}

	for i, text := range strings.Fields(moves) {
		m, err := notation.ParseMove(&pos, text)
		if err != nil {
			return chess.Position{}, fmt.Errorf("move %d %q: %w", i+1, text, err)
		}
		if pos, err = engine.MakeMove(&pos, m); err != nil {
			return chess.Position{}, fmt.Errorf("move %d %q: %w", i+1, text, err)
		}
	}
	return pos, nil
}

// writePositionReport prints the FEN of pos followed by each requested
// report. store may be nil unless opts.book is set.
func writePositionReport(w io.Writer, pos *chess.Position, opts positionOptions, store index.Store) error {
	var sb strings.Builder
	fmt.Fprintln(&sb, engine.FEN(pos))

	if status := positionStatus(pos); status != "" {
		fmt.Fprintln(&sb, status)
	}

	if opts.board {
		if err := renderBoard(&sb, pos, opts.colour); err != nil {
			return err
		}
	}

	if opts.legal {
		fmt.Fprintln(&sb, strings.Join(legalSAN(pos), " "))
	}

	if opts.perft > 0 {
		fmt.Fprintf(&sb, "perft %d: %d\n", opts.perft, engine.Perft(pos, opts.perft))
	}

	if opts.book {
		if store == nil {
			return fmt.Errorf("-book needs an -index store: %w", errors.ErrInvalidConfig)
		}
		candidates, err := index.Candidates(store, pos)
		if err != nil {
			return err
		}
		for _, c := range candidates {
			fmt.Fprintf(&sb, "%-8s %d\n", c.SAN, c.Weight)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// positionStatus names a finished or checked position.
func positionStatus(pos *chess.Position) string {
	switch {
	case engine.IsCheckmate(pos):
		return "checkmate " + engine.Result(pos)
	case engine.IsStalemate(pos):
		return "stalemate " + engine.Result(pos)
	case engine.IsInsufficientMaterial(pos):
		return "insufficient material " + engine.Result(pos)
	case engine.IsCheck(pos):
		return "check"
	}
	return ""
}

// legalSAN returns the legal moves of pos in SAN, sorted.
func legalSAN(pos *chess.Position) []string {
	moves := engine.LegalMoves(pos)
	sans := make([]string, 0, len(moves))
	for _, m := range moves {
		sans = append(sans, notation.MustSAN(pos, m))
	}
	slices.Sort(sans)
	return sans
}
