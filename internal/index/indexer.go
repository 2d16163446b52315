package index

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
	"github.com/lgbarn/chesstree-go/internal/errors"
	"github.com/lgbarn/chesstree-go/internal/game"
	"github.com/lgbarn/chesstree-go/internal/hashing"
	"github.com/lgbarn/chesstree-go/internal/notation"
)

// IndexGame records every move of the tree, variations included, against
// the position it was played from. It returns the number of moves recorded.
func IndexGame(store Store, g *game.Game, gameNum int) (int, error) {
	n := 0
	for node := range g.Root.Walk() {
		parent := node.Parent()
		if parent == nil {
			continue
		}
		if err := store.Record(hashing.NodeKey(parent), node.Move().UCI(), gameNum); err != nil {
			return n, fmt.Errorf("game %d ply %d: %w", gameNum, node.Ply(), err)
		}
		n++
	}
	return n, nil
}

// Candidate is a move recorded for a position.
type Candidate struct {
	Move   chess.Move
	SAN    string
	Weight int
}

// Candidates returns the recorded moves of pos, most played first and then
// by SAN. Recorded moves that are not legal in pos, as can happen when two
// positions share a key, are skipped. A position with no record has no
// candidates.
func Candidates(store Store, pos *chess.Position) ([]Candidate, error) {
	entry, err := store.Lookup(hashing.PositionKey(pos))
	if errors.Is(err, errors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	candidates := make([]Candidate, 0, len(entry.Moves))
	for _, mc := range entry.Moves {
		m, err := chess.ParseUCI(mc.UCI)
		if err != nil {
			continue
		}
		legal, err := engine.ResolveMove(pos, m)
		if err != nil {
			continue
		}
		san := notation.MustSAN(pos, legal)
		candidates = append(candidates, Candidate{Move: legal, SAN: san, Weight: mc.Count})
	}

	slices.SortFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.SAN, b.SAN)
	})
	return candidates, nil
}
