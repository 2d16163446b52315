package game

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
	chesserrors "github.com/lgbarn/chesstree-go/internal/errors"
)

func TestGameTags(t *testing.T) {
	g := &Game{}
	if g.HasTag(chess.TagWhite) {
		t.Error("empty game has a White tag")
	}
	g.SetTag(chess.TagWhite, "Tal")
	g.SetTag(chess.TagBlack, "Botvinnik")
	g.SetTag(chess.TagResult, "1-0")
	if g.White() != "Tal" || g.Black() != "Botvinnik" || g.Result() != "1-0" {
		t.Errorf("tag accessors: %q %q %q", g.White(), g.Black(), g.Result())
	}
	if g.Event() != "" || g.Date() != "" || g.FEN() != "" {
		t.Error("missing tags should read as empty")
	}
}

func TestNewFromPosition(t *testing.T) {
	g := NewFromPosition(engine.NewInitialPosition())
	if g.HasTag(chess.TagFEN) {
		t.Error("initial position should not add a FEN tag")
	}

	fen := "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"
	g = NewFromPosition(engine.MustParseFEN(fen))
	if g.FEN() != fen || g.GetTag(chess.TagSetUp) != "1" {
		t.Errorf("FEN tags = %q, %q", g.FEN(), g.GetTag(chess.TagSetUp))
	}
}

func TestNewFromTags(t *testing.T) {
	fen := "4k3/8/8/8/8/8/4P3/4K3 b - - 3 40"
	g, err := NewFromTags(map[string]string{chess.TagFEN: fen})
	if err != nil {
		t.Fatal(err)
	}
	if g.Root.FEN() != fen {
		t.Errorf("root FEN = %q; want %q", g.Root.FEN(), fen)
	}
	if g.Root.MoveNumber() != 40 {
		t.Errorf("root MoveNumber = %d; want 40", g.Root.MoveNumber())
	}

	if _, err := NewFromTags(map[string]string{chess.TagFEN: "bad"}); !errors.Is(err, chesserrors.ErrInvalidFEN) {
		t.Errorf("bad FEN error = %v", err)
	}
	if g, err := NewFromTags(nil); err != nil || g.Tags == nil {
		t.Errorf("NewFromTags(nil) = %v, %v", g, err)
	}
}

func TestPlyCountAndOutcome(t *testing.T) {
	g := New()
	moves := []string{"f2f3", "e7e5", "g2g4", "d8h4"}
	var ms []chess.Move
	for _, s := range moves {
		ms = append(ms, uci(t, s))
	}
	if _, err := g.Root.AddLine(ms...); err != nil {
		t.Fatal(err)
	}
	if g.PlyCount() != 4 {
		t.Errorf("PlyCount() = %d; want 4", g.PlyCount())
	}
	if g.End().SAN() != "Qh4#" {
		t.Errorf("last SAN = %q", g.End().SAN())
	}
	if g.Outcome() != chess.ResultBlackWins {
		t.Errorf("Outcome() = %q; want 0-1", g.Outcome())
	}

	g = New()
	g.SetTag(chess.TagResult, chess.ResultDraw)
	if g.Outcome() != chess.ResultDraw {
		t.Errorf("Outcome() = %q; want tag result", g.Outcome())
	}
	g.SetTag(chess.TagResult, "?")
	if g.Outcome() != chess.ResultUnknown {
		t.Errorf("Outcome() = %q; want *", g.Outcome())
	}
}

func TestDrawRules(t *testing.T) {
	g := New()
	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	node := g.Root
	for i, s := range shuffle {
		next, err := node.AddVariation(uci(t, s), false)
		if err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		node = next
	}

	r := g.DrawRules(node)
	if !r.HasThreefoldRepetition || r.Repetitions != 3 {
		t.Errorf("DrawRules = %+v; want threefold with 3 repetitions", r)
	}
	if !r.CanClaimDraw() {
		t.Error("CanClaimDraw() = false")
	}

	early := g.DrawRules(g.Root.Next())
	if early.HasThreefoldRepetition || early.CanClaimDraw() {
		t.Errorf("early DrawRules = %+v", early)
	}
}

func TestAddError(t *testing.T) {
	g := New()
	g.AddError(chesserrors.ErrIllegalMove)
	if len(g.Errors) != 1 {
		t.Errorf("len(Errors) = %d", len(g.Errors))
	}
}
