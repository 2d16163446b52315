package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chesstree-go/internal/chess"
	chesserrors "github.com/lgbarn/chesstree-go/internal/errors"
)

// playUCI applies a sequence of UCI moves with validation.
func playUCI(t *testing.T, fen string, moves ...string) chess.Position {
	t.Helper()
	pos := MustParseFEN(fen)
	for _, text := range moves {
		m, err := chess.ParseUCI(text)
		if err != nil {
			t.Fatalf("ParseUCI(%q) error = %v", text, err)
		}
		pos, err = MakeMove(&pos, m)
		if err != nil {
			t.Fatalf("MakeMove(%q) error = %v", text, err)
		}
	}
	return pos
}

func TestMakeMove(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		moves   []string
		wantFEN string
	}{
		{
			name:    "pawn push without en passant victim",
			fen:     InitialFEN,
			moves:   []string{"e2e4"},
			wantFEN: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
		},
		{
			name:    "knight move increments clock",
			fen:     InitialFEN,
			moves:   []string{"g1f3", "g8f6"},
			wantFEN: "rnbqkb1r/pppppppp/5n2/8/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 2 2",
		},
		{
			name:    "double push next to enemy pawn sets target",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "d7d5", "e4e5", "f7f5"},
			wantFEN: "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		},
		{
			name:    "en passant capture removes pawn",
			fen:     InitialFEN,
			moves:   []string{"e2e4", "d7d5", "e4e5", "f7f5", "e5f6"},
			wantFEN: "rnbqkbnr/ppp1p1pp/5P2/3p4/8/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name:    "kingside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 10",
			moves:   []string{"e1g1"},
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 4 10",
		},
		{
			name:    "queenside castle",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 10",
			moves:   []string{"e8c8"},
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 11",
		},
		{
			name:    "rook move drops one right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"h1h2"},
			wantFEN: "r3k2r/8/8/8/8/8/7R/R3K3 b Qkq - 1 1",
		},
		{
			name:    "rook capture drops the victim's right",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			moves:   []string{"a1a8"},
			wantFEN: "R3k2r/8/8/8/8/8/8/4K2R b Kk - 0 1",
		},
		{
			name:    "promotion with capture",
			fen:     "1r2k3/P7/8/8/8/8/8/4K3 w - - 5 40",
			moves:   []string{"a7b8n"},
			wantFEN: "1N2k3/8/8/8/8/8/8/4K3 b - - 0 40",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := playUCI(t, tt.fen, tt.moves...)
			if got := FEN(&pos); got != tt.wantFEN {
				t.Errorf("FEN() = %q, want %q", got, tt.wantFEN)
			}
		})
	}
}

func TestMakeMoveDoesNotModifyInput(t *testing.T) {
	pos := NewInitialPosition()
	if _, err := MakeMove(&pos, chess.NewMove(chess.E2, chess.E4)); err != nil {
		t.Fatalf("MakeMove() error = %v", err)
	}
	if FEN(&pos) != InitialFEN {
		t.Errorf("input position changed to %q", FEN(&pos))
	}
}

func TestMakeMoveIllegal(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		move     chess.Move
		sentinel error
	}{
		{"pawn triple push", InitialFEN, chess.NewMove(chess.E2, chess.E5), chesserrors.ErrIllegalMove},
		{"opponent piece", InitialFEN, chess.NewMove(chess.E7, chess.E5), chesserrors.ErrIllegalMove},
		{"empty source", InitialFEN, chess.NewMove(chess.E4, chess.E5), chesserrors.ErrIllegalMove},
		{"same square", InitialFEN, chess.NewMove(chess.E2, chess.E2), chesserrors.ErrInvalidMove},
		{"promotion without piece", "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", chess.NewMove(chess.A7, chess.A8), chesserrors.ErrIllegalMove},
		{"leaves king in check", "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1", chess.NewMove(chess.E2, chess.C3), chesserrors.ErrIllegalMove},
		{"en passant without target", "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq - 0 3", chess.NewMove(chess.E5, chess.D6), chesserrors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			_, err := MakeMove(&pos, tt.move)
			if !errors.Is(err, tt.sentinel) {
				t.Fatalf("MakeMove(%v) error = %v, want %v", tt.move, err, tt.sentinel)
			}
			var moveErr *chesserrors.MoveError
			if !errors.As(err, &moveErr) {
				t.Fatalf("MakeMove() error is %T, want *MoveError", err)
			}
			if moveErr.FEN != tt.fen {
				t.Errorf("MoveError.FEN = %q, want %q", moveErr.FEN, tt.fen)
			}
		})
	}
}

func TestEnPassantIsTagged(t *testing.T) {
	pos := playUCI(t, InitialFEN, "e2e4", "d7d5", "e4e5", "f7f5")
	m, err := ResolveMove(&pos, chess.NewMove(chess.E5, chess.F6))
	if err != nil {
		t.Fatalf("ResolveMove() error = %v", err)
	}
	if m.Kind != chess.EnPassantCapture {
		t.Errorf("Kind = %v, want EnPassant", m.Kind)
	}
}

func TestCastlingAppliesRook(t *testing.T) {
	pos := MustParseFEN("rnbqk2r/pppppppp/8/8/8/8/PPPPPPPP/RNBQK2R w KQkq - 0 1")
	next, err := MakeMove(&pos, chess.NewMove(chess.E1, chess.G1))
	if err != nil {
		t.Fatalf("MakeMove(O-O) error = %v", err)
	}
	if next.Get(chess.G1) != chess.W(chess.King) || next.Get(chess.F1) != chess.W(chess.Rook) {
		t.Errorf("after O-O: g1=%v f1=%v", next.Get(chess.G1), next.Get(chess.F1))
	}
	if next.Get(chess.H1) != chess.NoPiece || next.Get(chess.E1) != chess.NoPiece {
		t.Error("after O-O e1 and h1 should be empty")
	}
	if next.Castling.Has(chess.WhiteKingside) || next.Castling.Has(chess.WhiteQueenside) {
		t.Errorf("after O-O castling = %v, want white rights cleared", next.Castling)
	}
}

func TestClassify(t *testing.T) {
	pos := MustParseFEN("r3k2r/pppppppp/8/3pP3/8/8/PPPPPPP1/R3K2R w KQkq d6 0 1")
	tests := []struct {
		move chess.Move
		want chess.MoveKind
	}{
		{chess.NewMove(chess.E1, chess.G1), chess.KingsideCastle},
		{chess.NewMove(chess.E1, chess.C1), chess.QueensideCastle},
		{chess.NewMove(chess.E1, chess.F1), chess.NormalMove},
		{chess.NewMove(chess.A2, chess.A4), chess.DoublePawnPush},
		{chess.NewMove(chess.E5, chess.D6), chess.EnPassantCapture},
		{chess.NewMove(chess.A2, chess.A3), chess.NormalMove},
	}

	for _, tt := range tests {
		if got := Classify(&pos, tt.move); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.move, got, tt.want)
		}
	}
}

func TestMakeMoveUnchecked(t *testing.T) {
	pos := NewInitialPosition()
	// A pawn jumping three squares is accepted without validation.
	next := MakeMoveUnchecked(&pos, chess.NewMove(chess.E2, chess.E5))
	if next.Get(chess.E5) != chess.W(chess.Pawn) || next.Turn != chess.Black {
		t.Errorf("MakeMoveUnchecked() = %q", FEN(&next))
	}
}
