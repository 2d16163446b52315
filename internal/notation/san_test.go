package notation

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
	chesserrors "github.com/lgbarn/chesstree-go/internal/errors"
)

const (
	knightsOnRankFEN = "7k/8/8/8/8/8/8/N1N4K w - - 0 1"
	threeKnightsFEN  = "7k/8/8/2N5/8/2N3N1/8/7K w - - 0 1"
	enPassantFEN     = "rnbqkbnr/ppppp1pp/8/4Pp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"
	promotionFEN     = "8/4P3/8/8/k7/8/8/4K3 w - - 0 1"
	castlingFEN      = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"
)

func TestSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		uci  string
		want string
	}{
		{"pawn push", engine.InitialFEN, "e2e4", "e4"},
		{"knight", engine.InitialFEN, "g1f3", "Nf3"},
		{"pawn capture", "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2", "e4d5", "exd5"},
		{"en passant", enPassantFEN, "e5f6", "exf6"},
		{"file disambiguation", knightsOnRankFEN, "a1b3", "Nab3"},
		{"file disambiguation other", knightsOnRankFEN, "c1b3", "Ncb3"},
		{"no disambiguation needed", knightsOnRankFEN, "c1e2", "Ne2"},
		{"square disambiguation", threeKnightsFEN, "c3e4", "Nc3e4"},
		{"rank disambiguation", threeKnightsFEN, "c5e4", "N5e4"},
		{"file disambiguation shared rank", threeKnightsFEN, "g3e4", "Nge4"},
		{"promotion with check", promotionFEN, "e7e8q", "e8=Q+"},
		{"underpromotion", promotionFEN, "e7e8n", "e8=N"},
		{"kingside castle", castlingFEN, "e1g1", "O-O"},
		{"queenside castle", castlingFEN, "e1c1", "O-O-O"},
		{"rook capture", castlingFEN, "a1a8", "Rxa8+"},
		{"checkmate", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", "d8h4", "Qh4#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := engine.MustParseFEN(tt.fen)
			m, err := chess.ParseUCI(tt.uci)
			if err != nil {
				t.Fatalf("ParseUCI(%q): %v", tt.uci, err)
			}
			got, err := SAN(&pos, m)
			if err != nil {
				t.Fatalf("SAN(%s) unexpected error: %v", tt.uci, err)
			}
			if got != tt.want {
				t.Errorf("SAN(%s) = %q; want %q", tt.uci, got, tt.want)
			}
		})
	}
}

func TestSANIllegalMove(t *testing.T) {
	pos := engine.NewInitialPosition()
	_, err := SAN(&pos, chess.NewMove(chess.E2, chess.E5))
	if !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("SAN(e2e5) error = %v; want ErrIllegalMove", err)
	}
}

// TestSANRoundTrip renders every legal move and parses it back.
func TestSANRoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R b KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8",
		enPassantFEN,
		threeKnightsFEN,
		"4k3/8/8/8/8/8/8/QQ1QK3 w - - 0 1",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			pos := engine.MustParseFEN(fen)
			seen := make(map[string]bool)
			for _, m := range engine.LegalMoves(&pos) {
				san, err := SAN(&pos, m)
				if err != nil {
					t.Fatalf("SAN(%s): %v", m.UCI(), err)
				}
				if seen[san] {
					t.Errorf("SAN %q produced for two different moves", san)
				}
				seen[san] = true

				back, err := ParseSAN(&pos, san)
				if err != nil {
					t.Fatalf("ParseSAN(%q) for %s: %v", san, m.UCI(), err)
				}
				if back != m {
					t.Errorf("ParseSAN(%q) = %+v; want %+v", san, back, m)
				}
			}
		})
	}
}

func TestParseSAN(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		san  string
		want string
		kind chess.MoveKind
	}{
		{"pawn push", engine.InitialFEN, "e4", "e2e4", chess.DoublePawnPush},
		{"annotated", engine.InitialFEN, "e4!?", "e2e4", chess.DoublePawnPush},
		{"knight", engine.InitialFEN, "Nf3", "g1f3", chess.NormalMove},
		{"redundant disambiguation", engine.InitialFEN, "Ngf3", "g1f3", chess.NormalMove},
		{"en passant", enPassantFEN, "exf6", "e5f6", chess.EnPassantCapture},
		{"en passant marker", enPassantFEN, "exf6 e.p.", "e5f6", chess.EnPassantCapture},
		{"castle", castlingFEN, "O-O", "e1g1", chess.KingsideCastle},
		{"castle with zeros", castlingFEN, "0-0-0", "e1c1", chess.QueensideCastle},
		{"castle with check suffix", castlingFEN, "O-O+", "e1g1", chess.KingsideCastle},
		{"promotion", promotionFEN, "e8=Q+", "e7e8q", chess.PromotionMove},
		{"promotion without equals", promotionFEN, "e8R", "e7e8r", chess.PromotionMove},
		{"file hint", knightsOnRankFEN, "Ncb3", "c1b3", chess.NormalMove},
		{"square hint", threeKnightsFEN, "Nc3e4", "c3e4", chess.NormalMove},
		{"rank hint", threeKnightsFEN, "N5e4", "c5e4", chess.NormalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := engine.MustParseFEN(tt.fen)
			got, err := ParseSAN(&pos, tt.san)
			if err != nil {
				t.Fatalf("ParseSAN(%q) unexpected error: %v", tt.san, err)
			}
			if got.UCI() != tt.want {
				t.Errorf("ParseSAN(%q) = %s; want %s", tt.san, got.UCI(), tt.want)
			}
			if got.Kind != tt.kind {
				t.Errorf("ParseSAN(%q) kind = %v; want %v", tt.san, got.Kind, tt.kind)
			}
		})
	}
}

func TestParseSANErrors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		san  string
		want error
	}{
		{"garbage", engine.InitialFEN, "Zz9", chesserrors.ErrInvalidMove},
		{"empty", engine.InitialFEN, "", chesserrors.ErrInvalidMove},
		{"unreachable", engine.InitialFEN, "e5", chesserrors.ErrIllegalMove},
		{"wrong piece", engine.InitialFEN, "Be3", chesserrors.ErrIllegalMove},
		{"castle blocked", engine.InitialFEN, "O-O", chesserrors.ErrIllegalMove},
		{"promotion missing", promotionFEN, "e8", chesserrors.ErrIllegalMove},
		{"ambiguous", knightsOnRankFEN, "Nb3", chesserrors.ErrAmbiguousMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := engine.MustParseFEN(tt.fen)
			_, err := ParseSAN(&pos, tt.san)
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseSAN(%q) error = %v; want %v", tt.san, err, tt.want)
			}
		})
	}
}

func TestParseSANAmbiguousCandidates(t *testing.T) {
	pos := engine.MustParseFEN(knightsOnRankFEN)
	_, err := ParseSAN(&pos, "Nb3")

	var ambiguous *chesserrors.AmbiguousMoveError
	if !errors.As(err, &ambiguous) {
		t.Fatalf("ParseSAN(Nb3) error = %v; want *AmbiguousMoveError", err)
	}
	if !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("ambiguous move error does not unwrap to ErrIllegalMove")
	}

	got := append([]string(nil), ambiguous.Candidates...)
	sort.Strings(got)
	if diff := cmp.Diff([]string{"a1b3", "c1b3"}, got); diff != "" {
		t.Errorf("candidates mismatch (-want +got):\n%s", diff)
	}
}
