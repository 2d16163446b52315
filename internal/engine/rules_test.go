package engine

import (
	"testing"

	"github.com/lgbarn/chesstree-go/internal/chess"
)

func TestIsInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"K vs K", "8/8/4k3/8/8/4K3/8/8 w - - 0 1", true},
		{"K+B vs K", "8/8/4k3/8/8/4K3/8/2B5 w - - 0 1", true},
		{"K+N vs K", "8/8/4k3/8/8/4K3/8/1N6 w - - 0 1", true},
		{"K vs K+N", "8/8/4k3/8/8/4K3/8/5n2 w - - 0 1", true},
		{"K+B vs K+B same colour", "8/8/4k3/4b3/8/4K3/8/2B5 w - - 0 1", true},
		{"K+B vs K+B different colour", "8/8/4k3/5b2/8/4K3/8/2B5 w - - 0 1", false},
		{"K+BB same colour vs K", "8/8/4k3/8/8/4K3/1B6/2B5 w - - 0 1", true},
		{"K+BB opposite colours vs K", "8/8/4k3/8/8/4K3/2B5/2B5 w - - 0 1", false},
		{"K+N vs K+N", "8/8/4k3/8/8/4K3/8/1N3n2 w - - 0 1", false},
		{"K+R vs K", "8/8/4k3/8/8/4K3/8/R7 w - - 0 1", false},
		{"K+P vs K", "8/8/4k3/8/8/4K3/4P3/8 w - - 0 1", false},
		{"initial", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			if got := IsInsufficientMaterial(&pos); got != tt.want {
				t.Errorf("IsInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeDrawRules(t *testing.T) {
	t.Run("empty history", func(t *testing.T) {
		if got := AnalyzeDrawRules(nil); got.CanClaimDraw() {
			t.Errorf("AnalyzeDrawRules(nil) = %+v", got)
		}
	})

	t.Run("threefold repetition", func(t *testing.T) {
		history := []chess.Position{NewInitialPosition()}
		cycle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
		for i := 0; i < 2; i++ {
			for _, text := range cycle {
				last := history[len(history)-1]
				m, _ := chess.ParseUCI(text)
				next, err := MakeMove(&last, m)
				if err != nil {
					t.Fatalf("MakeMove(%q) error = %v", text, err)
				}
				history = append(history, next)
			}
		}
		got := AnalyzeDrawRules(history)
		if got.Repetitions != 3 {
			t.Errorf("Repetitions = %d, want 3", got.Repetitions)
		}
		if !got.HasThreefoldRepetition || !got.CanClaimDraw() {
			t.Errorf("AnalyzeDrawRules() = %+v, want threefold", got)
		}
		if got.HasFivefoldRepetition {
			t.Error("HasFivefoldRepetition = true after three occurrences")
		}
	})

	t.Run("fifty move rule", func(t *testing.T) {
		pos := MustParseFEN("8/8/4k3/8/8/4K3/8/R7 w - - 100 80")
		got := AnalyzeDrawRules([]chess.Position{pos})
		if !got.HasFiftyMoveRule {
			t.Errorf("AnalyzeDrawRules() = %+v, want fifty move rule", got)
		}
		if got.HasInsufficientMaterial {
			t.Error("K+R vs K is sufficient material")
		}
	})

	t.Run("insufficient material", func(t *testing.T) {
		pos := MustParseFEN("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
		if got := AnalyzeDrawRules([]chess.Position{pos}); !got.HasInsufficientMaterial {
			t.Errorf("AnalyzeDrawRules() = %+v, want insufficient material", got)
		}
	})
}

func TestGameState(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		check     bool
		checkmate bool
		stalemate bool
		result    string
	}{
		{"initial", InitialFEN, false, false, false, "*"},
		{"fool's mate", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true, true, false, "0-1"},
		{"back rank mate", "6k1/5ppp/8/8/8/8/8/3R2K1 b - - 0 1", false, false, false, "*"},
		{"delivered back rank mate", "3R2k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", true, true, false, "1-0"},
		{"stalemate", "k7/8/KQ6/8/8/8/8/8 b - - 0 1", false, false, true, "1/2-1/2"},
		{"simple check", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", true, false, false, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := MustParseFEN(tt.fen)
			if got := IsCheck(&pos); got != tt.check {
				t.Errorf("IsCheck() = %v, want %v", got, tt.check)
			}
			if got := IsCheckmate(&pos); got != tt.checkmate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.checkmate)
			}
			if got := IsStalemate(&pos); got != tt.stalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.stalemate)
			}
			if got := Result(&pos); got != tt.result {
				t.Errorf("Result() = %q, want %q", got, tt.result)
			}
			wantOver := tt.checkmate || tt.stalemate
			if got := IsGameOver(&pos); got != wantOver {
				t.Errorf("IsGameOver() = %v, want %v", got, wantOver)
			}
		})
	}
}
