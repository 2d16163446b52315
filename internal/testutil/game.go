package testutil

import (
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/config"
	"github.com/lgbarn/chesstree-go/internal/engine"
	"github.com/lgbarn/chesstree-go/internal/game"
	"github.com/lgbarn/chesstree-go/internal/notation"
	"github.com/lgbarn/chesstree-go/internal/parser"
)

// SilentConfig returns a default config that discards log output.
func SilentConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.SetLogFile(io.Discard)
	return cfg
}

// ParseTestGame parses a PGN string and returns the first game, or nil if
// parsing fails or no games are found. Use this for tests where parse failure
// is an acceptable outcome.
func ParseTestGame(pgn string) *game.Game {
	if games := ParseTestGames(pgn); len(games) > 0 {
		return games[0]
	}
	return nil
}

// ParseTestGames parses a PGN string and returns all games found.
// Returns an empty slice if parsing fails or no games are found.
func ParseTestGames(pgn string) []*game.Game {
	p := parser.NewParser(strings.NewReader(pgn), SilentConfig())
	games, err := p.ParseAllGames()
	if err != nil || len(games) == 0 {
		return nil
	}
	return games
}

// MustParseGame parses a PGN string and returns the first game.
// It calls t.Fatal if parsing fails, no games are found or the movetext
// had problems.
func MustParseGame(t testing.TB, pgn string) *game.Game {
	t.Helper()
	g := ParseTestGame(pgn)
	if g == nil {
		t.Fatalf("failed to parse test game:\n%s", pgn)
	}
	if len(g.Errors) > 0 {
		t.Fatalf("test game has errors: %v", g.Errors)
	}
	return g
}

// MustParseGames parses a PGN string and returns all games found.
// It calls t.Fatal if parsing fails or no games are found.
func MustParseGames(t testing.TB, pgn string) []*game.Game {
	t.Helper()
	games := ParseTestGames(pgn)
	if len(games) == 0 {
		t.Fatalf("failed to parse any games from PGN:\n%s", pgn)
	}
	return games
}

// MustPosition parses a FEN string or fails the test.
func MustPosition(t testing.TB, fen string) chess.Position {
	t.Helper()
	pos, err := engine.ParseFEN(fen)
	if err != nil {
		t.Fatalf("bad test FEN %q: %v", fen, err)
	}
	return pos
}

// MustMove resolves SAN or UCI text to a legal move of pos or fails the
// test.
func MustMove(t testing.TB, pos *chess.Position, text string) chess.Move {
	t.Helper()
	m, err := notation.ParseMove(pos, text)
	if err != nil {
		t.Fatalf("bad test move %q: %v", text, err)
	}
	return m
}

// MustPlay applies moves in order from the initial position and returns
// the resulting game.
func MustPlay(t testing.TB, moves ...string) *game.Game {
	t.Helper()
	g := game.New()
	node := g.Root
	for _, text := range moves {
		pos := node.Position()
		next, err := node.AddVariation(MustMove(t, &pos, text), false)
		if err != nil {
			t.Fatalf("play %q: %v", text, err)
		}
		node = next
	}
	return g
}
