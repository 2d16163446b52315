package main

import (
	"strings"
	"testing"

	"github.com/lgbarn/chesstree-go/internal/eco"
	"github.com/lgbarn/chesstree-go/internal/testutil"
)

const (
	scholarsMate   = "1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0\n"
	knightShuffle  = "1. Nf3 Nf6 2. Ng1 Ng8 3. Nf3 Nf6 4. Ng1 Ng8 1/2-1/2\n"
	quietOpening   = "1. d4 {solid} d5 *\n"
	stalemateFinal = "[FEN \"7k/8/6K1/8/8/8/8/5Q2 w - - 0 1\"]\n\n1. Qf7 *\n"
)

func TestGameFilter(t *testing.T) {
	tests := []struct {
		name   string
		filter gameFilter
		pgn    string
		want   bool
	}{
		{"zero value selects all", gameFilter{}, quietOpening, true},
		{"checkmate", gameFilter{checkmate: true}, scholarsMate, true},
		{"checkmate rejects", gameFilter{checkmate: true}, quietOpening, false},
		{"stalemate", gameFilter{stalemate: true}, stalemateFinal, true},
		{"repetition", gameFilter{repetition: true}, knightShuffle, true},
		{"repetition rejects", gameFilter{repetition: true}, scholarsMate, false},
		{"commented", gameFilter{commented: true}, quietOpening, true},
		{"commented rejects", gameFilter{commented: true}, scholarsMate, false},
		{"criteria combine", gameFilter{commented: true, checkmate: true}, quietOpening, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testutil.MustParseGame(t, tt.pgn)
			testutil.AssertEqual(t, tt.want, tt.filter.matches(g))
		})
	}
}

func TestGameFilterStrict(t *testing.T) {
	g := testutil.ParseTestGame("1. e4 Ke7 Kd8 e5 *\n")
	if g == nil || len(g.Errors) == 0 {
		t.Fatal("expected a game with movetext errors")
	}

	if (gameFilter{strict: true}).matches(g) {
		t.Error("strict filter accepted a game with errors")
	}
	if !(gameFilter{}).matches(g) {
		t.Error("default filter rejected a game with errors")
	}
}

func TestImportFiltersGames(t *testing.T) {
	im, buf := newTestImporter(t, 2, nil)
	im.filter = gameFilter{checkmate: true}
	importString(t, im, "[Round \"1\"]\n\n"+quietOpening+"\n[Round \"2\"]\n\n"+scholarsMate)

	testutil.AssertEqual(t, 2, im.stats.games)
	testutil.AssertEqual(t, 1, im.stats.skipped)
	testutil.AssertEqual(t, 1, im.stats.output)

	games := testutil.MustParseGames(t, buf.String())
	testutil.AssertEqual(t, 1, len(games))
	testutil.AssertEqual(t, "2", games[0].GetTag("Round"))
}

func TestImportSplitsVariations(t *testing.T) {
	im, buf := newTestImporter(t, 2, nil)
	im.split = true
	importString(t, im, "[Event \"Split\"]\n\n1. e4 (1. d4 d5) 1... e5 *\n")

	games := testutil.MustParseGames(t, buf.String())
	testutil.AssertEqual(t, 2, len(games))
	testutil.AssertMainLine(t, games[0], "e4", "e5")
	testutil.AssertMainLine(t, games[1], "d4", "d5")
	testutil.AssertEqual(t, 1, im.stats.output)
}

func TestImportClassifiesOpenings(t *testing.T) {
	classifier := eco.NewECOClassifier()
	err := classifier.LoadFromReader(strings.NewReader(`[ECO "C20"]
[Opening "King's pawn game"]

1. e4 e5 *
`))
	testutil.AssertNoError(t, err)

	im, buf := newTestImporter(t, 2, nil)
	im.classifier = classifier
	importString(t, im, "1. e4 e5 2. Nf3 *\n\n1. d4 *\n")

	testutil.AssertEqual(t, 1, im.stats.classified)
	games := testutil.MustParseGames(t, buf.String())
	testutil.AssertEqual(t, "C20", games[0].GetTag("ECO"))
	testutil.AssertEqual(t, "King's pawn game", games[0].GetTag(eco.TagOpening))
	testutil.AssertEqual(t, false, games[1].HasTag("ECO"))
}
