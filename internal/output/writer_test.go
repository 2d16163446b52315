package output

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chesstree-go/internal/config"
	"github.com/lgbarn/chesstree-go/internal/game"
	"github.com/lgbarn/chesstree-go/internal/parser"
)

func newTestConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.SetLogFile(io.Discard)
	return cfg
}

func parseTestGame(t *testing.T, pgn string) *game.Game {
	t.Helper()
	p := parser.NewParser(strings.NewReader(pgn), newTestConfig())
	games, err := p.ParseAllGames()
	if err != nil {
		t.Fatalf("ParseAllGames: %v", err)
	}
	if len(games) == 0 {
		t.Fatal("Failed to parse test game")
	}
	return games[0]
}

const testGamePGN = `
[Event "Test"]
[Site "Test"]
[Date "2024.01.01"]
[Round "1"]
[White "Fischer"]
[Black "Spassky"]
[Result "1-0"]

1. e4 e5 2. Nf3 1-0
`

// TestPGNWriter_WriteGame verifies PGN writer outputs correct format
func TestPGNWriter_WriteGame(t *testing.T) {
	g := parseTestGame(t, testGamePGN)

	var buf bytes.Buffer
	writer := NewPGNWriter(&buf, newTestConfig())
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	want := `[Event "Test"]
[Site "Test"]
[Date "2024.01.01"]
[Round "1"]
[White "Fischer"]
[Black "Spassky"]
[Result "1-0"]

1. e4 e5 2. Nf3 1-0

`
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("PGN output mismatch (-want +got):\n%s", diff)
	}
}

// TestPGNWriter_Buffered verifies nothing reaches the writer before Flush
func TestPGNWriter_Buffered(t *testing.T) {
	g := parseTestGame(t, testGamePGN)

	var buf bytes.Buffer
	writer := NewPGNWriter(&buf, newTestConfig())
	if err := writer.WriteGame(g); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("wrote %d bytes before Flush", buf.Len())
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}
}

// TestJSONWriter_WriteGame verifies JSON writer outputs correct format
func TestJSONWriter_WriteGame(t *testing.T) {
	g := parseTestGame(t, testGamePGN)

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, newTestConfig())
	if err := writer.WriteGame(g); err != nil {
		t.Fatalf("WriteGame failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Error("batch writer wrote before Flush")
	}
	if err := writer.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	var out JSONOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(out.Games) != 1 {
		t.Fatalf("len(Games) = %d, want 1", len(out.Games))
	}
	if got := out.Games[0].Tags["White"]; got != "Fischer" {
		t.Errorf("White = %q", got)
	}
	if got := len(out.Games[0].Moves); got != 3 {
		t.Errorf("len(Moves) = %d, want 3", got)
	}
}

// TestJSONWriter_Single verifies single mode writes each game at once
func TestJSONWriter_Single(t *testing.T) {
	g := parseTestGame(t, testGamePGN)

	var buf bytes.Buffer
	writer := NewJSONWriterSingle(&buf, newTestConfig())
	if err := writer.WriteGame(g); err != nil {
		t.Fatal(err)
	}

	var jg JSONGame
	if err := json.Unmarshal(buf.Bytes(), &jg); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if jg.Result != "1-0" || jg.PlyCount != 3 {
		t.Errorf("Result = %q, PlyCount = %d", jg.Result, jg.PlyCount)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

// TestGameWriter_Interface verifies that writers implement the interface
func TestGameWriter_Interface(t *testing.T) {
	cfg := newTestConfig()
	var buf bytes.Buffer

	var _ GameWriter = NewPGNWriter(&buf, cfg)
	var _ GameWriter = NewJSONWriter(&buf, cfg)
}

// TestJSONWriter_Close verifies Close flushes pending games
func TestJSONWriter_Close(t *testing.T) {
	g := parseTestGame(t, "1. e4 *\n")

	var buf bytes.Buffer
	writer := NewJSONWriter(&buf, newTestConfig())
	if err := writer.WriteGame(g); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected output after Close")
	}
}

func TestOutputWriter_Wrap(t *testing.T) {
	var buf bytes.Buffer
	ow := NewOutputWriter(&buf, 10)
	for _, s := range []string{"1.", "e4", "e5", "2.", "Nf3"} {
		ow.Write(s)
	}
	ow.Open("(")
	ow.Write("2.")
	ow.WriteNoSpace(")")
	ow.NewLine()

	if diff := cmp.Diff("1. e4 e5\n2. Nf3 (2.)\n", buf.String()); diff != "" {
		t.Errorf("wrapped output mismatch (-want +got):\n%s", diff)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestOutputWriter_Err(t *testing.T) {
	ow := NewOutputWriter(failingWriter{}, 80)
	ow.Write("e4")
	ow.Write("e5")
	if ow.Err() != io.ErrClosedPipe {
		t.Errorf("Err() = %v, want %v", ow.Err(), io.ErrClosedPipe)
	}
}
