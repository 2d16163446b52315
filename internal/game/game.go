package game

import (
	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
)

// Game represents a complete chess game with tags, a move tree, and import
// diagnostics.
type Game struct {
	// Tags for this game (e.g., Event, Site, Date, White, Black, Result).
	Tags map[string]string

	// Root holds the starting position.
	Root *Node

	// Errors records every movetext token skipped during import.
	Errors []error

	// Number is the 1-based position of the game in its input.
	Number int

	// Line numbers of the start and end of the game in the input file.
	StartLine int
	EndLine   int
}

// New creates a game from the standard starting position.
func New() *Game {
	return &Game{
		Tags: make(map[string]string),
		Root: NewRoot(engine.NewInitialPosition()),
	}
}

// NewFromPosition creates a game starting at pos. FEN and SetUp tags are
// added when pos is not the standard starting position.
func NewFromPosition(pos chess.Position) *Game {
	g := &Game{
		Tags: make(map[string]string),
		Root: NewRoot(pos),
	}
	if fen := engine.FEN(&pos); fen != engine.InitialFEN {
		g.Tags[chess.TagSetUp] = "1"
		g.Tags[chess.TagFEN] = fen
	}
	return g
}

// NewFromTags creates a game whose starting position honours a FEN tag.
func NewFromTags(tags map[string]string) (*Game, error) {
	pos, err := engine.PositionForTags(tags)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = make(map[string]string)
	}
	return &Game{Tags: tags, Root: NewRoot(pos)}, nil
}

// GetTag returns a tag value, or empty string if not present.
func (g *Game) GetTag(name string) string {
	return g.Tags[name]
}

// SetTag sets a tag value.
func (g *Game) SetTag(name, value string) {
	g.ensureTags()
	g.Tags[name] = value
}

// HasTag returns true if the tag is present.
func (g *Game) HasTag(name string) bool {
	_, ok := g.Tags[name]
	return ok
}

// ensureTags initializes the Tags map if it is nil.
func (g *Game) ensureTags() {
	if g.Tags == nil {
		g.Tags = make(map[string]string)
	}
}

// White returns the White player name.
func (g *Game) White() string {
	return g.GetTag(chess.TagWhite)
}

// Black returns the Black player name.
func (g *Game) Black() string {
	return g.GetTag(chess.TagBlack)
}

// Result returns the game result.
func (g *Game) Result() string {
	return g.GetTag(chess.TagResult)
}

// Event returns the event name.
func (g *Game) Event() string {
	return g.GetTag(chess.TagEvent)
}

// Date returns the date string.
func (g *Game) Date() string {
	return g.GetTag(chess.TagDate)
}

// FEN returns the FEN string if present.
func (g *Game) FEN() string {
	return g.GetTag(chess.TagFEN)
}

// PlyCount returns the number of half-moves in the main line.
func (g *Game) PlyCount() int {
	count := 0
	for range g.Root.MainLine() {
		count++
	}
	return count
}

// End returns the last node of the main line.
func (g *Game) End() *Node {
	return g.Root.End()
}

// AddError records a recoverable import problem.
func (g *Game) AddError(err error) {
	g.Errors = append(g.Errors, err)
}

// DrawRules evaluates the history-based draw rules for the line leading to
// node.
func (g *Game) DrawRules(node *Node) engine.DrawRuleResult {
	return engine.AnalyzeDrawRules(node.History())
}

// Outcome returns the result implied by the final main-line position: a
// decisive or drawn result when the game is over on the board, otherwise
// the Result tag, otherwise "*".
func (g *Game) Outcome() string {
	pos := g.End().Position()
	if engine.IsGameOver(&pos) {
		return engine.Result(&pos)
	}
	if r := g.Result(); chess.IsResult(r) {
		return r
	}
	return chess.ResultUnknown
}
