// Package output renders game trees as PGN or JSON.
package output

import (
	"fmt"
	"io"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/config"
	"github.com/lgbarn/chesstree-go/internal/game"
	"github.com/lgbarn/chesstree-go/internal/notation"
)

// clockAnnotationRegex matches clock annotations like [%clk H:MM:SS] or [%clk H:MM:SS.d]
var clockAnnotationRegex = regexp.MustCompile(`\[%clk\s+\d+:\d{2}:\d{2}(?:\.\d+)?\]`)

// stripClockAnnotations removes clock annotations from comment text.
func stripClockAnnotations(text string) string {
	return strings.TrimSpace(clockAnnotationRegex.ReplaceAllString(text, ""))
}

// nagSymbols holds the traditional suffix for NAGs 1 to 6.
var nagSymbols = [...]string{1: "!", 2: "?", 3: "!!", 4: "??", 5: "!?", 6: "?!"}

// OutputWriter handles formatted output with line length control.
// The first write error is kept and later writes are dropped.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

func (o *OutputWriter) emit(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s)
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.emit("\n")
			o.lineLength = 0
		} else {
			o.emit(" ")
			o.lineLength++
		}
	}

	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	o.emit(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// Open writes s like Write but lets the next string follow it directly.
func (o *OutputWriter) Open(s string) {
	o.Write(s)
	o.needsSpace = false
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	o.emit("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *OutputWriter) Err() error {
	return o.err
}

// OutputGame writes a game in PGN: tags, a blank line, movetext and a
// blank line.
func OutputGame(g *game.Game, cfg *config.Config, w io.Writer) error {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	if outputTags(g, cfg, ow) {
		ow.NewLine()
	}
	outputMoves(g, cfg, ow)
	ow.NewLine()
	ow.NewLine()

	return ow.Err()
}

// outputTags writes the tag pairs and reports whether any were written.
func outputTags(g *game.Game, cfg *config.Config, ow *OutputWriter) bool {
	if cfg.Output.TagFormat == config.NoTags {
		return false
	}

	// Seven tag roster first (common to both SevenTagRoster and AllTags)
	for _, tag := range chess.SevenTagRoster {
		value := g.GetTag(tag)
		if value == "" {
			value = "?"
		}
		writeTag(ow, tag, value)
	}

	if cfg.Output.TagFormat != config.SevenTagRoster {
		for _, tag := range slices.Sorted(maps.Keys(g.Tags)) {
			if !chess.IsSevenTagRosterTag(tag) {
				writeTag(ow, tag, g.Tags[tag])
			}
		}
	}
	return true
}

func writeTag(ow *OutputWriter, name, value string) {
	ow.WriteNoSpace(fmt.Sprintf("[%s \"%s\"]", name, escapeTagValue(value)))
	ow.NewLine()
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	// Fast path: if no escaping needed, return original string
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}

// movetextOp is one step of movetext rendering.
type movetextOp int

const (
	opLine  movetextOp = iota // the main continuation of node and its alternatives
	opMove                    // the move leading to node
	opOpen                    // "(" and the start comment of node
	opClose                   // ")"
)

type movetextItem struct {
	op   movetextOp
	node *game.Node
}

// outputMoves writes the movetext and result token.
//
// For each node on a line the main move is written first, then every
// alternative in parentheses, then the continuation of the main move. The
// work stack holds those steps in reverse so the tree depth never grows
// the Go stack.
func outputMoves(g *game.Game, cfg *config.Config, ow *OutputWriter) {
	mw := &moveWriter{cfg: cfg, ow: ow, style: styleFor(cfg.Output.Format), needNumber: true}

	if cfg.Output.KeepComments {
		mw.comment(g.Root.StartComment)
	}

	stack := []movetextItem{{op: opLine, node: g.Root}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch item.op {
		case opLine:
			variations := item.node.Variations()
			if len(variations) == 0 {
				continue
			}
			main := variations[0]
			stack = append(stack, movetextItem{op: opLine, node: main})
			if cfg.Output.KeepVariations {
				for i := len(variations) - 1; i > 0; i-- {
					alt := variations[i]
					stack = append(stack,
						movetextItem{op: opClose},
						movetextItem{op: opLine, node: alt},
						movetextItem{op: opMove, node: alt},
						movetextItem{op: opOpen, node: alt})
				}
			}
			stack = append(stack, movetextItem{op: opMove, node: main})

		case opMove:
			mw.move(item.node)

		case opOpen:
			ow.Open("(")
			mw.needNumber = true
			if cfg.Output.KeepComments {
				mw.startComment(item.node.StartComment)
			}

		case opClose:
			ow.WriteNoSpace(")")
			mw.needNumber = true
		}
	}

	if cfg.Output.KeepResults {
		ow.Write(gameResult(g))
	}
}

// gameResult returns the Result tag when it holds a result token, else "*".
func gameResult(g *game.Game) string {
	if result := g.Result(); chess.IsResult(result) {
		return result
	}
	return chess.ResultUnknown
}

// moveWriter writes the moves of one game.
type moveWriter struct {
	cfg   *config.Config
	ow    *OutputWriter
	style notation.Style

	// A Black move needs its number when it starts the movetext or a
	// variation, or follows a comment or a closed variation.
	needNumber bool
}

func (mw *moveWriter) move(node *game.Node) {
	out := mw.cfg.Output

	if out.KeepMoveNumbers {
		number := strconv.Itoa(node.MoveNumber())
		if node.Mover() == chess.White {
			mw.ow.Write(number + ".")
		} else if mw.needNumber {
			mw.ow.Write(number + "...")
		}
	}
	mw.needNumber = false

	text := formatMove(node, mw.style)
	if !out.KeepChecks {
		text = strings.TrimRight(text, "+#")
	}

	var glyphs []string
	if out.KeepNAGs {
		for _, nag := range node.NAGs {
			if out.SymbolicNAGs && nag > 0 && nag < len(nagSymbols) && !strings.ContainsAny(text, "!?") {
				text += nagSymbols[nag]
				continue
			}
			glyphs = append(glyphs, "$"+strconv.Itoa(nag))
		}
	}
	mw.ow.Write(text)
	for _, glyph := range glyphs {
		mw.ow.Write(glyph)
	}

	if out.KeepComments {
		mw.comment(node.Comment)
	}
}

// startComment writes the comment before the first move of a variation.
func (mw *moveWriter) startComment(text string) {
	if mw.cfg.Output.StripClockAnnotations {
		text = stripClockAnnotations(text)
	}
	if text == "" {
		return
	}
	mw.ow.WriteNoSpace("{" + text + "}")
	mw.needNumber = true
}

// comment writes a comment, optionally stripping clock annotations.
func (mw *moveWriter) comment(text string) {
	if mw.cfg.Output.StripClockAnnotations {
		text = stripClockAnnotations(text)
	}
	if text == "" {
		return
	}
	mw.ow.Write("{" + text + "}")
	mw.needNumber = true
}

// styleFor maps the configured output format to a notation style.
func styleFor(format config.OutputFormat) notation.Style {
	switch format {
	case config.LALG:
		return notation.StyleLALG
	case config.HALG:
		return notation.StyleHALG
	case config.ELALG:
		return notation.StyleELALG
	case config.UCI:
		return notation.StyleUCI
	default:
		return notation.StyleSAN
	}
}

// formatMove renders the move leading to node. Nodes carry their SAN, so
// only the other styles need the parent position.
func formatMove(node *game.Node, style notation.Style) string {
	if style == notation.StyleSAN {
		return node.SAN()
	}
	pos := node.Parent().Position()
	text, err := notation.Format(&pos, node.Move(), style)
	if err != nil {
		// Tree moves are legal; fall back to the coordinates.
		return node.Move().UCI()
	}
	return text
}
