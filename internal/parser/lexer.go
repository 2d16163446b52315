package parser

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/lgbarn/chesstree-go/internal/config"
)

var tagRegex = regexp.MustCompile(`^\[([A-Za-z0-9_]+)\s+"(.*)"\s*\]$`)

// movetextRegex classifies movetext tokens. Submatch order follows
// TokenType. Move numbers and anything else unrecognised fall between
// matches and are skipped.
var movetextRegex = regexp.MustCompile(`(;[^\n]*)` +
	`|(\{[^}]*\})` +
	`|(\$[0-9]+)` +
	`|(\()` +
	`|(\))` +
	`|(\*|1-0|0-1|1/2-1/2)` +
	`|((?:[a-hKQRBN][a-hxKQRBN1-8+#=\-]{1,6}|[O0]-[O0](?:-[O0])?[+#]?)[?!]{0,2})`)

// RawGame is the text of one game split from the input.
type RawGame struct {
	Tags     []TagPair
	Movetext string

	// Line numbers of the first line, the first movetext line and the last
	// line of the game.
	StartLine    int
	MovetextLine int
	EndLine      int
}

// Lexer splits PGN input into games and tokenizes movetext.
type Lexer struct {
	reader  *bufio.Reader
	lineNum int
	pending string
	hasLine bool
	err     error
	cfg     *config.Config
}

// NewLexer creates a new lexer for the given reader.
// If cfg is nil, a default config is created. ISO-8859-1 input is decoded
// when the config asks for it.
func NewLexer(r io.Reader, cfg *config.Config) *Lexer {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if cfg.Import.Encoding == config.Latin1 {
		r = transform.NewReader(r, charmap.ISO8859_1.NewDecoder())
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		cfg:    cfg,
	}
}

// readLine reads the next line from input, or the line pushed back by
// unreadLine.
func (l *Lexer) readLine() (string, bool) {
	if l.hasLine {
		l.hasLine = false
		return l.pending, true
	}
	if l.err != nil {
		return "", false
	}
	line, err := l.reader.ReadString('\n')
	if err != nil {
		l.err = err
		if len(line) == 0 {
			return "", false
		}
	}
	l.lineNum++
	return line, true
}

// unreadLine pushes one line back for the next game.
func (l *Lexer) unreadLine(line string) {
	l.pending = line
	l.hasLine = true
}

// NextGame returns the text of the next game, or nil at end of input.
//
// A game is a run of tag lines followed by movetext lines. A tag line after
// movetext starts the next game. Blank lines and lines starting with '%' are
// ignored.
func (l *Lexer) NextGame() (*RawGame, error) {
	var raw *RawGame
	var movetext strings.Builder
	inTags := false

	for {
		line, ok := l.readLine()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)

		if trimmed == "" || strings.HasPrefix(trimmed, "%") {
			if raw != nil && movetext.Len() > 0 {
				movetext.WriteByte('\n')
			}
			continue
		}

		if m := tagRegex.FindStringSubmatch(trimmed); m != nil {
			if raw != nil && !inTags {
				l.unreadLine(line)
				break
			}
			if raw == nil {
				raw = &RawGame{StartLine: l.lineNum}
			}
			raw.Tags = append(raw.Tags, TagPair{Name: m[1], Value: unescapeTagValue(m[2])})
			raw.EndLine = l.lineNum
			inTags = true
			continue
		}

		if raw == nil {
			raw = &RawGame{StartLine: l.lineNum}
		}
		if movetext.Len() == 0 {
			raw.MovetextLine = l.lineNum
		}
		movetext.WriteString(trimmed)
		movetext.WriteByte('\n')
		raw.EndLine = l.lineNum
		inTags = false
	}

	if l.err != nil && l.err != io.EOF {
		return raw, l.err
	}
	if raw == nil {
		return nil, nil
	}
	raw.Movetext = movetext.String()
	return raw, nil
}

// Tokenize classifies the movetext of one game. firstLine is the input
// line the movetext starts on.
func Tokenize(movetext string, firstLine int) []Token {
	matches := movetextRegex.FindAllStringSubmatchIndex(movetext, -1)
	tokens := make([]Token, 0, len(matches))

	line := firstLine
	last := 0
	for _, m := range matches {
		line += strings.Count(movetext[last:m[0]], "\n")
		last = m[0]

		for group := 1; group < len(m)/2; group++ {
			if m[2*group] < 0 {
				continue
			}
			tokens = append(tokens, Token{
				Type: TokenType(group - 1),
				Text: movetext[m[0]:m[1]],
				Line: line,
			})
			break
		}
	}
	return tokens
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
