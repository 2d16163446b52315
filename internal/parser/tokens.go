// Package parser provides PGN lexing and parsing functionality.
package parser

// TokenType represents the type of a movetext token.
type TokenType int

const (
	LineComment TokenType = iota
	CommentToken
	NAGToken
	RAVStart
	RAVEnd
	TerminatingResult
	MoveToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	LineComment:       "LINE_COMMENT",
	CommentToken:      "COMMENT",
	NAGToken:          "NAG",
	RAVStart:          "RAV_START",
	RAVEnd:            "RAV_END",
	TerminatingResult: "TERMINATING_RESULT",
	MoveToken:         "MOVE",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if t >= 0 && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a movetext token with its source text.
type Token struct {
	Type TokenType
	Text string

	// Line for error reporting
	Line int
}

// TagPair is one header tag in input order.
type TagPair struct {
	Name  string
	Value string
}
