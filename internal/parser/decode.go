package parser

import (
	"strconv"
	"strings"
)

// annotationToNAG converts a move suffix to its NAG number, or 0.
func annotationToNAG(text string) int {
	switch text {
	case "!":
		return 1
	case "?":
		return 2
	case "!!":
		return 3
	case "??":
		return 4
	case "!?":
		return 5
	case "?!":
		return 6
	default:
		return 0
	}
}

// splitMoveSuffix separates the move text from a trailing !/? annotation.
// Separators such as the '-' of long algebraic input are removed, except in
// castling.
func splitMoveSuffix(token string) (string, int) {
	move := strings.TrimRight(token, "!?")
	nag := annotationToNAG(token[len(move):])
	if !isCastlingText(move) {
		move = strings.ReplaceAll(move, "-", "")
	}
	return move, nag
}

// isCastlingText returns true for O-O and O-O-O written with letter O or
// digit 0, with an optional check suffix.
func isCastlingText(text string) bool {
	t := strings.TrimRight(text, "+#")
	return len(t) > 0 && (t[0] == 'O' || t[0] == '0')
}

// decodeNAG parses a "$n" token.
func decodeNAG(text string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(text, "$"))
	if err != nil || n < 0 || n > 255 {
		return 0, false
	}
	return n, true
}

// decodeComment strips the braces of a comment token and normalises its
// whitespace.
func decodeComment(text string) string {
	text = strings.TrimPrefix(text, "{")
	text = strings.TrimSuffix(text, "}")
	return strings.Join(strings.Fields(text), " ")
}

// unescapeTagValue undoes the backslash escapes of a tag string.
func unescapeTagValue(value string) string {
	if !strings.Contains(value, `\`) {
		return value
	}
	var sb strings.Builder
	sb.Grow(len(value))
	for i := 0; i < len(value); i++ {
		if value[i] == '\\' && i+1 < len(value) && (value[i+1] == '\\' || value[i+1] == '"') {
			i++
		}
		sb.WriteByte(value[i])
	}
	return sb.String()
}

// appendComment joins comment text, separating pieces by a space.
func appendComment(existing, text string) string {
	switch {
	case text == "":
		return existing
	case existing == "":
		return text
	default:
		return existing + " " + text
	}
}
