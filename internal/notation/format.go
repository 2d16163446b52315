package notation

import (
	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
)

// Style selects a move notation.
type Style int

const (
	// StyleSAN is Standard Algebraic Notation: Nf3, exd6, O-O.
	StyleSAN Style = iota
	// StyleLALG is bare long algebraic: g1f3.
	StyleLALG
	// StyleHALG is hyphenated long algebraic: g1-f3, e5xd6.
	StyleHALG
	// StyleELALG is enhanced long algebraic with piece letters: Ng1-f3.
	StyleELALG
	// StyleUCI is the engine protocol form: g1f3, e7e8q.
	StyleUCI
)

// String returns the short style name used on the command line.
func (s Style) String() string {
	switch s {
	case StyleSAN:
		return "san"
	case StyleLALG:
		return "lalg"
	case StyleHALG:
		return "halg"
	case StyleELALG:
		return "elalg"
	case StyleUCI:
		return "uci"
	default:
		return "unknown"
	}
}

// ParseStyle returns the style for a command line name.
func ParseStyle(name string) (Style, bool) {
	for s := StyleSAN; s <= StyleUCI; s++ {
		if s.String() == name {
			return s, true
		}
	}
	if name == "lan" {
		return StyleELALG, true
	}
	return StyleSAN, false
}

// Format renders a legal move of pos in the given style.
func Format(pos *chess.Position, m chess.Move, style Style) (string, error) {
	switch style {
	case StyleLALG:
		return LAN(pos, m, false, false)
	case StyleHALG:
		return LAN(pos, m, true, false)
	case StyleELALG:
		return LAN(pos, m, true, true)
	case StyleUCI:
		legal, err := engine.ResolveMove(pos, m)
		if err != nil {
			return "", err
		}
		return legal.UCI(), nil
	default:
		return SAN(pos, m)
	}
}
