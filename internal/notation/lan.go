package notation

import (
	"strings"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
)

// LAN renders a legal move in long algebraic notation. With hyphenated the
// squares are joined by '-' or 'x' (e2-e4, e5xd6); with enhanced the piece
// letter is prefixed (Ng1f3). Castling is always O-O or O-O-O.
func LAN(pos *chess.Position, m chess.Move, hyphenated, enhanced bool) (string, error) {
	legal, err := engine.ResolveMove(pos, m)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	switch legal.Kind {
	case chess.KingsideCastle:
		sb.WriteString(KingsideCastleText)
	case chess.QueensideCastle:
		sb.WriteString(QueensideCastleText)
	default:
		piece := pos.Get(legal.From)
		if enhanced && piece.Type() != chess.Pawn {
			sb.WriteByte(piece.Type().Letter())
		}
		sb.WriteString(legal.From.String())
		if hyphenated {
			if pos.Get(legal.To) != chess.NoPiece || legal.IsEnPassant() {
				sb.WriteByte('x')
			} else {
				sb.WriteByte('-')
			}
		}
		sb.WriteString(legal.To.String())
		if legal.IsPromotion() {
			sb.WriteByte('=')
			sb.WriteByte(legal.Promotion.Letter())
		}
	}

	next := *pos
	engine.ApplyMove(&next, legal)
	sb.WriteString(checkSuffix(&next))

	return sb.String(), nil
}

// ParseMove accepts SAN or UCI text and resolves it to a legal move.
// UCI is tried first because a UCI string never parses as SAN with a
// different meaning.
func ParseMove(pos *chess.Position, text string) (chess.Move, error) {
	if m, err := chess.ParseUCI(text); err == nil {
		if legal, err := engine.ResolveMove(pos, m); err == nil {
			return legal, nil
		}
	}
	return ParseSAN(pos, text)
}
