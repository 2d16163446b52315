package chess

import (
	"github.com/lgbarn/chesstree-go/internal/errors"
)

// Move is a single move: source, destination and optional promotion piece.
// Kind is filled in by the move generator; a move parsed from text carries
// NormalMove until it is resolved against a position.
type Move struct {
	From      Square
	To        Square
	Promotion PieceType
	Kind      MoveKind
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// NewPromotion creates a promoting pawn move.
func NewPromotion(from, to Square, promotion PieceType) Move {
	return Move{From: from, To: to, Promotion: promotion, Kind: PromotionMove}
}

// Equal compares moves by source, destination and promotion only.
func (m Move) Equal(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Promotion == o.Promotion
}

// IsValid reports whether both squares are on the board and differ.
func (m Move) IsValid() bool {
	return m.From.IsValid() && m.To.IsValid() && m.From != m.To
}

// IsPromotion returns true if this move is a pawn promotion.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoPieceType
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	switch m.Kind {
	case KingsideCastle, QueensideCastle:
		return true
	default:
		return false
	}
}

// IsEnPassant returns true if this move captures en passant.
func (m Move) IsEnPassant() bool {
	return m.Kind == EnPassantCapture
}

// UCI renders the move as <from><to>[q|r|b|n].
func (m Move) UCI() string {
	b := make([]byte, 0, 5)
	b = append(b, m.From.FileChar(), m.From.RankChar(), m.To.FileChar(), m.To.RankChar())
	if m.IsPromotion() {
		b = append(b, m.Promotion.Letter()+('a'-'A'))
	}
	return string(b)
}

// String returns the UCI text.
func (m Move) String() string {
	return m.UCI()
}

// ParseUCI parses UCI move text. The result is not checked against any
// position.
func ParseUCI(text string) (Move, error) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, &errors.MoveError{Err: errors.ErrInvalidMove, Move: text, Reason: "expected 4 or 5 characters"}
	}
	from, err := ParseSquare(text[0:2])
	if err != nil {
		return Move{}, &errors.MoveError{Err: errors.ErrInvalidMove, Move: text, Reason: "bad source square"}
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, &errors.MoveError{Err: errors.ErrInvalidMove, Move: text, Reason: "bad target square"}
	}
	if from == to {
		return Move{}, &errors.MoveError{Err: errors.ErrInvalidMove, Move: text, Reason: "source equals target"}
	}
	m := NewMove(from, to)
	if len(text) == 5 {
		switch text[4] {
		case 'q', 'r', 'b', 'n':
			m.Promotion = PieceTypeFromLetter(text[4])
			m.Kind = PromotionMove
		default:
			return Move{}, &errors.MoveError{Err: errors.ErrInvalidMove, Move: text, Reason: "bad promotion piece"}
		}
	}
	return m, nil
}
