package chess

import (
	"fmt"
	"iter"

	"github.com/lgbarn/chesstree-go/internal/errors"
)

// Position is a complete chess position. It is a plain value: assigning a
// Position copies the board, so a copy can be modified freely.
//
// The zero value has an en passant target of a1; build positions with
// NewEmptyPosition or by parsing FEN.
type Position struct {
	// Board is indexed by 0x88 square; off-board cells are always NoPiece.
	Board [BoardCells]Piece

	// Who has the next move.
	Turn Colour

	// Castling options still available.
	Castling CastlingRights

	// Square a pawn passed over on the previous move, or NoSquare.
	EnPassant Square

	// Half-moves since the last pawn move or capture.
	HalfmoveClock int

	// Starts at 1 and increments after Black moves.
	FullmoveNumber int
}

// NewEmptyPosition returns a board with no pieces, White to move.
func NewEmptyPosition() Position {
	return Position{
		Turn:           White,
		EnPassant:      NoSquare,
		FullmoveNumber: 1,
	}
}

// Get returns the piece on sq, or NoPiece when sq is empty or off the board.
func (p *Position) Get(sq Square) Piece {
	if !sq.IsValid() {
		return NoPiece
	}
	return p.Board[sq]
}

// Set places a piece on sq. Off-board squares are ignored.
func (p *Position) Set(sq Square, piece Piece) {
	if sq.IsValid() {
		p.Board[sq] = piece
	}
}

// Clear empties sq.
func (p *Position) Clear(sq Square) {
	p.Set(sq, NoPiece)
}

// SetSymbol places the piece named by a FEN letter on sq.
func (p *Position) SetSymbol(sq Square, symbol byte) error {
	piece, ok := PieceFromSymbol(symbol)
	if !ok {
		return fmt.Errorf("piece symbol %q: %w", symbol, errors.ErrInvalidFEN)
	}
	if !sq.IsValid() {
		return fmt.Errorf("square %d: %w", sq, errors.ErrInvalidSquare)
	}
	p.Board[sq] = piece
	return nil
}

// Squares yields every occupied square and its piece, a1 first.
func (p *Position) Squares() iter.Seq2[Square, Piece] {
	return func(yield func(Square, Piece) bool) {
		for sq := A1; sq <= H8; sq++ {
			if sq&0x88 != 0 || p.Board[sq] == NoPiece {
				continue
			}
			if !yield(sq, p.Board[sq]) {
				return
			}
		}
	}
}

// Count returns how many pieces of the given colour and type are on the board.
func (p *Position) Count(colour Colour, t PieceType) int {
	want := MakePiece(colour, t)
	n := 0
	for _, piece := range p.Squares() {
		if piece == want {
			n++
		}
	}
	return n
}

// Equal reports whether two positions are identical in every field.
func (p *Position) Equal(o *Position) bool {
	return *p == *o
}

// SamePlacement reports whether two positions repeat each other for the
// purpose of repetition: same pieces, side to move, castling and en passant.
// Move counters are ignored.
func (p *Position) SamePlacement(o *Position) bool {
	return p.Board == o.Board &&
		p.Turn == o.Turn &&
		p.Castling == o.Castling &&
		p.EnPassant == o.EnPassant
}
