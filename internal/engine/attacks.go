package engine

import (
	"iter"

	"github.com/lgbarn/chesstree-go/internal/chess"
)

// Attackers yields every square holding a piece of the given colour that
// attacks sq. The sequence is lazy and may be ranged over more than once.
func Attackers(pos *chess.Position, colour chess.Colour, sq chess.Square) iter.Seq[chess.Square] {
	return func(yield func(chess.Square) bool) {
		if !sq.IsValid() {
			return
		}
		for from, piece := range pos.Squares() {
			if piece.Colour() != colour || from == sq {
				continue
			}
			if canAttack(pos, piece, from, sq) && !yield(from) {
				return
			}
		}
	}
}

// IsAttacked reports whether any piece of the given colour attacks sq.
func IsAttacked(pos *chess.Position, colour chess.Colour, sq chess.Square) bool {
	for range Attackers(pos, colour, sq) {
		return true
	}
	return false
}

// FindKing returns the square of the given colour's king, or NoSquare.
func FindKing(pos *chess.Position, colour chess.Colour) chess.Square {
	king := chess.MakePiece(colour, chess.King)
	for sq, piece := range pos.Squares() {
		if piece == king {
			return sq
		}
	}
	return chess.NoSquare
}

// IsInCheck returns true if the given colour's king is attacked.
func IsInCheck(pos *chess.Position, colour chess.Colour) bool {
	king := FindKing(pos, colour)
	if king == chess.NoSquare {
		return false
	}
	return IsAttacked(pos, colour.Opposite(), king)
}
