package engine

import "github.com/lgbarn/chesstree-go/internal/chess"

// pawnStartRank returns the 0-based rank pawns of the colour start on.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return 6
}

// promotionRank returns the 0-based rank pawns of the colour promote on.
func promotionRank(colour chess.Colour) int {
	if colour == chess.White {
		return 7
	}
	return 0
}

// pawnForward returns the 0x88 offset of one step forward for the colour.
func pawnForward(colour chess.Colour) int {
	return 16 * chess.ColourOffset(colour)
}

// generatePawnMoves appends the pseudo-legal moves of the pawn on from.
func generatePawnMoves(pos *chess.Position, from chess.Square, colour chess.Colour, moves []chess.Move) []chess.Move {
	forward := pawnForward(colour)

	one := from.Offset(forward)
	if one.IsValid() && pos.Board[one] == chess.NoPiece {
		moves = appendPawnMove(moves, from, one, colour)
		two := one.Offset(forward)
		if from.Rank() == pawnStartRank(colour) && pos.Board[two] == chess.NoPiece {
			moves = append(moves, chess.Move{From: from, To: two, Kind: chess.DoublePawnPush})
		}
	}

	for _, side := range [2]int{-1, 1} {
		to := from.Offset(forward + side)
		if !to.IsValid() {
			continue
		}
		target := pos.Board[to]
		switch {
		case target != chess.NoPiece && target.Colour() != colour:
			moves = appendPawnMove(moves, from, to, colour)
		case target == chess.NoPiece && to == pos.EnPassant && isEnPassantVictim(pos, to, colour):
			moves = append(moves, chess.Move{From: from, To: to, Kind: chess.EnPassantCapture})
		}
	}
	return moves
}

// appendPawnMove appends a pawn move, expanding it into the four
// promotions when it reaches the last rank.
func appendPawnMove(moves []chess.Move, from, to chess.Square, colour chess.Colour) []chess.Move {
	if to.Rank() != promotionRank(colour) {
		return append(moves, chess.NewMove(from, to))
	}
	for _, t := range chess.PromotionTypes {
		moves = append(moves, chess.NewPromotion(from, to, t))
	}
	return moves
}

// isEnPassantVictim reports whether an enemy pawn sits behind the en
// passant target, where a double push would have left it.
func isEnPassantVictim(pos *chess.Position, target chess.Square, colour chess.Colour) bool {
	victim := target.Offset(-pawnForward(colour))
	return victim.IsValid() && pos.Board[victim] == chess.MakePiece(colour.Opposite(), chess.Pawn)
}

// hasTheoreticalEPRight reports whether an enemy pawn stands next to the
// pawn that just double-pushed to landed, so that an en passant capture is
// at least geometrically possible.
func hasTheoreticalEPRight(pos *chess.Position, landed chess.Square, mover chess.Colour) bool {
	enemyPawn := chess.MakePiece(mover.Opposite(), chess.Pawn)
	for _, side := range [2]int{-1, 1} {
		sq := landed.Offset(side)
		if sq.IsValid() && pos.Board[sq] == enemyPawn {
			return true
		}
	}
	return false
}
