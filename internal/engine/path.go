package engine

import "github.com/lgbarn/chesstree-go/internal/chess"

// 0x88 step offsets for each piece.
var (
	knightOffsets = []int{-33, -31, -18, -14, 14, 18, 31, 33}
	bishopOffsets = []int{-17, -15, 15, 17}
	rookOffsets   = []int{-16, -1, 1, 16}
	kingOffsets   = []int{-17, -16, -15, -1, 1, 15, 16, 17}
)

// pieceOffsets returns the step offsets of a non-pawn piece type.
func pieceOffsets(t chess.PieceType) []int {
	switch t {
	case chess.Knight:
		return knightOffsets
	case chess.Bishop:
		return bishopOffsets
	case chess.Rook:
		return rookOffsets
	case chess.Queen, chess.King:
		return kingOffsets
	default:
		return nil
	}
}

// The 0x88 difference between two on-board squares lies in [-119, 119], and
// every difference maps to at most one direction. attackMask holds, per
// difference, a bit for each piece type that can cover it on an empty board;
// rayStep holds the unit step from source toward target.
const diffOffset = 119

var (
	attackMask [2*diffOffset + 1]uint8
	rayStep    [2*diffOffset + 1]int8
)

func init() {
	for _, d := range knightOffsets {
		attackMask[diffOffset+d] |= pieceBit(chess.Knight)
	}
	for _, d := range kingOffsets {
		attackMask[diffOffset+d] |= pieceBit(chess.King)
	}
	slide := func(dirs []int, types ...chess.PieceType) {
		for _, dir := range dirs {
			for k := 1; k < chess.BoardSize; k++ {
				for _, t := range types {
					attackMask[diffOffset+dir*k] |= pieceBit(t)
				}
				rayStep[diffOffset+dir*k] = int8(dir)
			}
		}
	}
	slide(bishopOffsets, chess.Bishop, chess.Queen)
	slide(rookOffsets, chess.Rook, chess.Queen)
}

func pieceBit(t chess.PieceType) uint8 {
	return 1 << t
}

// isRayClear reports whether every square strictly between from and to along
// step is empty.
func isRayClear(pos *chess.Position, from, to chess.Square, step int) bool {
	for sq := from.Offset(step); sq != to; sq = sq.Offset(step) {
		if pos.Board[sq] != chess.NoPiece {
			return false
		}
	}
	return true
}

// canAttack reports whether the piece on from covers to, honouring blockers.
func canAttack(pos *chess.Position, piece chess.Piece, from, to chess.Square) bool {
	d := int(to - from)
	t := piece.Type()

	if t == chess.Pawn {
		if piece.Colour() == chess.White {
			return d == 15 || d == 17
		}
		return d == -15 || d == -17
	}

	if attackMask[diffOffset+d]&pieceBit(t) == 0 {
		return false
	}
	if !t.IsSlider() {
		return true
	}
	return isRayClear(pos, from, to, int(rayStep[diffOffset+d]))
}
