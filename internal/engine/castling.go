package engine

import "github.com/lgbarn/chesstree-go/internal/chess"

// generateCastlingMoves appends the castling moves available to the side
// to move. A castling move is only produced when the right is held, king
// and rook stand on their home squares, the squares between them are empty
// and no square the king touches is attacked.
func generateCastlingMoves(pos *chess.Position, moves []chess.Move) []chess.Move {
	colour := pos.Turn
	king := chess.MakePiece(colour, chess.King)
	rook := chess.MakePiece(colour, chess.Rook)

	for _, side := range chess.CastlingSides {
		if side.Colour != colour || !pos.Castling.Has(side.Right) {
			continue
		}
		if pos.Board[side.King] != king || pos.Board[side.Rook] != rook {
			continue
		}
		if !squaresEmpty(pos, side.Between) {
			continue
		}
		if anyAttacked(pos, colour.Opposite(), side.KingPath) {
			continue
		}
		moves = append(moves, chess.Move{From: side.King, To: side.KingTo, Kind: side.Kind})
	}
	return moves
}

func squaresEmpty(pos *chess.Position, squares []chess.Square) bool {
	for _, sq := range squares {
		if pos.Board[sq] != chess.NoPiece {
			return false
		}
	}
	return true
}

func anyAttacked(pos *chess.Position, by chess.Colour, squares []chess.Square) bool {
	for _, sq := range squares {
		if IsAttacked(pos, by, sq) {
			return true
		}
	}
	return false
}

// applyCastleRook moves the rook that accompanies a castling king.
func applyCastleRook(pos *chess.Position, colour chess.Colour, kind chess.MoveKind) {
	side, ok := chess.CastlingSideFor(colour, kind)
	if !ok {
		return
	}
	pos.Board[side.RookTo] = pos.Board[side.Rook]
	pos.Board[side.Rook] = chess.NoPiece
}

// updateCastlingRights drops every right whose king or rook has left its
// home square, whether by moving or by being captured.
func updateCastlingRights(pos *chess.Position) {
	for _, side := range chess.CastlingSides {
		if !pos.Castling.Has(side.Right) {
			continue
		}
		if pos.Board[side.King] != chess.MakePiece(side.Colour, chess.King) ||
			pos.Board[side.Rook] != chess.MakePiece(side.Colour, chess.Rook) {
			pos.Castling = pos.Castling.Without(side.Right)
		}
	}
}
