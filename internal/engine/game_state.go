package engine

import "github.com/lgbarn/chesstree-go/internal/chess"

// IsCheck returns true if the side to move is in check.
func IsCheck(pos *chess.Position) bool {
	return IsInCheck(pos, pos.Turn)
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsCheck(pos) && !HasLegalMoves(pos)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsCheck(pos) && !HasLegalMoves(pos)
}

// IsGameOver returns true on checkmate, stalemate or insufficient material.
func IsGameOver(pos *chess.Position) bool {
	return !HasLegalMoves(pos) || IsInsufficientMaterial(pos)
}

// CheckStatus reports whether the side to move is in check or mated.
func CheckStatus(pos *chess.Position) chess.CheckStatus {
	if !IsCheck(pos) {
		return chess.NoCheck
	}
	if HasLegalMoves(pos) {
		return chess.Check
	}
	return chess.Checkmate
}

// Result returns the PGN result decided by the position alone, or "*".
func Result(pos *chess.Position) string {
	switch {
	case IsCheckmate(pos):
		if pos.Turn == chess.White {
			return chess.ResultBlackWins
		}
		return chess.ResultWhiteWins
	case IsStalemate(pos), IsInsufficientMaterial(pos):
		return chess.ResultDraw
	default:
		return chess.ResultUnknown
	}
}
