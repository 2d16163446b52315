package engine

import "github.com/lgbarn/chesstree-go/internal/chess"

// PseudoLegalMoves returns every move of the side to move that obeys piece
// movement rules, without checking whether the mover's king is left attacked.
// Castling moves are only produced when fully legal.
func PseudoLegalMoves(pos *chess.Position) []chess.Move {
	moves := make([]chess.Move, 0, 48)
	for from, piece := range pos.Squares() {
		if piece.Colour() != pos.Turn {
			continue
		}
		moves = appendPieceMoves(pos, from, piece, moves)
	}
	return generateCastlingMoves(pos, moves)
}

// PseudoLegalMovesFrom returns the pseudo-legal moves of the piece on from.
// It is empty when from does not hold a piece of the side to move.
func PseudoLegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	piece := pos.Get(from)
	if piece == chess.NoPiece || piece.Colour() != pos.Turn {
		return nil
	}
	moves := appendPieceMoves(pos, from, piece, nil)
	if piece.Type() == chess.King {
		moves = generateCastlingMoves(pos, moves)
	}
	return moves
}

// appendPieceMoves appends the pseudo-legal non-castling moves of one piece.
func appendPieceMoves(pos *chess.Position, from chess.Square, piece chess.Piece, moves []chess.Move) []chess.Move {
	t := piece.Type()
	colour := piece.Colour()
	if t == chess.Pawn {
		return generatePawnMoves(pos, from, colour, moves)
	}

	for _, step := range pieceOffsets(t) {
		for to := from.Offset(step); to.IsValid(); to = to.Offset(step) {
			target := pos.Board[to]
			if target == chess.NoPiece {
				moves = append(moves, chess.NewMove(from, to))
			} else {
				if target.Colour() != colour {
					moves = append(moves, chess.NewMove(from, to))
				}
				break
			}
			if !t.IsSlider() {
				break
			}
		}
	}
	return moves
}

// LegalMoves returns every legal move of the side to move.
func LegalMoves(pos *chess.Position) []chess.Move {
	return filterLegal(pos, PseudoLegalMoves(pos))
}

// LegalMovesFrom returns the legal moves of the piece on from.
func LegalMovesFrom(pos *chess.Position, from chess.Square) []chess.Move {
	return filterLegal(pos, PseudoLegalMovesFrom(pos, from))
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func HasLegalMoves(pos *chess.Position) bool {
	for _, m := range PseudoLegalMoves(pos) {
		if leavesKingSafe(pos, m) {
			return true
		}
	}
	return false
}

// filterLegal keeps the moves that do not leave the mover's king attacked.
// The input slice is reused.
func filterLegal(pos *chess.Position, moves []chess.Move) []chess.Move {
	legal := moves[:0]
	for _, m := range moves {
		if leavesKingSafe(pos, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// leavesKingSafe plays m on a copy of pos and checks the mover's king.
func leavesKingSafe(pos *chess.Position, m chess.Move) bool {
	next := *pos
	ApplyMove(&next, m)
	return !IsInCheck(&next, pos.Turn)
}

// IsLegal reports whether m is a legal move in pos.
func IsLegal(pos *chess.Position, m chess.Move) bool {
	_, ok := findLegal(pos, m)
	return ok
}

// findLegal returns the generated legal move equal to m, which carries the
// correct kind.
func findLegal(pos *chess.Position, m chess.Move) (chess.Move, bool) {
	for _, legal := range LegalMovesFrom(pos, m.From) {
		if legal.Equal(m) {
			return legal, true
		}
	}
	return chess.Move{}, false
}

// Perft counts the leaf nodes of the legal move tree to the given depth.
func Perft(pos *chess.Position, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := LegalMoves(pos)
	if depth == 1 {
		return len(moves)
	}
	total := 0
	for _, m := range moves {
		next := *pos
		ApplyMove(&next, m)
		total += Perft(&next, depth-1)
	}
	return total
}
