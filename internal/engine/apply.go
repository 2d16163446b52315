package engine

import (
	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/errors"
)

// MakeMove validates m against pos and returns the position after it.
// pos is not modified. An illegal move yields a *errors.MoveError wrapping
// errors.ErrIllegalMove.
func MakeMove(pos *chess.Position, m chess.Move) (chess.Position, error) {
	legal, err := ResolveMove(pos, m)
	if err != nil {
		return chess.Position{}, err
	}
	next := *pos
	ApplyMove(&next, legal)
	return next, nil
}

// MakeMoveUnchecked returns the position after m without checking legality.
// The move kind is derived from the position.
func MakeMoveUnchecked(pos *chess.Position, m chess.Move) chess.Position {
	m.Kind = Classify(pos, m)
	next := *pos
	ApplyMove(&next, m)
	return next
}

// ResolveMove returns the legal move of pos equal to m, with its kind set.
func ResolveMove(pos *chess.Position, m chess.Move) (chess.Move, error) {
	if !m.IsValid() {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrInvalidMove, Move: m.UCI(), FEN: FEN(pos)}
	}
	legal, ok := findLegal(pos, m)
	if !ok {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: m.UCI(), FEN: FEN(pos)}
	}
	return legal, nil
}

// Classify derives the kind of m from the piece it moves in pos.
func Classify(pos *chess.Position, m chess.Move) chess.MoveKind {
	piece := pos.Get(m.From)
	switch piece.Type() {
	case chess.King:
		if abs(m.To.File()-m.From.File()) == 2 && m.From.Rank() == m.To.Rank() {
			if m.To.File() > m.From.File() {
				return chess.KingsideCastle
			}
			return chess.QueensideCastle
		}
	case chess.Pawn:
		switch {
		case m.Promotion != chess.NoPieceType:
			return chess.PromotionMove
		case abs(m.To.Rank()-m.From.Rank()) == 2:
			return chess.DoublePawnPush
		case m.To == pos.EnPassant && m.To.File() != m.From.File() && pos.Get(m.To) == chess.NoPiece:
			return chess.EnPassantCapture
		}
	}
	return chess.NormalMove
}

// ApplyMove plays m on pos in place without validation. The move's kind is
// trusted.
func ApplyMove(pos *chess.Position, m chess.Move) {
	colour := pos.Turn
	piece := pos.Board[m.From]
	captured := pos.Board[m.To]

	pos.Board[m.To] = piece
	pos.Board[m.From] = chess.NoPiece

	if m.Kind == chess.EnPassantCapture {
		victim := m.To.Offset(-pawnForward(colour))
		captured = pos.Board[victim]
		pos.Board[victim] = chess.NoPiece
	}

	pos.EnPassant = chess.NoSquare
	if m.Kind == chess.DoublePawnPush && hasTheoreticalEPRight(pos, m.To, colour) {
		pos.EnPassant = m.From.Offset(pawnForward(colour))
	}

	if m.Promotion != chess.NoPieceType {
		pos.Board[m.To] = chess.MakePiece(colour, m.Promotion)
	}

	if m.IsCastle() {
		applyCastleRook(pos, colour, m.Kind)
	}

	updateCastlingRights(pos)

	if piece.Type() == chess.Pawn || captured != chess.NoPiece {
		pos.HalfmoveClock = 0
	} else {
		pos.HalfmoveClock++
	}
	if colour == chess.Black {
		pos.FullmoveNumber++
	}
	pos.Turn = colour.Opposite()
}
