// Package engine provides chess move generation, validation and position
// manipulation.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN parses all six FEN fields. Any deviation from the format is
// reported as a *errors.FENError.
func ParseFEN(fen string) (chess.Position, error) {
	parts := strings.Split(strings.TrimSpace(fen), " ")
	if len(parts) != 6 {
		return chess.Position{}, fenError(fen, "expected 6 fields, got %d", len(parts))
	}

	pos := chess.NewEmptyPosition()

	if err := parsePiecePositions(&pos, fen, parts[0]); err != nil {
		return chess.Position{}, err
	}
	if err := parseSideToMove(&pos, fen, parts[1]); err != nil {
		return chess.Position{}, err
	}
	if err := parseCastlingRights(&pos, fen, parts[2]); err != nil {
		return chess.Position{}, err
	}
	if err := parseEnPassant(&pos, fen, parts[3]); err != nil {
		return chess.Position{}, err
	}
	if err := parseClocks(&pos, fen, parts[4], parts[5]); err != nil {
		return chess.Position{}, err
	}

	return pos, nil
}

// MustParseFEN parses a FEN string and panics on error. Intended for
// constants and tests.
func MustParseFEN(fen string) chess.Position {
	pos, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return pos
}

func fenError(fen, format string, args ...interface{}) error {
	return &errors.FENError{FEN: fen, Reason: fmt.Sprintf(format, args...)}
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(pos *chess.Position, fen, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != chess.BoardSize {
		return fenError(fen, "expected 8 ranks, got %d", len(ranks))
	}

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		prevDigit := false
		for j := 0; j < len(row); j++ {
			c := row[j]
			switch {
			case c >= '1' && c <= '8':
				if prevDigit {
					return fenError(fen, "consecutive digits in rank %d", rank+1)
				}
				file += int(c - '0')
				prevDigit = true
			default:
				if file >= chess.BoardSize {
					return fenError(fen, "rank %d has more than 8 squares", rank+1)
				}
				if err := pos.SetSymbol(chess.NewSquare(file, rank), c); err != nil {
					return fenError(fen, "invalid piece character %q", c)
				}
				file++
				prevDigit = false
			}
		}
		if file != chess.BoardSize {
			return fenError(fen, "rank %d has %d squares", rank+1, file)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *chess.Position, fen, field string) error {
	switch field {
	case "w":
		pos.Turn = chess.White
	case "b":
		pos.Turn = chess.Black
	default:
		return fenError(fen, "invalid side to move %q", field)
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(pos *chess.Position, fen, field string) error {
	rights, ok := chess.ParseCastlingRights(field)
	if !ok {
		return fenError(fen, "invalid castling field %q", field)
	}
	pos.Castling = rights
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(pos *chess.Position, fen, field string) error {
	if field == "-" {
		pos.EnPassant = chess.NoSquare
		return nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return fenError(fen, "invalid en passant square %q", field)
	}
	if sq.Rank() != 2 && sq.Rank() != 5 {
		return fenError(fen, "en passant square %q not on rank 3 or 6", field)
	}
	pos.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(pos *chess.Position, fen, halfmove, fullmove string) error {
	h, err := strconv.Atoi(halfmove)
	if err != nil || h < 0 || !isDigits(halfmove) {
		return fenError(fen, "invalid halfmove clock %q", halfmove)
	}
	f, err := strconv.Atoi(fullmove)
	if err != nil || f < 1 || !isDigits(fullmove) {
		return fenError(fen, "invalid fullmove number %q", fullmove)
	}
	pos.HalfmoveClock = h
	pos.FullmoveNumber = f
	return nil
}

// isDigits rejects the signs strconv.Atoi accepts.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

// FEN converts a position to a FEN string.
func FEN(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", pos.HalfmoveClock, pos.FullmoveNumber)

	return sb.String()
}

// EPD returns the first four FEN fields, which identify a position for
// repetition and indexing.
func EPD(pos *chess.Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, pos)
	sb.WriteByte(' ')
	writeSideToMove(&sb, pos)
	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, pos *chess.Position) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.Get(chess.NewSquare(file, rank))
			if piece == chess.NoPiece {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Symbol())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, pos *chess.Position) {
	if pos.Turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() chess.Position {
	return MustParseFEN(InitialFEN)
}

// PositionForTags returns the starting position named by a FEN tag, or the
// standard starting position when there is none.
func PositionForTags(tags map[string]string) (chess.Position, error) {
	if fen, ok := tags[chess.TagFEN]; ok && fen != "" {
		return ParseFEN(fen)
	}
	return NewInitialPosition(), nil
}
