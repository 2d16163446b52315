// Package notation converts moves to and from human and engine text:
// Standard Algebraic Notation, long algebraic notation and UCI.
package notation

import (
	"regexp"
	"strings"

	"github.com/lgbarn/chesstree-go/internal/chess"
	"github.com/lgbarn/chesstree-go/internal/engine"
	"github.com/lgbarn/chesstree-go/internal/errors"
)

// Castling text as written in SAN.
const (
	KingsideCastleText  = "O-O"
	QueensideCastleText = "O-O-O"
)

var sanRegex = regexp.MustCompile(`^([NBKRQ])?([a-h])?([1-8])?x?([a-h][1-8])(=?[NBRQ])?[+#]?$`)

// SAN renders a legal move in Standard Algebraic Notation. It fails with a
// *errors.MoveError when m is not legal in pos.
func SAN(pos *chess.Position, m chess.Move) (string, error) {
	legal, err := engine.ResolveMove(pos, m)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	switch legal.Kind {
	case chess.KingsideCastle:
		sb.WriteString(KingsideCastleText)
	case chess.QueensideCastle:
		sb.WriteString(QueensideCastleText)
	default:
		writeSANBody(&sb, pos, legal)
	}

	next := *pos
	engine.ApplyMove(&next, legal)
	sb.WriteString(checkSuffix(&next))

	return sb.String(), nil
}

// MustSAN renders a move and panics if it is illegal.
func MustSAN(pos *chess.Position, m chess.Move) string {
	san, err := SAN(pos, m)
	if err != nil {
		panic(err)
	}
	return san
}

// writeSANBody writes piece letter, disambiguator, capture, target and
// promotion of a non-castling move.
func writeSANBody(sb *strings.Builder, pos *chess.Position, m chess.Move) {
	piece := pos.Get(m.From)
	capture := pos.Get(m.To) != chess.NoPiece || m.Kind == chess.EnPassantCapture

	if piece.Type() == chess.Pawn {
		if capture {
			sb.WriteByte(m.From.FileChar())
			sb.WriteByte('x')
		}
	} else {
		sb.WriteByte(piece.Type().Letter())
		sb.WriteString(disambiguator(pos, m, piece))
		if capture {
			sb.WriteByte('x')
		}
	}

	sb.WriteString(m.To.String())

	if m.IsPromotion() {
		sb.WriteByte('=')
		sb.WriteByte(m.Promotion.Letter())
	}
}

// disambiguator returns the source file, rank or square needed to tell m
// apart from other legal moves of the same piece to the same target.
func disambiguator(pos *chess.Position, m chess.Move, piece chess.Piece) string {
	ambiguous, sameFile, sameRank := false, false, false

	for _, other := range engine.LegalMoves(pos) {
		if other.From == m.From || other.To != m.To || pos.Get(other.From) != piece {
			continue
		}
		ambiguous = true
		if other.From.File() == m.From.File() {
			sameFile = true
		}
		if other.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}

	switch {
	case !ambiguous:
		return ""
	case sameFile && sameRank:
		return m.From.String()
	case sameFile:
		return string(m.From.RankChar())
	default:
		return string(m.From.FileChar())
	}
}

// checkSuffix returns "#" for mate, "+" for check, "" otherwise.
func checkSuffix(pos *chess.Position) string {
	switch engine.CheckStatus(pos) {
	case chess.Checkmate:
		return "#"
	case chess.Check:
		return "+"
	default:
		return ""
	}
}

// ParseSAN resolves SAN text to the unique legal move it names in pos.
// Trailing annotation marks (!, ?) and an "e.p." suffix are tolerated.
// No match yields a *errors.MoveError; several matches yield a
// *errors.AmbiguousMoveError.
func ParseSAN(pos *chess.Position, text string) (chess.Move, error) {
	san := cleanSAN(text)

	if kind, ok := castlingKind(san); ok {
		return parseCastling(pos, text, kind)
	}

	matches := sanRegex.FindStringSubmatch(san)
	if matches == nil {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrInvalidMove, Move: text, Reason: "not SAN"}
	}

	pieceType := chess.Pawn
	if matches[1] != "" {
		pieceType = chess.PieceTypeFromLetter(matches[1][0])
	}
	piece := chess.MakePiece(pos.Turn, pieceType)
	target := chess.MustSquare(matches[4])
	promotion := chess.NoPieceType
	if p := matches[5]; p != "" {
		promotion = chess.PieceTypeFromLetter(p[len(p)-1])
	}

	var found []chess.Move
	for _, m := range engine.LegalMoves(pos) {
		if pos.Get(m.From) != piece || m.To != target || m.Promotion != promotion {
			continue
		}
		if matches[2] != "" && m.From.FileChar() != matches[2][0] {
			continue
		}
		if matches[3] != "" && m.From.RankChar() != matches[3][0] {
			continue
		}
		found = append(found, m)
	}

	switch len(found) {
	case 0:
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, FEN: engine.FEN(pos), Reason: "no legal move matches"}
	case 1:
		return found[0], nil
	default:
		candidates := make([]string, len(found))
		for i, m := range found {
			candidates[i] = m.UCI()
		}
		return chess.Move{}, &errors.AmbiguousMoveError{Move: text, FEN: engine.FEN(pos), Candidates: candidates}
	}
}

// cleanSAN strips annotation marks and an en passant suffix.
func cleanSAN(text string) string {
	san := strings.TrimSpace(text)
	san = strings.TrimSuffix(san, "e.p.")
	san = strings.TrimSpace(san)
	return strings.TrimRight(san, "!?")
}

// castlingKind recognizes castling text, with either letter O or digit 0
// and an optional check suffix.
func castlingKind(san string) (chess.MoveKind, bool) {
	switch strings.TrimRight(san, "+#") {
	case KingsideCastleText, "0-0":
		return chess.KingsideCastle, true
	case QueensideCastleText, "0-0-0":
		return chess.QueensideCastle, true
	default:
		return chess.NormalMove, false
	}
}

func parseCastling(pos *chess.Position, text string, kind chess.MoveKind) (chess.Move, error) {
	side, _ := chess.CastlingSideFor(pos.Turn, kind)
	m, err := engine.ResolveMove(pos, chess.NewMove(side.King, side.KingTo))
	if err != nil || m.Kind != kind {
		return chess.Move{}, &errors.MoveError{Err: errors.ErrIllegalMove, Move: text, FEN: engine.FEN(pos), Reason: "castling not available"}
	}
	return m, nil
}
