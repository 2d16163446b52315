package chess

import "strings"

// CastlingRights is the set of castling options still available.
// Rights are only ever removed during play.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling CastlingRights = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// Has reports whether every right in r is held.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r && r != NoCastling
}

// Without returns c with the rights in r removed.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// String returns the FEN castling field: a subset of "KQkq", or "-".
func (c CastlingRights) String() string {
	if c == NoCastling {
		return "-"
	}
	var b strings.Builder
	for _, side := range CastlingSides {
		if c.Has(side.Right) {
			b.WriteByte(side.Letter)
		}
	}
	return b.String()
}

// CastlingSide describes the fixed geometry of one castling option.
type CastlingSide struct {
	Right  CastlingRights
	Colour Colour
	Kind   MoveKind
	Letter byte // FEN letter

	King   Square // King home square
	KingTo Square
	Rook   Square // Rook home square
	RookTo Square

	// Between lists the squares that must be empty, including b1/b8 on the
	// queen side.
	Between []Square

	// KingPath lists the squares the king starts on, passes and lands on.
	// None of them may be attacked.
	KingPath []Square
}

// CastlingSides holds the four castling options in FEN order.
var CastlingSides = [4]CastlingSide{
	{
		Right: WhiteKingside, Colour: White, Kind: KingsideCastle, Letter: 'K',
		King: E1, KingTo: G1, Rook: H1, RookTo: F1,
		Between:  []Square{F1, G1},
		KingPath: []Square{E1, F1, G1},
	},
	{
		Right: WhiteQueenside, Colour: White, Kind: QueensideCastle, Letter: 'Q',
		King: E1, KingTo: C1, Rook: A1, RookTo: D1,
		Between:  []Square{D1, C1, B1},
		KingPath: []Square{E1, D1, C1},
	},
	{
		Right: BlackKingside, Colour: Black, Kind: KingsideCastle, Letter: 'k',
		King: E8, KingTo: G8, Rook: H8, RookTo: F8,
		Between:  []Square{F8, G8},
		KingPath: []Square{E8, F8, G8},
	},
	{
		Right: BlackQueenside, Colour: Black, Kind: QueensideCastle, Letter: 'q',
		King: E8, KingTo: C8, Rook: A8, RookTo: D8,
		Between:  []Square{D8, C8, B8},
		KingPath: []Square{E8, D8, C8},
	},
}

// CastlingSideFor returns the castling option of the given colour and kind.
func CastlingSideFor(colour Colour, kind MoveKind) (CastlingSide, bool) {
	for _, side := range CastlingSides {
		if side.Colour == colour && side.Kind == kind {
			return side, true
		}
	}
	return CastlingSide{}, false
}

// CastlingRightsFor returns both rights of one colour.
func CastlingRightsFor(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

// ParseCastlingRights parses the FEN castling field. It reports false for
// any character outside "KQkq", for repeated letters and for an empty field.
func ParseCastlingRights(s string) (CastlingRights, bool) {
	if s == "-" {
		return NoCastling, true
	}
	if s == "" {
		return NoCastling, false
	}
	rights := NoCastling
	for i := 0; i < len(s); i++ {
		var r CastlingRights
		switch s[i] {
		case 'K':
			r = WhiteKingside
		case 'Q':
			r = WhiteQueenside
		case 'k':
			r = BlackKingside
		case 'q':
			r = BlackQueenside
		default:
			return NoCastling, false
		}
		if rights.Has(r) {
			return NoCastling, false
		}
		rights |= r
	}
	return rights, true
}
