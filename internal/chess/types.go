// Package chess provides core chess types: colours, pieces, 0x88 squares,
// castling rights, moves and positions.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ColourOffset returns +1 for White, -1 for Black (for pawn direction).
func ColourOffset(colour Colour) int {
	if colour == White {
		return 1
	}
	return -1
}

// PieceType represents a chess piece without colour.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// PieceTypes lists the real piece types in ascending value.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// PromotionTypes lists the pieces a pawn may promote to, strongest first.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// PieceTypeFromLetter maps a piece letter in either case to its type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoPieceType
	}
}

// IsSlider reports whether the piece moves along rays.
func (t PieceType) IsSlider() bool {
	return t == Bishop || t == Rook || t == Queen
}

// Piece packs a piece type and a colour into one byte. The zero value is NoPiece.
type Piece uint8

// NoPiece marks an empty square.
const NoPiece Piece = 0

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, t PieceType) Piece {
	if t == NoPieceType {
		return NoPiece
	}
	return Piece(uint8(t)<<PieceShift | uint8(colour))
}

// W creates a white piece.
func W(t PieceType) Piece {
	return MakePiece(White, t)
}

// B creates a black piece.
func B(t PieceType) Piece {
	return MakePiece(Black, t)
}

// Type extracts the piece type.
func (p Piece) Type() PieceType {
	return PieceType(p >> PieceShift)
}

// Colour extracts the colour. The result is meaningless for NoPiece.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether p is NoPiece.
func (p Piece) IsEmpty() bool {
	return p == NoPiece
}

// Is reports whether p is a piece of the given colour and type.
func (p Piece) Is(colour Colour, t PieceType) bool {
	return p != NoPiece && p == MakePiece(colour, t)
}

// Symbol returns the FEN letter: uppercase for White, lowercase for Black,
// '.' for an empty square.
func (p Piece) Symbol() byte {
	if p == NoPiece {
		return '.'
	}
	c := p.Type().Letter()
	if p.Colour() == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns the FEN letter as a string.
func (p Piece) String() string {
	return string(p.Symbol())
}

// PieceFromSymbol parses one FEN piece letter.
func PieceFromSymbol(c byte) (Piece, bool) {
	t := PieceTypeFromLetter(c)
	if t == NoPieceType {
		return NoPiece, false
	}
	if c >= 'a' && c <= 'z' {
		return MakePiece(Black, t), true
	}
	return MakePiece(White, t), true
}

// MoveKind categorizes moves by the side effects they have on a position.
type MoveKind int

const (
	NormalMove MoveKind = iota
	DoublePawnPush
	EnPassantCapture
	PromotionMove
	KingsideCastle
	QueensideCastle
)

// String returns the name of the move kind.
func (k MoveKind) String() string {
	names := []string{"Normal", "DoublePawnPush", "EnPassant", "Promotion", "KingsideCastle", "QueensideCastle"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// CheckStatus indicates whether a move gives check or checkmate.
type CheckStatus int

const (
	NoCheck CheckStatus = iota
	Check
	Checkmate
)
