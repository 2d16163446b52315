package chess

import (
	"fmt"

	"github.com/lgbarn/chesstree-go/internal/errors"
)

// Square is a board coordinate on a 0x88 grid: rank*16 + file.
// Any value with a bit of 0x88 set lies off the board.
type Square int

// NoSquare is the absent square (no en passant target, king not found).
const NoSquare Square = -1

// Board dimensions.
const (
	BoardSize  = 8
	BoardCells = 128
)

const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
)

const (
	A2 Square = iota + 0x10
	B2
	C2
	D2
	E2
	F2
	G2
	H2
)

const (
	A3 Square = iota + 0x20
	B3
	C3
	D3
	E3
	F3
	G3
	H3
)

const (
	A4 Square = iota + 0x30
	B4
	C4
	D4
	E4
	F4
	G4
	H4
)

const (
	A5 Square = iota + 0x40
	B5
	C5
	D5
	E5
	F5
	G5
	H5
)

const (
	A6 Square = iota + 0x50
	B6
	C6
	D6
	E6
	F6
	G6
	H6
)

const (
	A7 Square = iota + 0x60
	B7
	C7
	D7
	E7
	F7
	G7
	H7
)

const (
	A8 Square = iota + 0x70
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NewSquare builds a square from a 0-based file and rank. It returns
// NoSquare when either is outside 0..7.
func NewSquare(file, rank int) Square {
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare
	}
	return Square(rank<<4 | file)
}

// SquareFromIndex converts a 0..63 index (a1=0, h8=63) to a square.
func SquareFromIndex(i int) Square {
	if i < 0 || i >= BoardSize*BoardSize {
		return NoSquare
	}
	return Square(i + (i &^ 7))
}

// ParseSquare parses a square name such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("%q: %w", s, errors.ErrInvalidSquare)
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1')), nil
}

// MustSquare parses a square name and panics if it is invalid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// IsValid reports whether s lies on the board.
func (s Square) IsValid() bool {
	return s >= 0 && s < BoardCells && s&0x88 == 0
}

// File returns the 0-based file (0 = a).
func (s Square) File() int {
	return int(s) & 7
}

// Rank returns the 0-based rank (0 = rank 1).
func (s Square) Rank() int {
	return int(s) >> 4
}

// Index returns the 0..63 index, a1=0, h8=63.
func (s Square) Index() int {
	return s.Rank()*BoardSize + s.File()
}

// FileChar returns the file letter 'a'..'h'.
func (s Square) FileChar() byte {
	return byte('a' + s.File())
}

// RankChar returns the rank digit '1'..'8'.
func (s Square) RankChar() byte {
	return byte('1' + s.Rank())
}

// String returns the square name, or "-" for NoSquare.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return string([]byte{s.FileChar(), s.RankChar()})
}

// IsLight reports whether s is a light square (a1 is dark).
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 1
}

// Offset returns the square d steps away on the 0x88 grid. The result may
// be off the board; check with IsValid.
func (s Square) Offset(d int) Square {
	return s + Square(d)
}
