// board.go - Text board rendering
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/lgbarn/chesstree-go/internal/chess"
)

// boardPalette colours the squares of a rendered board.
type boardPalette struct {
	light *color.Color
	dark  *color.Color
	plain bool
}

// newBoardPalette returns the square colours. Without colour, empty
// squares are drawn as dots so the board stays readable.
func newBoardPalette(colour bool) boardPalette {
	p := boardPalette{
		light: color.New(color.BgHiWhite, color.FgBlack, color.Bold),
		dark:  color.New(color.BgGreen, color.FgBlack, color.Bold),
		plain: !colour,
	}
	if colour {
		p.light.EnableColor()
		p.dark.EnableColor()
	} else {
		p.light.DisableColor()
		p.dark.DisableColor()
	}
	return p
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// renderBoard draws pos with rank 8 at the top, White pieces in upper case.
func renderBoard(w io.Writer, pos *chess.Position, colour bool) error {
	palette := newBoardPalette(colour)
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			sb.WriteString(palette.square(sq, pos.Get(sq)))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("  ")
	for file := 0; file < chess.BoardSize; file++ {
		fmt.Fprintf(&sb, " %c ", 'a'+file)
	}
	sb.WriteByte('\n')

	_, err := io.WriteString(w, sb.String())
	return err
}

// square renders one cell three characters wide.
func (p boardPalette) square(sq chess.Square, piece chess.Piece) string {
	symbol := " "
	switch {
	case piece != chess.NoPiece:
		symbol = string(piece.Symbol())
	case p.plain:
		symbol = "."
	}

	c := p.dark
	if (sq.File()+sq.Rank())%2 == 1 {
		c = p.light
	}
	return c.Sprint(" " + symbol + " ")
}
