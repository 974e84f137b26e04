package main

import (
	"strings"

	"github.com/fatih/color"

	"github.com/chossdev/choss/board"
	"github.com/chossdev/choss/position"
)

var (
	lightSquare = color.New(color.FgBlack, color.BgHiWhite)
	darkSquare  = color.New(color.FgBlack, color.BgHiCyan)
	boardLabel  = color.New(color.Bold)
)

// draw renders the board with checkered backgrounds, rank 0 on top to
// match the coordinate convention.
func draw(b *board.Board) string {
	builder := strings.Builder{}
	for y := 0; y < b.Height(); y++ {
		_, _ = builder.WriteString(boardLabel.Sprintf(" %d ", y))
		for x := 0; x < b.Width(); x++ {
			sq, _ := b.Get(position.Pos{X: x, Y: y})
			sym := " "
			if !sq.IsEmpty() {
				sym = sq.Piece.SymbolUnicode(sq.Side)
			}
			cell := lightSquare
			if (x+y)%2 == 1 {
				cell = darkSquare
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteRune('\n')
	}
	_, _ = builder.WriteString("   ")
	for x := 0; x < b.Width(); x++ {
		_, _ = builder.WriteString(boardLabel.Sprintf(" %s ", position.Pos{X: x}.NotationComponentX()))
	}
	return builder.String()
}
