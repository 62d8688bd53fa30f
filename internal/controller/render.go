package controller

import (
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"
	"github.com/logrusorgru/aurora"
)

// Render prints the grid with row and column indices, colouring claimed
// boxes by owner.
func Render(b chess.Board, au aurora.Aurora) string {
	var builder strings.Builder
	builder.WriteString("  ")
	for j := range chess.Cols {
		builder.WriteString(strconv.Itoa(j))
	}
	builder.WriteString("\n")

	for i := range chess.Rows {
		builder.WriteString(strconv.Itoa(i))
		builder.WriteString(" ")
		for j := range chess.Cols {
			p := chess.NewPos(i, j)
			cell := b.At(p)
			glyph := cell.Glyph(p.Kind())
			switch cell {
			case chess.Player1Box:
				builder.WriteString(au.Blue(glyph).String())
			case chess.Player2Box:
				builder.WriteString(au.Red(glyph).String())
			case chess.Line:
				builder.WriteString(au.Bold(glyph).String())
			default:
				builder.WriteString(glyph)
			}
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
