package chess

import (
	"strings"

	"github.com/pkg/errors"
)

// Board is the cell grid. It is a plain value: assigning a Board copies it,
// so scratch boards never alias the game they were taken from.
type Board struct {
	cells [Rows][Cols]Cell
}

func NewBoard() (newBoard Board) {
	for _, d := range dots {
		newBoard.cells[d.Row()][d.Col()] = Corner
	}
	return
}

func (b Board) At(p Pos) Cell {
	return b.cells[p.Row()][p.Col()]
}

// Contains reports whether the line slot p has been drawn.
func (b Board) Contains(p Pos) bool {
	return b.At(p) == Line
}

func (b Board) Owner(box Pos) Turn {
	return b.At(box).Owner()
}

// EdgesCountInBox counts the drawn sides of a box center.
func (b Board) EdgesCountInBox(box Pos) (count int) {
	for _, e := range box.Sides() {
		if b.Contains(e) {
			count++
		}
	}
	return
}

// check returns a wrapped ErrInvalidMove when p can not be drawn.
func (b Board) check(p Pos) error {
	switch {
	case !p.InBounds():
		return errors.Wrapf(ErrInvalidMove, "%v is off the board", p)
	case p.Kind() != KindLine:
		return errors.Wrapf(ErrInvalidMove, "%v is a %v, not a line", p, p.Kind())
	case b.Contains(p):
		return errors.Wrapf(ErrInvalidMove, "line %v is already drawn", p)
	}
	return nil
}

func (b Board) IsLegal(p Pos) bool {
	return b.check(p) == nil
}

// LegalMoves returns the undrawn line slots in row-major order.
func (b Board) LegalMoves() (freeEdges []Pos) {
	for _, e := range lines {
		if !b.Contains(e) {
			freeEdges = append(freeEdges, e)
		}
	}
	return
}

func (b Board) FreeEdgesCount() (count int) {
	for _, e := range lines {
		if !b.Contains(e) {
			count++
		}
	}
	return
}

func (b Board) IsTerminal() bool {
	return b.FreeEdgesCount() == 0
}

// Append returns a copy of b with the line p drawn. Boxes are not claimed.
func (b Board) Append(p Pos) Board {
	b.cells[p.Row()][p.Col()] = Line
	return b
}

// ObtainsBoxes returns the unclaimed boxes that drawing p would complete.
func (b Board) ObtainsBoxes(p Pos) (obtainsBoxes []Pos) {
	if b.Contains(p) {
		return
	}

	for _, box := range p.NearBoxes() {
		if b.Owner(box) == Nobody && b.EdgesCountInBox(box) == 3 {
			obtainsBoxes = append(obtainsBoxes, box)
		}
	}
	return
}

// draw marks p and hands every box it completes to t.
func (b *Board) draw(p Pos, t Turn) (obtainsBoxes []Pos) {
	obtainsBoxes = b.ObtainsBoxes(p)
	b.cells[p.Row()][p.Col()] = Line
	for _, box := range obtainsBoxes {
		b.cells[box.Row()][box.Col()] = OwnedBy(t)
	}
	return
}

// CountScore recounts claimed boxes from the grid.
func (b Board) CountScore() (player1Score, player2Score int) {
	for _, box := range boxes {
		switch b.Owner(box) {
		case Player1:
			player1Score++
		case Player2:
			player2Score++
		}
	}
	return
}

// Diff returns the first line, in row-major order, drawn in next but not in b.
func (b Board) Diff(next Board) (Pos, bool) {
	for _, e := range lines {
		if !b.Contains(e) && next.Contains(e) {
			return e, true
		}
	}
	return InvalidPos, false
}

func (b Board) String() string {
	var builder strings.Builder
	for i := range Rows {
		for j := range Cols {
			p := NewPos(i, j)
			builder.WriteString(b.At(p).Glyph(p.Kind()))
		}
		builder.WriteString("\n")
	}
	return builder.String()
}
