package chess

import "fmt"

// Rows and Cols are the dimensions of the cell grid: 3x4 dots, 2x3 boxes.
const (
	Rows = 5
	Cols = 7
)

const (
	D       = 8
	posMod  = 1 << D
	posMask = posMod - 1
)

// InvalidPos is returned where no cell applies.
const InvalidPos Pos = -1

// Pos is a (row, col) cell of the grid packed into one int.
type Pos int

// NewPos returns InvalidPos for coordinates off the grid, so a stray column
// can never wrap into the next row.
func NewPos(row, col int) Pos {
	if !Valid(row, col) {
		return InvalidPos
	}
	return Pos((row << D) + col)
}

// Valid reports whether (row, col) lies on the grid.
func Valid(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

func (p Pos) Row() int {
	return int(p) >> D
}

func (p Pos) Col() int {
	return int(p) & posMask
}

func (p Pos) InBounds() bool {
	return p >= 0 && Valid(p.Row(), p.Col())
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row(), p.Col())
}

type Kind int8

const (
	KindDot Kind = iota
	KindLine
	KindBox
)

func (k Kind) String() string {
	switch k {
	case KindDot:
		return "dot"
	case KindLine:
		return "line"
	case KindBox:
		return "box"
	}
	return ""
}

// Kind is fixed by the parity of the coordinates: even/even is a dot,
// odd/odd a box center and mixed parity a line slot.
func (p Pos) Kind() Kind {
	r, c := p.Row()%2, p.Col()%2
	switch {
	case r == 1 && c == 1:
		return KindBox
	case r != c:
		return KindLine
	}
	return KindDot
}

var dots = scan(KindDot)

func Dots() []Pos {
	return dots
}

func scan(kind Kind) (cells []Pos) {
	for i := range Rows {
		for j := range Cols {
			if p := NewPos(i, j); p.Kind() == kind {
				cells = append(cells, p)
			}
		}
	}
	return
}
