package chess

// Cell is the content of one grid position.
type Cell int8

const (
	// Blank is an undrawn line slot or an unclaimed box center.
	Blank Cell = iota
	Line
	Corner
	Player1Box
	Player2Box
)

func OwnedBy(t Turn) Cell {
	switch t {
	case Player1:
		return Player1Box
	case Player2:
		return Player2Box
	}
	return Blank
}

func (c Cell) Owner() Turn {
	switch c {
	case Player1Box:
		return Player1
	case Player2Box:
		return Player2
	}
	return Nobody
}

// Glyph is the single character used to print the cell.
func (c Cell) Glyph(kind Kind) string {
	switch c {
	case Line:
		return "-"
	case Corner:
		return "*"
	case Player1Box:
		return "1"
	case Player2Box:
		return "2"
	}
	if kind == KindBox {
		return "0"
	}
	return " "
}
