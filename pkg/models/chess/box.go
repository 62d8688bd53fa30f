package chess

// Sides returns the four line slots around a box center in top, bottom,
// left, right order.
func (p Pos) Sides() [4]Pos {
	r, c := p.Row(), p.Col()
	return [...]Pos{
		NewPos(r-1, c),
		NewPos(r+1, c),
		NewPos(r, c-1),
		NewPos(r, c+1),
	}
}

var boxes = scan(KindBox)

// Boxes returns every box center in row-major order. The slice is shared.
func Boxes() []Pos {
	return boxes
}

// BoxCount is the number of boxes that a full game distributes.
var BoxCount = len(boxes)
