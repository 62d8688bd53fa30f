package chess

// Horizontal reports whether the line slot joins two dots of the same row.
func (p Pos) Horizontal() bool {
	return p.Row()%2 == 0
}

// NearBoxes returns the box centers touching a line slot: above then below
// for a horizontal line, left then right for a vertical one.
func (p Pos) NearBoxes() (nearBoxes []Pos) {
	r, c := p.Row(), p.Col()
	if p.Horizontal() {
		if r > 0 {
			nearBoxes = append(nearBoxes, NewPos(r-1, c))
		}
		if r < Rows-1 {
			nearBoxes = append(nearBoxes, NewPos(r+1, c))
		}
		return
	}

	if c > 0 {
		nearBoxes = append(nearBoxes, NewPos(r, c-1))
	}
	if c < Cols-1 {
		nearBoxes = append(nearBoxes, NewPos(r, c+1))
	}
	return
}

var lines = scan(KindLine)

// Lines returns every line slot in row-major order. The slice is shared.
func Lines() []Pos {
	return lines
}
