package assess

import "github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"

// Move is a candidate line in the game it would be played in.
type Move struct {
	chess.Game
	Line chess.Pos
}

// Next plays the move on a copy of the game.
func (m Move) Next() chess.Game {
	g := m.Game
	if _, err := g.Add(m.Line); err != nil {
		panic(err)
	}
	return g
}
