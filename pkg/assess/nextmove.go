package assess

import (
	"math/rand"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"
)

// CompletableMove scans box centers in row-major order and returns the
// missing side of the first unclaimed box with exactly three sides drawn.
func CompletableMove(b chess.Board) (chess.Pos, bool) {
	for _, box := range chess.Boxes() {
		if b.Owner(box) != chess.Nobody || b.EdgesCountInBox(box) != 3 {
			continue
		}
		for _, e := range box.Sides() {
			if !b.Contains(e) {
				return e, true
			}
		}
	}
	return chess.InvalidPos, false
}

// GivesAwayBox reports whether drawing e leaves a neighbouring box with
// exactly three sides for the opponent to take.
func GivesAwayBox(b chess.Board, e chess.Pos) bool {
	scratch := b.Append(e)
	for _, box := range e.NearBoxes() {
		if scratch.Owner(box) == chess.Nobody && scratch.EdgesCountInBox(box) == 3 {
			return true
		}
	}
	return false
}

// SafeMove returns the first legal move that does not give away a box.
func SafeMove(b chess.Board) (chess.Pos, bool) {
	for _, e := range b.LegalMoves() {
		if !GivesAwayBox(b, e) {
			return e, true
		}
	}
	return chess.InvalidPos, false
}

// NextMoves expands g into one Move per legal line, in row-major order.
func NextMoves(g chess.Game) (moves []Move) {
	for _, e := range g.LegalMoves() {
		moves = append(moves, Move{
			Game: g,
			Line: e,
		})
	}
	return moves
}

func RandomMove(r *rand.Rand, b chess.Board) (chess.Pos, bool) {
	edges := b.LegalMoves()
	if len(edges) == 0 {
		return chess.InvalidPos, false
	}
	return edges[r.Intn(len(edges))], true
}
