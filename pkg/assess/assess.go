package assess

import "github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"

const (
	DefaultMaxDepth = 2
	// Inf bounds every reachable evaluation: the score difference never
	// exceeds the number of boxes.
	Inf = 999
)

// Evaluate is the material difference from the computer's side.
func Evaluate(g chess.Game) int {
	return g.Score(chess.Computer) - g.Score(chess.Human)
}

// Sentinel values a node that was expanded but produced no children: the
// worst outcome for whichever side was due to move.
func Sentinel(moveFor chess.Turn) int {
	if moveFor == chess.Computer {
		return -Inf
	}
	return Inf
}

// DFS returns the minimax value of g, which sits ply moves below the root.
// The side to move at each node is g.NowPlayer, so a completed box keeps the
// same side moving while the ply still advances by one.
func DFS(ply, maxDepth int, g chess.Game) (score int) {
	if ply >= maxDepth || g.IsTerminal() {
		return Evaluate(g)
	}

	nextMoves := NextMoves(g)
	if len(nextMoves) == 0 {
		return Sentinel(g.NowPlayer)
	}

	maximize := g.NowPlayer == chess.Computer
	for i, m := range nextMoves {
		eval := DFS(ply+1, maxDepth, m.Next())
		if i == 0 || (maximize && eval > score) || (!maximize && eval < score) {
			score = eval
		}
	}
	return
}

// GetBestMove scores every child of g and returns the line leading to the
// first child with the greatest value. The line is recovered by diffing the
// child board against g.
func GetBestMove(g chess.Game, maxDepth int) (bestEdge chess.Pos, bestScore int, ok bool) {
	var bestBoard chess.Board
	for _, m := range NextMoves(g) {
		child := m.Next()
		if eval := DFS(1, maxDepth, child); !ok || eval > bestScore {
			bestScore = eval
			bestBoard = child.Board
			ok = true
		}
	}

	if !ok {
		return chess.InvalidPos, 0, false
	}
	bestEdge, ok = g.Board.Diff(bestBoard)
	return
}
