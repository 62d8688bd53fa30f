package assess

import (
	"math/rand"
	"testing"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func horizontals() (edges []chess.Pos) {
	for _, e := range chess.Lines() {
		if e.Horizontal() {
			edges = append(edges, e)
		}
	}
	return
}

func gameWith(t *testing.T, edges ...chess.Pos) *chess.Game {
	t.Helper()
	g := chess.NewGame()
	for _, e := range edges {
		n, err := g.Add(e)
		require.NoError(t, err)
		require.Zero(t, n, "setup line %v completed a box", e)
	}
	return g
}

func TestCompletableMoveFindsMissingSide(t *testing.T) {
	g := gameWith(t, chess.NewPos(2, 1), chess.NewPos(1, 0), chess.NewPos(1, 2))
	e, ok := CompletableMove(g.Board)
	require.True(t, ok)
	assert.Equal(t, chess.NewPos(0, 1), e)

	g = gameWith(t, chess.NewPos(0, 1), chess.NewPos(2, 1), chess.NewPos(1, 0))
	e, ok = CompletableMove(g.Board)
	require.True(t, ok)
	assert.Equal(t, chess.NewPos(1, 2), e)
}

func TestCompletableMoveScansRowMajor(t *testing.T) {
	g := gameWith(t,
		chess.NewPos(2, 5), chess.NewPos(4, 5), chess.NewPos(3, 4),
		chess.NewPos(0, 3), chess.NewPos(2, 3), chess.NewPos(1, 4),
	)
	e, ok := CompletableMove(g.Board)
	require.True(t, ok)
	assert.Equal(t, chess.NewPos(1, 2), e)
}

func TestCompletableMoveNone(t *testing.T) {
	_, ok := CompletableMove(chess.NewBoard())
	assert.False(t, ok)
}

func TestGivesAwayBox(t *testing.T) {
	g := gameWith(t, chess.NewPos(0, 1), chess.NewPos(2, 1))
	assert.True(t, GivesAwayBox(g.Board, chess.NewPos(1, 0)))
	assert.True(t, GivesAwayBox(g.Board, chess.NewPos(1, 2)))
	assert.False(t, GivesAwayBox(g.Board, chess.NewPos(0, 3)))
	assert.False(t, g.Contains(chess.NewPos(1, 0)), "scratch board leaked")
}

func TestSafeMove(t *testing.T) {
	e, ok := SafeMove(chess.NewBoard())
	require.True(t, ok)
	assert.Equal(t, chess.NewPos(0, 1), e)

	g := gameWith(t, horizontals()...)
	_, ok = SafeMove(g.Board)
	assert.False(t, ok)
}

func TestNextMovesFollowLegalOrder(t *testing.T) {
	g := gameWith(t, chess.NewPos(0, 1))
	moves := NextMoves(*g)
	require.Len(t, moves, 16)
	for i, e := range g.LegalMoves() {
		assert.Equal(t, e, moves[i].Line)
	}
}

func TestMoveNextLeavesGameUntouched(t *testing.T) {
	g := gameWith(t, chess.NewPos(0, 1), chess.NewPos(2, 1), chess.NewPos(1, 0))
	m := Move{Game: *g, Line: chess.NewPos(1, 2)}
	next := m.Next()
	assert.Equal(t, 1, next.Score(g.NowPlayer))
	assert.Equal(t, g.NowPlayer, next.NowPlayer)
	assert.False(t, g.Contains(chess.NewPos(1, 2)))
	assert.Equal(t, 0, g.Score(g.NowPlayer))
}

func TestRandomMove(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	g := chess.NewGame()
	for !g.IsTerminal() {
		e, ok := RandomMove(r, g.Board)
		require.True(t, ok)
		require.True(t, g.IsLegal(e))
		_, err := g.Add(e)
		require.NoError(t, err)
	}
	_, ok := RandomMove(r, g.Board)
	assert.False(t, ok)
}
