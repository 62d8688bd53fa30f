package assess

import (
	"context"
	"math/rand"
	"testing"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngineDefaults(t *testing.T) {
	e := NewEngine(context.Background())
	assert.Equal(t, DefaultMaxDepth, e.MaxDepth)
	assert.Equal(t, 3, NewEngine(context.Background(), WithMaxDepth(3)).MaxDepth)
}

func TestChooseComputerMovePrefersCompletion(t *testing.T) {
	g := gameWith(t, chess.NewPos(0, 1), chess.NewPos(2, 1), chess.NewPos(1, 0))
	e, err := ChooseComputerMove(*g)
	require.NoError(t, err)
	assert.Equal(t, chess.NewPos(1, 2), e)
}

func TestNextMoveStages(t *testing.T) {
	engine := NewEngine(context.Background())

	d, err := engine.NextMove(*chess.NewGame())
	require.NoError(t, err)
	assert.Equal(t, SeekSafe, d.Stage)
	assert.Equal(t, chess.NewPos(0, 1), d.Line)

	g := gameWith(t, horizontals()...)
	d, err = engine.NextMove(*g)
	require.NoError(t, err)
	assert.Equal(t, SeekSearch, d.Stage)
	assert.Equal(t, chess.NewPos(1, 0), d.Line)
	assert.Equal(t, -1, d.Value)
}

func TestNextMoveOnFinishedGame(t *testing.T) {
	g := chess.NewGame()
	for !g.IsTerminal() {
		_, err := g.Add(g.LegalMoves()[0])
		require.NoError(t, err)
	}

	_, err := NewEngine(context.Background()).NextMove(*g)
	assert.True(t, errors.Is(err, chess.ErrNoLegalMoves))

	_, err = ChooseComputerMove(*g)
	assert.True(t, errors.Is(err, chess.ErrNoLegalMoves))
}

func TestPlayTurnTakesChainThenSearches(t *testing.T) {
	g := gameWith(t, append(horizontals(), chess.NewPos(1, 0))...)
	g.NowPlayer = chess.Computer

	decisions, err := NewEngine(context.Background()).PlayTurn(g)
	require.NoError(t, err)
	require.Len(t, decisions, 4)

	want := []chess.Pos{chess.NewPos(1, 2), chess.NewPos(1, 4), chess.NewPos(1, 6), chess.NewPos(3, 0)}
	for i, d := range decisions {
		assert.Equal(t, want[i], d.Line)
	}
	assert.Equal(t, []Stage{SeekCompletion, SeekCompletion, SeekCompletion, SeekSearch},
		[]Stage{decisions[0].Stage, decisions[1].Stage, decisions[2].Stage, decisions[3].Stage})
	assert.Equal(t, 2, decisions[3].Value)
	assert.Equal(t, 0, decisions[3].Completed)
	assert.Equal(t, 3, g.Player2Score)
	assert.Equal(t, chess.Human, g.NowPlayer)
	assert.True(t, g.Consistent())
}

func TestEngineAgainstRandomFinishesGames(t *testing.T) {
	engine := NewEngine(context.Background())
	r := rand.New(rand.NewSource(42))
	for range 10 {
		g := chess.NewGame()
		for !g.IsTerminal() {
			if g.NowPlayer == chess.Computer {
				_, err := engine.PlayTurn(g)
				require.NoError(t, err)
				continue
			}
			e, _ := RandomMove(r, g.Board)
			_, err := g.Add(e)
			require.NoError(t, err)
		}
		assert.Equal(t, chess.BoxCount, g.Player1Score+g.Player2Score)
		assert.True(t, g.Consistent())
	}
}
