package chess

type Turn int8

const (
	Nobody  Turn = 0
	Player1 Turn = 1
	Player2 Turn = 2
)

// The human always plays as Player1 and the computer as Player2.
const (
	Human    = Player1
	Computer = Player2
)

func (t Turn) Other() Turn {
	return 3 - t
}

func (t Turn) String() string {
	switch t {
	case Player1:
		return "Player1"
	case Player2:
		return "Player2"
	}
	return "Nobody"
}

// Game is a Board plus whose move it is and the running scores. Like Board
// it is a value; copy it to explore a line without touching the game in play.
type Game struct {
	Board
	Player1Score int
	Player2Score int
	NowPlayer    Turn
}

func NewGame() *Game {
	return &Game{
		Board:     NewBoard(),
		NowPlayer: Player1,
	}
}

// Add draws p for NowPlayer and returns the number of boxes it completed.
// The turn passes only when nothing was completed. On error the game is
// left untouched.
func (g *Game) Add(p Pos) (int, error) {
	if err := g.Board.check(p); err != nil {
		return 0, err
	}

	score := len(g.Board.draw(p, g.NowPlayer))
	switch g.NowPlayer {
	case Player1:
		g.Player1Score += score
	case Player2:
		g.Player2Score += score
	}

	if score == 0 {
		g.NowPlayer = g.NowPlayer.Other()
	}
	return score, nil
}

func (g *Game) Score(t Turn) int {
	switch t {
	case Player1:
		return g.Player1Score
	case Player2:
		return g.Player2Score
	}
	return 0
}

func (g *Game) StepCount() int {
	return len(lines) - g.FreeEdgesCount()
}

// Consistent reports whether the tracked scores match a recount of the grid.
func (g *Game) Consistent() bool {
	p1, p2 := g.CountScore()
	return p1 == g.Player1Score && p2 == g.Player2Score
}

// Winner returns Nobody for a draw.
func (g *Game) Winner() Turn {
	switch {
	case g.Player1Score > g.Player2Score:
		return Player1
	case g.Player1Score < g.Player2Score:
		return Player2
	}
	return Nobody
}
