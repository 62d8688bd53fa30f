package controller

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/model"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// Summary counts results from the engine's side.
type Summary struct {
	Games  int
	Wins   int
	Losses int
	Draws  int
}

func (s Summary) Report(au aurora.Aurora) string {
	return fmt.Sprintf("%d games: %s, %s, %s",
		s.Games,
		au.Green(fmt.Sprintf("%d won", s.Wins)),
		au.Red(fmt.Sprintf("%d lost", s.Losses)),
		au.Yellow(fmt.Sprintf("%d drawn", s.Draws)),
	)
}

// Simulate plays games of the engine, as the computer, against an opponent
// drawing uniformly random legal lines. bar may be nil.
func Simulate(ctx context.Context, engine *assess.Engine, games int, r *rand.Rand, bar *model.Bar) (s Summary, err error) {
	defer bar.Close()

	for range games {
		if err = ctx.Err(); err != nil {
			return s, errors.WithStack(err)
		}

		g := chess.NewGame()
		for !g.IsTerminal() {
			if g.NowPlayer == chess.Computer {
				if _, err = engine.PlayTurn(g); err != nil {
					return s, err
				}
				continue
			}

			e, _ := assess.RandomMove(r, g.Board)
			if _, err = g.Add(e); err != nil {
				return s, err
			}
		}

		if p1, p2 := g.CountScore(); p1+p2 != chess.BoxCount || !g.Consistent() {
			return s, errors.Errorf("game %d ended %d-%d with tracked %d-%d",
				s.Games+1, p1, p2, g.Player1Score, g.Player2Score)
		}

		s.Games++
		switch g.Winner() {
		case chess.Computer:
			s.Wins++
		case chess.Human:
			s.Losses++
		default:
			s.Draws++
		}
		bar.Describe(fmt.Sprintf("Simulating... %d/%d/%d", s.Wins, s.Losses, s.Draws))
		bar.Add(1)
	}
	return s, nil
}
