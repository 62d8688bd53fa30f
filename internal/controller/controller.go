package controller

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/assess"
	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"
	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/message"
	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/pusher"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

// Controller runs one game between a human reading from in and the engine,
// writing the board and narration to out.
type Controller struct {
	logx.Logger
	in      *bufio.Scanner
	out     io.Writer
	engine  *assess.Engine
	game    *chess.Game
	uid     message.GameUid
	au      aurora.Aurora
	records *pusher.Pusher[string]
}

type Option func(*Controller)

func WithColor(colored bool) Option {
	return func(c *Controller) {
		c.au = aurora.NewAurora(colored)
	}
}

// WithComputerFirst hands the opening move to the computer.
func WithComputerFirst() Option {
	return func(c *Controller) {
		c.game.NowPlayer = chess.Computer
	}
}

// WithRecords receives a sonic-encoded record for every move and the result.
func WithRecords(records *pusher.Pusher[string]) Option {
	return func(c *Controller) {
		c.records = records
	}
}

func New(ctx context.Context, in io.Reader, out io.Writer, engine *assess.Engine, options ...Option) *Controller {
	uid := message.NewGameUid()
	c := &Controller{
		Logger: logx.WithContext(ctx).WithFields(logx.Field("game", uid.Short())),
		in:     bufio.NewScanner(in),
		out:    out,
		engine: engine,
		game:   chess.NewGame(),
		uid:    uid,
		au:     aurora.NewAurora(false),
	}

	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Controller) Game() *chess.Game {
	return c.game
}

func (c *Controller) Uid() message.GameUid {
	return c.uid
}

func (c *Controller) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}

func (c *Controller) printBoard() {
	c.printf("%s", Render(c.game.Board, c.au))
}

// Run plays until the board is full. It only fails when input runs out or
// the engine breaks its contract.
func (c *Controller) Run() error {
	c.Infof("game start, %v moves first", c.game.NowPlayer)
	c.printf("Welcome to Dots and Boxes!\n")
	c.printf("Player: 1, Computer: 2\n")
	c.printBoard()

	for !c.game.IsTerminal() {
		var err error
		if c.game.NowPlayer == chess.Human {
			err = c.humanMove()
		} else {
			err = c.computerMove()
		}
		if err != nil {
			return err
		}

		c.printBoard()
		p1, p2 := c.game.CountScore()
		c.printf("Current Score - Player: %d, Computer: %d\n", p1, p2)
	}

	c.finish()
	return nil
}

func (c *Controller) readLine() (string, error) {
	if c.in.Scan() {
		return c.in.Text(), nil
	}
	if err := c.in.Err(); err != nil {
		return "", errors.WithStack(err)
	}
	return "", errors.WithStack(io.EOF)
}

func (c *Controller) humanMove() error {
	c.printf("\nYour turn!\n")
	for {
		c.printf("Player Score: %d\n", c.game.Player1Score)
		c.printf("Computer Score: %d\n", c.game.Player2Score)
		c.printf("Available Moves: %v\n", c.game.LegalMoves())
		c.printf("Please enter a move as row and column (e.g. 0 1): ")

		line, err := c.readLine()
		if err != nil {
			return err
		}

		e, err := ParseMove(line)
		n := 0
		if err == nil {
			n, err = c.game.Add(e)
		}
		switch {
		case errors.Is(err, ErrMalformedInput):
			c.Debugf("rejected input: %v", err)
			c.printf("Please enter valid numbers.\n")
			continue
		case errors.Is(err, chess.ErrInvalidMove):
			c.Debugf("rejected move: %v", err)
			c.printf("Invalid move. Please try again.\n")
			continue
		case err != nil:
			return err
		}

		c.record(chess.Human, e, n, "")
		if n > 0 {
			c.printf("You completed %d box(es)! Take another turn.\n", n)
		}
		return nil
	}
}

func (c *Controller) computerMove() error {
	c.printf("\nComputer's turn!\n")
	d, err := c.engine.NextMove(*c.game)
	if err != nil {
		return err
	}

	n, err := c.game.Add(d.Line)
	if err != nil {
		return errors.Wrapf(err, "engine chose %v", d.Line)
	}

	c.record(chess.Computer, d.Line, n, d.Stage.String())
	c.printf("Computer chose move: %v\n", d.Line)
	if n > 0 {
		c.printf("Computer completed %d box(es) and gets another turn!\n", n)
	}
	return nil
}

func (c *Controller) record(player chess.Turn, e chess.Pos, completed int, stage string) {
	if !c.game.Consistent() {
		c.Errorf("score drift after %v: tracked %d-%d", e, c.game.Player1Score, c.game.Player2Score)
	}
	if c.records == nil {
		return
	}

	r := message.NewMoveRecord(c.uid, c.game, player, e, completed)
	r.Stage = stage
	c.records.AddMessages(r.String())
}

func (c *Controller) finish() {
	c.printf("\nGame Over!\n")
	p1, p2 := c.game.CountScore()
	c.printf("Final Score - Player: %d, Computer: %d\n", p1, p2)

	switch c.game.Winner() {
	case chess.Human:
		c.printf("Congratulations! You won!\n")
	case chess.Computer:
		c.printf("Computer wins!\n")
	default:
		c.printf("It's a draw!\n")
	}

	c.Infof("game over %d-%d", p1, p2)
	if c.records != nil {
		c.records.AddMessages(message.NewGameEndRecord(c.uid, c.game).String())
	}
}
