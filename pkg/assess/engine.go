package assess

import (
	"context"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"
	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/logx"
)

// Stage is a step of the computer's move selection. Stages are tried in
// order and the first one that yields a move wins.
type Stage int8

const (
	SeekCompletion Stage = iota
	SeekSafe
	SeekSearch
	Fallback
)

func (s Stage) String() string {
	switch s {
	case SeekCompletion:
		return "SeekCompletion"
	case SeekSafe:
		return "SeekSafe"
	case SeekSearch:
		return "SeekSearch"
	case Fallback:
		return "Fallback"
	}
	return ""
}

type Decision struct {
	Line  chess.Pos
	Stage Stage
	// Value is the minimax value of the chosen child; set by SeekSearch only.
	Value int
	// Completed is filled in by PlayTurn once the line has been drawn.
	Completed int
}

type Engine struct {
	MaxDepth int
	logx.Logger
}

type Option func(*Engine)

func WithMaxDepth(maxDepth int) Option {
	return func(e *Engine) {
		e.MaxDepth = maxDepth
	}
}

func NewEngine(ctx context.Context, options ...Option) *Engine {
	e := &Engine{
		MaxDepth: DefaultMaxDepth,
		Logger:   logx.WithContext(ctx),
	}

	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) try(stage Stage, g chess.Game) (d Decision, ok bool) {
	d.Stage = stage
	switch stage {
	case SeekCompletion:
		d.Line, ok = CompletableMove(g.Board)
	case SeekSafe:
		d.Line, ok = SafeMove(g.Board)
	case SeekSearch:
		d.Line, d.Value, ok = GetBestMove(g, e.MaxDepth)
	case Fallback:
		if moves := g.LegalMoves(); len(moves) > 0 {
			d.Line, ok = moves[0], true
		}
	}
	return
}

// NextMove picks a line for g.NowPlayer without modifying g. Asking for a
// move on a finished game is a caller bug and reports ErrNoLegalMoves.
func (e *Engine) NextMove(g chess.Game) (Decision, error) {
	if g.IsTerminal() {
		return Decision{}, errors.WithStack(chess.ErrNoLegalMoves)
	}

	for stage := SeekCompletion; stage <= Fallback; stage++ {
		if d, ok := e.try(stage, g); ok {
			e.Debugf("%v chose %v at %v (value %d)", g.NowPlayer, d.Line, d.Stage, d.Value)
			return d, nil
		}
	}
	return Decision{}, errors.WithStack(chess.ErrNoLegalMoves)
}

// PlayTurn keeps moving for the current player until a move completes no
// box or the game ends, and returns every decision it applied.
func (e *Engine) PlayTurn(g *chess.Game) (decisions []Decision, err error) {
	mover := g.NowPlayer
	for g.NowPlayer == mover && !g.IsTerminal() {
		d, err := e.NextMove(*g)
		if err != nil {
			return decisions, err
		}

		if d.Completed, err = g.Add(d.Line); err != nil {
			return decisions, errors.Wrapf(err, "apply %v", d.Line)
		}
		decisions = append(decisions, d)
	}
	return decisions, nil
}

// ChooseComputerMove picks a line for g.NowPlayer with the default depth.
func ChooseComputerMove(g chess.Game) (chess.Pos, error) {
	d, err := NewEngine(context.Background()).NextMove(g)
	if err != nil {
		return chess.InvalidPos, err
	}
	return d.Line, nil
}
