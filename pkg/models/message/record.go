package message

import (
	"time"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"
	"github.com/bytedance/sonic"
)

// MoveRecord describes one applied line.
type MoveRecord struct {
	TimeStamp
	GameUid
	Step         int
	Player       string
	MoveEdge     string
	Completed    int
	Player1Score int
	Player2Score int
	// Stage is empty for human moves.
	Stage string `json:",omitempty"`
}

// NewMoveRecord snapshots g right after player drew e.
func NewMoveRecord(uid GameUid, g *chess.Game, player chess.Turn, e chess.Pos, completed int) MoveRecord {
	return MoveRecord{
		TimeStamp:    NewTimeStamp(time.Now()),
		GameUid:      uid,
		Step:         g.StepCount(),
		Player:       player.String(),
		MoveEdge:     e.String(),
		Completed:    completed,
		Player1Score: g.Player1Score,
		Player2Score: g.Player2Score,
	}
}

func NewMoveRecordFromString(str string) (m MoveRecord, err error) {
	err = sonic.UnmarshalString(str, &m)
	return
}

func (m MoveRecord) String() string {
	str, _ := sonic.MarshalString(m)
	return str
}

type GameEndRecord struct {
	TimeStamp
	GameUid
	Winner       string
	Player1Score int
	Player2Score int
}

func NewGameEndRecord(uid GameUid, g *chess.Game) GameEndRecord {
	winner := "Draw"
	if w := g.Winner(); w != chess.Nobody {
		winner = w.String()
	}
	return GameEndRecord{
		TimeStamp:    NewTimeStamp(time.Now()),
		GameUid:      uid,
		Winner:       winner,
		Player1Score: g.Player1Score,
		Player2Score: g.Player2Score,
	}
}

func (g GameEndRecord) String() string {
	str, _ := sonic.MarshalString(g)
	return str
}
