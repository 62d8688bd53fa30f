package message

import "github.com/google/uuid"

type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}

// Short is the first block of the uid, enough to tell games apart in logs.
func (g GameUid) Short() string {
	if len(g) < 8 {
		return string(g)
	}
	return string(g[:8])
}
