package controller

import (
	"strconv"
	"strings"

	"github.com/HuXin0817/dots-and-boxes-minimax/pkg/models/chess"
	"github.com/pkg/errors"
)

var ErrMalformedInput = errors.New("malformed input")

func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', ',', '(', ')':
		return true
	}
	return false
}

// ParseMove reads "row col", "row,col" or "(row, col)". Coordinates off the
// grid report chess.ErrInvalidMove; anything unreadable ErrMalformedInput.
func ParseMove(line string) (chess.Pos, error) {
	fields := strings.FieldsFunc(line, isSeparator)
	if len(fields) != 2 {
		return chess.InvalidPos, errors.Wrapf(ErrMalformedInput, "want row and column, got %q", line)
	}

	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return chess.InvalidPos, errors.Wrapf(ErrMalformedInput, "row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return chess.InvalidPos, errors.Wrapf(ErrMalformedInput, "column %q", fields[1])
	}

	if !chess.Valid(row, col) {
		return chess.InvalidPos, errors.Wrapf(chess.ErrInvalidMove, "(%d, %d) is off the board", row, col)
	}
	return chess.NewPos(row, col), nil
}
