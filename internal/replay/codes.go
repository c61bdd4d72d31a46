package replay

import (
	"errors"

	"github.com/vovakirdan/connectz/internal/game"
)

// Code is the single integer printed for a checked game.
type Code int

const (
	CodeDraw            Code = 0
	CodePlayer1Win      Code = 1
	CodePlayer2Win      Code = 2
	CodeIncomplete      Code = 3
	CodeIllegalContinue Code = 4
	CodeIllegalRow      Code = 5
	CodeIllegalColumn   Code = 6
	CodeIllegalGame     Code = 7
	CodeInvalidFile     Code = 8
	CodeFileError       Code = 9
)

// String returns the human-readable name of the code, for logs and
// the results listing.
func (c Code) String() string {
	switch c {
	case CodeDraw:
		return "draw"
	case CodePlayer1Win:
		return "player 1 win"
	case CodePlayer2Win:
		return "player 2 win"
	case CodeIncomplete:
		return "incomplete"
	case CodeIllegalContinue:
		return "illegal continue"
	case CodeIllegalRow:
		return "illegal row"
	case CodeIllegalColumn:
		return "illegal column"
	case CodeIllegalGame:
		return "illegal game"
	case CodeInvalidFile:
		return "invalid file"
	case CodeFileError:
		return "file error"
	default:
		return "unknown"
	}
}

// outcomeCode maps a terminal board state to its code.
func outcomeCode(o game.Outcome) Code {
	switch o {
	case game.Draw:
		return CodeDraw
	case game.Player1Win:
		return CodePlayer1Win
	case game.Player2Win:
		return CodePlayer2Win
	default:
		return CodeIncomplete
	}
}

// ErrorCode maps a failure from any stage of the run to its code.
// Unrecognised errors are read failures by construction, since every
// other stage returns a typed error.
func ErrorCode(err error) Code {
	var moveErr *game.MoveError
	if errors.As(err, &moveErr) {
		switch moveErr.Kind {
		case game.IllegalContinue:
			return CodeIllegalContinue
		case game.IllegalRow:
			return CodeIllegalRow
		default:
			return CodeIllegalColumn
		}
	}
	var dimErr *game.DimensionError
	if errors.As(err, &dimErr) {
		return CodeIllegalGame
	}
	if errors.Is(err, ErrInvalidFile) {
		return CodeInvalidFile
	}
	return CodeFileError
}
