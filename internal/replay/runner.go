package replay

import (
	"github.com/vovakirdan/connectz/internal/game"
)

// Report summarises one checked game file.
type Report struct {
	Dims  Dimensions
	Moves int   // moves successfully applied
	Code  Code  // the single integer the CLI prints
	Err   error // nil when the recording is legal (codes 0-3)
}

// Step describes one applied move of a replayed game.
type Step struct {
	Move   int          // 1-based position in the file
	Column int          // 1-based column as written
	Player game.Cell    // who dropped the counter
	Status game.Outcome // status after the move
}

// Run checks the game file at path end to end: read, parse, construct
// the game and play every move in file order, halting at the first
// violation. The whole run is terminal on any failure; nothing is
// retried.
func Run(path string) Report {
	return Walk(path, nil)
}

// Walk is Run with a callback invoked after every successful move. The
// callback receives the live game so it can render the board; it must
// not mutate it.
func Walk(path string, fn func(g *game.Game, s Step)) Report {
	dims, moves, err := Load(path)
	if err != nil {
		return Report{Code: ErrorCode(err), Err: err}
	}

	g, err := game.New(dims.Rows, dims.Columns, dims.WinLength)
	if err != nil {
		return Report{Dims: dims, Code: ErrorCode(err), Err: err}
	}

	applied := 0
	for i, col := range moves {
		player := g.CurrentPlayer()
		status, err := g.Drop(col - 1) // recordings are 1-based
		if err != nil {
			return Report{Dims: dims, Moves: applied, Code: ErrorCode(err), Err: err}
		}
		applied++
		if fn != nil {
			fn(g, Step{Move: i + 1, Column: col, Player: player, Status: status})
		}
	}

	return Report{Dims: dims, Moves: applied, Code: outcomeCode(g.Status())}
}
