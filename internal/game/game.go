package game

// Game tracks a single Connect-Z match: the board, whose turn it is
// and the per-column fill level. It is mutated only through Drop and
// is owned by a single caller for the duration of the game.
type Game struct {
	rows      int
	columns   int
	winLength int

	board     Board
	heights   []int // next free row per column
	turn      Cell  // CellPlayer1 or CellPlayer2
	status    Outcome
	evaluator *Evaluator
}

// New creates an empty game. All dimensions must be positive and the
// win length may not exceed the longer board axis; otherwise a
// DimensionError is returned and no game is produced.
func New(rows, columns, winLength int) (*Game, error) {
	if rows <= 0 || columns <= 0 || winLength <= 0 || winLength > max(rows, columns) {
		return nil, &DimensionError{Rows: rows, Columns: columns, WinLength: winLength}
	}
	return &Game{
		rows:      rows,
		columns:   columns,
		winLength: winLength,
		board:     NewBoard(rows, columns),
		heights:   make([]int, columns),
		turn:      CellPlayer1,
		status:    Incomplete,
		evaluator: NewEvaluator(rows, columns, winLength),
	}, nil
}

// Drop places the current player's counter in the given zero-based
// column. Preconditions are checked in a fixed order and only the
// first failure is reported: column bounds, column capacity, then
// whether the game is already won. A drawn or incomplete game still
// accepts moves.
//
// On success exactly one cell changes: the counter lands on the
// column's stack, the whole board is re-evaluated, the turn passes to
// the other player and the new status is returned. After a failure the
// game must not be fed further moves.
func (g *Game) Drop(column int) (Outcome, error) {
	if column < 0 || column >= g.columns {
		return g.status, &MoveError{Kind: IllegalColumn, Column: column}
	}
	if g.heights[column] >= g.rows {
		return g.status, &MoveError{Kind: IllegalRow, Column: column}
	}
	if g.status.Won() {
		return g.status, &MoveError{Kind: IllegalContinue, Column: column}
	}

	g.board[column][g.heights[column]] = g.turn
	g.heights[column]++
	g.status = g.evaluator.Evaluate(g.board)
	g.turn = -g.turn
	return g.status, nil
}

// Status returns the outcome after the last successful move.
func (g *Game) Status() Outcome {
	return g.status
}

// Board returns the live board. Callers must treat it as read-only.
func (g *Game) Board() Board {
	return g.board
}

// CurrentPlayer returns the counter of the player to move next.
func (g *Game) CurrentPlayer() Cell {
	return g.turn
}

// Rows returns the board height.
func (g *Game) Rows() int { return g.rows }

// Columns returns the board width.
func (g *Game) Columns() int { return g.columns }

// WinLength returns the run length needed to win.
func (g *Game) WinLength() int { return g.winLength }
