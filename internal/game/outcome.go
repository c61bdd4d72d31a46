package game

// Outcome is the state of a board: won, drawn or still in progress.
type Outcome int

const (
	Incomplete Outcome = iota
	Draw
	Player1Win
	Player2Win
)

// String returns the human-readable name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case Player1Win:
		return "player 1 win"
	case Player2Win:
		return "player 2 win"
	default:
		return "incomplete"
	}
}

// Won reports whether either player has won.
func (o Outcome) Won() bool {
	return o == Player1Win || o == Player2Win
}

// Evaluator scans a board for a winning run of a fixed length. It
// carries only the board dimensions, never board contents, so a single
// evaluator is safely reused after every move.
type Evaluator struct {
	rows      int
	columns   int
	winLength int
}

// NewEvaluator creates an evaluator for boards of the given shape.
func NewEvaluator(rows, columns, winLength int) *Evaluator {
	return &Evaluator{rows: rows, columns: columns, winLength: winLength}
}

// offset is one cell of a candidate run, relative to the board origin.
type offset struct {
	col int
	row int
}

// masks returns the four candidate runs starting at (col, row): up the
// column, across the columns, diagonal and anti-diagonal. Masks depend
// only on the start cell and the win length, not on board contents.
func (e *Evaluator) masks(col, row int) [4][]offset {
	l := e.winLength
	var m [4][]offset
	for d := range m {
		m[d] = make([]offset, l)
	}
	for n := 0; n < l; n++ {
		m[0][n] = offset{col, row + n}             // up the column
		m[1][n] = offset{col + n, row}             // across the columns
		m[2][n] = offset{col + n, row + n}         // diagonal
		m[3][n] = offset{col - n + l - 1, row + n} // anti-diagonal
	}
	return m
}

// Evaluate returns the outcome for the board. The scan is
// deterministic: columns outer, rows inner, with rows restricted to
// the filled part of the board since everything above it is empty.
// Masks that leave the board are skipped, not errors.
func (e *Evaluator) Evaluate(b Board) Outcome {
	height := b.FillHeight()
	for col := 0; col < e.columns; col++ {
		for row := 0; row < height; row++ {
			if out := e.runAt(b, col, row); out != Incomplete {
				return out
			}
		}
	}
	if b.Full() {
		return Draw
	}
	return Incomplete
}

// runAt checks the four runs starting at (col, row). A run summing to
// +winLength belongs entirely to player 1, -winLength to player 2.
func (e *Evaluator) runAt(b Board, col, row int) Outcome {
	for _, mask := range e.masks(col, row) {
		total := 0
		inBounds := true
		for _, o := range mask {
			if o.col < 0 || o.col >= e.columns || o.row < 0 || o.row >= e.rows {
				inBounds = false
				break
			}
			total += int(b[o.col][o.row])
		}
		if !inBounds {
			continue
		}
		switch total {
		case e.winLength:
			return Player1Win
		case -e.winLength:
			return Player2Win
		}
	}
	return Incomplete
}
