// Package game implements the Connect-Z rules engine: Connect Four
// generalised to an arbitrary rows x columns board and an arbitrary
// connect-length. It contains no external dependencies to keep the
// rules pure and testable.
package game

// Cell holds the owner of a single board position. Player counters are
// signed so that a run of winLength same-player cells sums to exactly
// +winLength or -winLength.
type Cell int8

const (
	CellEmpty   Cell = 0
	CellPlayer1 Cell = 1
	CellPlayer2 Cell = -1
)

// Board is a grid of columns x rows cells. The first index selects the
// column, the second the row, with row 0 at the bottom of the column.
// In a legal game the occupied cells of a column always form a
// contiguous run starting at row 0.
type Board [][]Cell

// NewBoard returns an all-empty board with the given dimensions.
func NewBoard(rows, columns int) Board {
	b := make(Board, columns)
	for c := range b {
		b[c] = make([]Cell, rows)
	}
	return b
}

// Columns returns the number of columns.
func (b Board) Columns() int {
	return len(b)
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// FillHeight returns the number of counters in the fullest column.
// Every cell at or above this row index is empty, so win scans can
// ignore that part of the board.
func (b Board) FillHeight() int {
	highest := 0
	for _, col := range b {
		n := 0
		for _, cell := range col {
			if cell != CellEmpty {
				n++
			}
		}
		if n > highest {
			highest = n
		}
	}
	return highest
}

// Full reports whether every cell is occupied.
func (b Board) Full() bool {
	for _, col := range b {
		for _, cell := range col {
			if cell == CellEmpty {
				return false
			}
		}
	}
	return true
}
