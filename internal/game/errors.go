package game

import "fmt"

// ViolationKind classifies an illegal move.
type ViolationKind int

const (
	// IllegalColumn means the move names a column outside [0, columns).
	IllegalColumn ViolationKind = iota
	// IllegalRow means the named column is already full.
	IllegalRow
	// IllegalContinue means the game already has a winner.
	IllegalContinue
)

// String returns the human-readable name of the violation.
func (k ViolationKind) String() string {
	switch k {
	case IllegalColumn:
		return "illegal column"
	case IllegalRow:
		return "illegal row"
	case IllegalContinue:
		return "illegal continue"
	default:
		return "unknown violation"
	}
}

// MoveError reports the first rule violated by a move. Checks run in a
// fixed order (column bounds, column capacity, game already won) and
// only the first failure is reported, even when several would apply.
type MoveError struct {
	Kind   ViolationKind
	Column int // zero-based column named by the move
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s: move in column %d", e.Kind, e.Column+1)
}

// DimensionError reports dimensions that cannot form a playable game:
// a non-positive value, or a win length longer than the longer board
// axis. No game object is ever produced from such dimensions.
type DimensionError struct {
	Rows      int
	Columns   int
	WinLength int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("illegal game: rows=%d columns=%d win_length=%d",
		e.Rows, e.Columns, e.WinLength)
}
