package game

import (
	"errors"
	"testing"
)

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name      string
		rows      int
		columns   int
		winLength int
		wantErr   bool
	}{
		{"classic connect four", 7, 6, 4, false},
		{"win length zero", 7, 6, 0, true},
		{"win length beyond both axes", 7, 6, 10, true},
		{"win length equals longer axis", 7, 6, 7, false},
		{"win length fits only the wide axis", 2, 5, 5, false},
		{"win length fits only the tall axis", 5, 2, 5, false},
		{"zero rows", 0, 6, 4, true},
		{"zero columns", 7, 0, 4, true},
		{"negative rows", -1, 6, 4, true},
		{"one by one", 1, 1, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := New(tt.rows, tt.columns, tt.winLength)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("New(%d, %d, %d) succeeded, want DimensionError",
						tt.rows, tt.columns, tt.winLength)
				}
				var dimErr *DimensionError
				if !errors.As(err, &dimErr) {
					t.Errorf("New() error = %v, want *DimensionError", err)
				}
				if g != nil {
					t.Error("New() returned a game alongside an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%d, %d, %d) failed: %v",
					tt.rows, tt.columns, tt.winLength, err)
			}
			if g.Status() != Incomplete {
				t.Errorf("new game status = %v, want incomplete", g.Status())
			}
			if g.CurrentPlayer() != CellPlayer1 {
				t.Errorf("new game turn = %v, want player 1", g.CurrentPlayer())
			}
		})
	}
}

func TestDropIllegalColumn(t *testing.T) {
	g, err := New(7, 6, 4)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	for _, col := range []int{-1, 6, 7, 100} {
		_, dropErr := g.Drop(col)
		var moveErr *MoveError
		if !errors.As(dropErr, &moveErr) || moveErr.Kind != IllegalColumn {
			t.Errorf("Drop(%d) error = %v, want illegal column", col, dropErr)
		}
	}

	// Failed drops must not have touched the board.
	if g.Board().FillHeight() != 0 {
		t.Error("board changed after rejected moves")
	}
	if g.CurrentPlayer() != CellPlayer1 {
		t.Error("turn changed after rejected moves")
	}
}

func TestDropIllegalRow(t *testing.T) {
	g, err := New(7, 6, 4)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Alternating counters stack without ever forming a run.
	for i := 0; i < 7; i++ {
		if _, err := g.Drop(0); err != nil {
			t.Fatalf("Drop(0) move %d failed: %v", i+1, err)
		}
	}

	_, dropErr := g.Drop(0)
	var moveErr *MoveError
	if !errors.As(dropErr, &moveErr) || moveErr.Kind != IllegalRow {
		t.Errorf("Drop into full column error = %v, want illegal row", dropErr)
	}
}

func TestDropIllegalContinue(t *testing.T) {
	g, err := New(7, 6, 4)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	// Player 1 stacks four counters in column 0 while player 2
	// answers in column 1.
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		if _, err := g.Drop(col); err != nil {
			t.Fatalf("Drop(%d) failed: %v", col, err)
		}
	}
	if g.Status() != Player1Win {
		t.Fatalf("status = %v, want player 1 win", g.Status())
	}

	// Even a legal empty column is rejected once the game is won.
	_, dropErr := g.Drop(3)
	var moveErr *MoveError
	if !errors.As(dropErr, &moveErr) || moveErr.Kind != IllegalContinue {
		t.Errorf("Drop after win error = %v, want illegal continue", dropErr)
	}
}

func TestDropCheckOrdering(t *testing.T) {
	g, err := New(7, 6, 4)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for _, col := range []int{0, 1, 0, 1, 0, 1, 0} {
		if _, err := g.Drop(col); err != nil {
			t.Fatalf("Drop(%d) failed: %v", col, err)
		}
	}

	// Column bounds are checked before the won-game check.
	_, dropErr := g.Drop(99)
	var moveErr *MoveError
	if !errors.As(dropErr, &moveErr) || moveErr.Kind != IllegalColumn {
		t.Errorf("out-of-range drop on a won game = %v, want illegal column", dropErr)
	}
}

func TestDropFullColumnBeatsContinue(t *testing.T) {
	// A won game with a full column: the capacity check runs before
	// the won-game check.
	g, err := New(2, 4, 2)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	// p1 -> column 0, p2 -> column 0 (now full), p1 -> column 1 which
	// pairs horizontally with the bottom of column 0.
	for _, col := range []int{0, 0, 1} {
		if _, err := g.Drop(col); err != nil {
			t.Fatalf("Drop(%d) failed: %v", col, err)
		}
	}
	if g.Status() != Player1Win {
		t.Fatalf("status = %v, want player 1 win", g.Status())
	}

	_, dropErr := g.Drop(0)
	var moveErr *MoveError
	if !errors.As(dropErr, &moveErr) || moveErr.Kind != IllegalRow {
		t.Errorf("full-column drop on a won game = %v, want illegal row", dropErr)
	}
}

func TestDrawIsNotTerminalForContinueCheck(t *testing.T) {
	g, err := New(1, 2, 2)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for _, col := range []int{0, 1} {
		if _, err := g.Drop(col); err != nil {
			t.Fatalf("Drop(%d) failed: %v", col, err)
		}
	}
	if g.Status() != Draw {
		t.Fatalf("status = %v, want draw", g.Status())
	}

	// The drop is still rejected, but by the capacity check, not the
	// won-game check.
	_, dropErr := g.Drop(0)
	var moveErr *MoveError
	if !errors.As(dropErr, &moveErr) || moveErr.Kind != IllegalRow {
		t.Errorf("drop on a drawn board = %v, want illegal row", dropErr)
	}
}

func TestBoardLayoutAfterMoves(t *testing.T) {
	g, err := New(7, 6, 4)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for _, col := range []int{1, 1, 2} {
		if _, err := g.Drop(col); err != nil {
			t.Fatalf("Drop(%d) failed: %v", col, err)
		}
	}

	b := g.Board()
	if b[1][0] != CellPlayer1 || b[1][1] != CellPlayer2 {
		t.Errorf("column 1 = [%d %d ...], want player 1 under player 2",
			b[1][0], b[1][1])
	}
	if b[2][0] != CellPlayer1 {
		t.Errorf("column 2 bottom = %d, want player 1", b[2][0])
	}
	if b[0][0] != CellEmpty || b[1][2] != CellEmpty {
		t.Error("unexpected counters outside the played columns")
	}
}

func TestSevenSixFourVerticalWin(t *testing.T) {
	// Regression scenario: dimensions 7 6 4, file moves
	// 1,2,1,2,1,2,1 end in a player 1 vertical win.
	g, err := New(7, 6, 4)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	moves := []int{1, 2, 1, 2, 1, 2, 1}
	var status Outcome
	for i, col := range moves {
		status, err = g.Drop(col - 1)
		if err != nil {
			t.Fatalf("Drop move %d failed: %v", i+1, err)
		}
		if i < len(moves)-1 && status != Incomplete {
			t.Fatalf("status after move %d = %v, want incomplete", i+1, status)
		}
	}
	if status != Player1Win {
		t.Errorf("final status = %v, want player 1 win", status)
	}
}

func TestCountersAreNeverOverwritten(t *testing.T) {
	g, err := New(7, 6, 4)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	for _, col := range []int{0, 0, 0, 0} {
		if _, err := g.Drop(col); err != nil {
			t.Fatalf("Drop(%d) failed: %v", col, err)
		}
	}

	b := g.Board()
	want := []Cell{CellPlayer1, CellPlayer2, CellPlayer1, CellPlayer2}
	for row, cell := range want {
		if b[0][row] != cell {
			t.Errorf("column 0 row %d = %d, want %d", row, b[0][row], cell)
		}
	}
}

func TestTurnAlternates(t *testing.T) {
	g, err := New(7, 6, 4)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	want := CellPlayer1
	for i := 0; i < 6; i++ {
		if g.CurrentPlayer() != want {
			t.Fatalf("turn before move %d = %v, want %v", i+1, g.CurrentPlayer(), want)
		}
		if _, err := g.Drop(i % 6); err != nil {
			t.Fatalf("Drop failed: %v", err)
		}
		want = -want
	}
}
