// Package render draws static Connect-Z board views for the replay
// command. The board is printed top row first with 1-based column
// numbers along the bottom, matching the column indices used in game
// files.
package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connectz/internal/game"
)

// Glyphs are the characters used for each cell state.
type Glyphs struct {
	Player1 string
	Player2 string
	Empty   string
}

// DefaultGlyphs returns the glyphs used when no config is loaded.
func DefaultGlyphs() Glyphs {
	return Glyphs{Player1: "X", Player2: "O", Empty: "."}
}

// Styles bundles the lipgloss styles used for a board view.
type Styles struct {
	Player1 lipgloss.Style
	Player2 lipgloss.Style
	Empty   lipgloss.Style
	Frame   lipgloss.Style
}

// ColorStyles returns the styles used on a colour terminal.
func ColorStyles() Styles {
	return Styles{
		Player1: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),   // red
		Player2: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),   // yellow
		Empty:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")), // gray
		Frame:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// PlainStyles returns unstyled output for pipes and files.
func PlainStyles() Styles {
	return Styles{
		Player1: lipgloss.NewStyle(),
		Player2: lipgloss.NewStyle(),
		Empty:   lipgloss.NewStyle(),
		Frame:   lipgloss.NewStyle(),
	}
}

// Board renders the board as a multi-line string, top row first.
func Board(b game.Board, g Glyphs, st Styles) string {
	rows, columns := b.Rows(), b.Columns()

	var sb strings.Builder
	for row := rows - 1; row >= 0; row-- {
		sb.WriteString(st.Frame.Render("|"))
		for col := 0; col < columns; col++ {
			if col > 0 {
				sb.WriteString(" ")
			}
			switch b[col][row] {
			case game.CellPlayer1:
				sb.WriteString(st.Player1.Render(g.Player1))
			case game.CellPlayer2:
				sb.WriteString(st.Player2.Render(g.Player2))
			default:
				sb.WriteString(st.Empty.Render(g.Empty))
			}
		}
		sb.WriteString(st.Frame.Render("|"))
		sb.WriteRune('\n')
	}

	// Column numbers, single digit to keep cells aligned.
	sb.WriteString(" ")
	for col := 1; col <= columns; col++ {
		if col > 1 {
			sb.WriteString(" ")
		}
		sb.WriteString(st.Frame.Render(strconv.Itoa(col % 10)))
	}
	sb.WriteRune('\n')

	return sb.String()
}
