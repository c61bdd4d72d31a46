package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/connectz/internal/game"
	"github.com/vovakirdan/connectz/internal/render"
	"github.com/vovakirdan/connectz/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Replay a game file move by move",
	Long: `Replay the recorded game, printing the board after every move.

Output is coloured on a terminal and plain when piped; glyphs and
colour mode can be changed in the config. The final line is the same
outcome code that 'connectz <file>' prints.

Examples:
  connectz replay game.txt
  connectz replay game.txt --config ./my-glyphs.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) {
	setupLogger()
	cfg := loadConfig()

	glyphs := render.Glyphs{
		Player1: cfg.Render.Player1,
		Player2: cfg.Render.Player2,
		Empty:   cfg.Render.Empty,
	}

	styles := render.PlainStyles()
	switch cfg.Render.Color {
	case "always":
		styles = render.ColorStyles()
	case "never":
		// keep plain
	default: // auto
		if term.IsTerminal(int(os.Stdout.Fd())) {
			styles = render.ColorStyles()
		}
	}

	rep := replay.Walk(args[0], func(g *game.Game, s replay.Step) {
		fmt.Printf("move %d: player %s drops in column %d\n",
			s.Move, playerName(s.Player), s.Column)
		fmt.Print(render.Board(g.Board(), glyphs, styles))
		fmt.Println()
	})

	if rep.Err != nil {
		fmt.Printf("stopped: %v\n", rep.Err)
	}
	fmt.Println(int(rep.Code))
}

func playerName(c game.Cell) string {
	if c == game.CellPlayer1 {
		return "1"
	}
	return "2"
}
