package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectz/internal/replay"
	"github.com/vovakirdan/connectz/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Show recently checked games",
	Long: `Display the most recently checked games from the history database.

History is recorded when history.enabled is set in the config, or when
--db or CONNECTZ_DB points at a database.

Examples:
  connectz results
  connectz results --limit 5
  connectz results --clear`,
	Run: runResults,
}

func init() {
	resultsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	resultsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded results")
}

func runResults(cmd *cobra.Command, args []string) {
	setupLogger()
	cfg := loadConfig()

	store, err := storage.Open(historyDBPath(cfg))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing history: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	entries, err := store.Recent(flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving results: %v\n", err)
		os.Exit(1)
	}

	if len(entries) == 0 {
		fmt.Println("No games checked yet.")
		fmt.Println()
		fmt.Println("Run 'connectz <file>' with history enabled to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-6s  %s\n",
		"Code", "Outcome", "Board", "Win", "Moves", "File")
	fmt.Printf("  %-4s  %-16s  %-8s  %-5s  %-6s  %s\n",
		"----", "-------", "-----", "---", "-----", "----")

	// Print entries
	for _, e := range entries {
		board := fmt.Sprintf("%dx%d", e.Rows, e.Columns)
		fmt.Printf("  %-4d  %-16s  %-8s  %-5d  %-6d  %s\n",
			e.Code, replay.Code(e.Code), board, e.WinLength, e.Moves, e.Source)
	}
}
