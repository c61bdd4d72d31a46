// connectz checks recorded Connect-Z games: Connect Four generalised
// to arbitrary board sizes and win lengths, replayed from a text file
// and reported as a single outcome code.
//
// Usage:
//
//	connectz <file>          - Check a game file and print its outcome code
//	connectz replay <file>   - Replay a game move by move with a board view
//	connectz results         - Show recently checked games
//
// Global flags:
//
//	--config <path>  - Path to config YAML (default: ~/.connectz/config.yaml)
//	--db <path>      - Path to history database
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/connectz/internal/config"
	"github.com/vovakirdan/connectz/internal/replay"
	"github.com/vovakirdan/connectz/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagDBPath  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "connectz"})
)

func main() {
	// Optional .env for local overrides (CONNECTZ_DB).
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "connectz <file>",
	Short: "Connect-Z - validate recorded Connect Four style games",
	Long: `connectz replays a recorded Connect-Z game (Connect Four generalised
to any board size and win length) from a text file and prints a single
integer describing how it ended.

The file starts with a dimensions line "rows columns winLength"; every
further line holds one 1-based column to drop the next counter into.

Outcome codes:
  0  draw                  5  illegal row (column full)
  1  player 1 win          6  illegal column (out of range)
  2  player 2 win          7  illegal game (bad dimensions)
  3  incomplete            8  invalid file (malformed content)
  4  illegal continue      9  file error (missing/unreadable)

Examples:
  connectz game.txt
  connectz replay game.txt
  connectz results --limit 5`,
	Args: cobra.ArbitraryArgs,
	Run:  runCheck,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to history database")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	// Add subcommands
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(resultsCmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	setupLogger()

	// Anything but exactly one file gets the guidance line, never a
	// code.
	if len(args) != 1 {
		fmt.Println("Provide one input file")
		return
	}

	cfg := loadConfig()

	rep := replay.Run(args[0])
	if rep.Err != nil {
		logger.Debug("run stopped", "file", args[0], "code", rep.Code, "error", rep.Err)
	} else {
		logger.Debug("run finished", "file", args[0], "code", rep.Code, "moves", rep.Moves)
	}

	fmt.Println(int(rep.Code))

	recordResult(cfg, args[0], rep)
}

// setupLogger applies the verbosity flag.
func setupLogger() {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	}
}

// loadConfig loads the YAML config, falling back to defaults on error.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		return config.Default()
	}
	return cfg
}

// historyDBPath resolves the history database path:
// --db flag, then CONNECTZ_DB, then the config file.
func historyDBPath(cfg config.Config) string {
	if flagDBPath != "" {
		return flagDBPath
	}
	if env := os.Getenv("CONNECTZ_DB"); env != "" {
		return env
	}
	return cfg.History.DB
}

// historyWanted reports whether results should be recorded: enabled in
// the config, or a database explicitly pointed at.
func historyWanted(cfg config.Config) bool {
	return cfg.History.Enabled || flagDBPath != "" || os.Getenv("CONNECTZ_DB") != ""
}

// recordResult appends the outcome to the history ledger when enabled.
// History failures never change the printed code.
func recordResult(cfg config.Config, path string, rep replay.Report) {
	if !historyWanted(cfg) {
		return
	}

	store, err := storage.Open(historyDBPath(cfg))
	if err != nil {
		logger.Warn("could not open history database", "error", err)
		return
	}
	defer store.Close()

	runID, err := store.SaveResult(storage.ResultEntry{
		Source:    path,
		Rows:      rep.Dims.Rows,
		Columns:   rep.Dims.Columns,
		WinLength: rep.Dims.WinLength,
		Moves:     rep.Moves,
		Code:      int(rep.Code),
	})
	if err != nil {
		logger.Warn("could not record result", "error", err)
		return
	}
	logger.Debug("result recorded", "run_id", runID)
}
