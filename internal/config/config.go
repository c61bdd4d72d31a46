// Package config provides YAML-based configuration loading for the
// connectz CLI.
package config

// Config is the top-level connectz configuration.
type Config struct {
	Render  RenderConfig  `yaml:"render"`
	History HistoryConfig `yaml:"history"`
}

// RenderConfig controls the board view printed by the replay command.
type RenderConfig struct {
	Player1 string `yaml:"player1"` // glyph for player 1 counters
	Player2 string `yaml:"player2"` // glyph for player 2 counters
	Empty   string `yaml:"empty"`   // glyph for empty cells
	Color   string `yaml:"color"`   // "auto", "always" or "never"
}

// HistoryConfig controls the checked-game ledger.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DB      string `yaml:"db"` // path to the SQLite database
}
