package config

import (
	_ "embed"
)

//go:embed defaults/connectz.yaml
var defaultYAML []byte

// Default returns the hardcoded fallback configuration, used when even
// the embedded YAML cannot be parsed.
func Default() Config {
	return Config{
		Render: RenderConfig{
			Player1: "X",
			Player2: "O",
			Empty:   ".",
			Color:   "auto",
		},
		History: HistoryConfig{
			Enabled: false,
			DB:      "~/.connectz/history.db",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
