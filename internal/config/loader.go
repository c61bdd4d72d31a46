package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the connectz configuration.
// Search order: customPath -> ~/.connectz/config.yaml -> ./connectz.yaml -> embedded default
func Load(customPath string) (Config, error) {
	var cfg Config

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return withDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return withDefaults(cfg), nil
			}
		}
	}

	// Try local config file
	if data, err := os.ReadFile("connectz.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return withDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return withDefaults(cfg), nil
}

// withDefaults fills any field a partial config file left empty.
func withDefaults(cfg Config) Config {
	def := Default()
	if cfg.Render.Player1 == "" {
		cfg.Render.Player1 = def.Render.Player1
	}
	if cfg.Render.Player2 == "" {
		cfg.Render.Player2 = def.Render.Player2
	}
	if cfg.Render.Empty == "" {
		cfg.Render.Empty = def.Render.Empty
	}
	if cfg.Render.Color == "" {
		cfg.Render.Color = def.Render.Color
	}
	if cfg.History.DB == "" {
		cfg.History.DB = def.History.DB
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if
// home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".connectz", filename)
}
