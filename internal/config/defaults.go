package config

import (
	_ "embed"
)

//go:embed defaults/foresight.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Palette:   5,
		Pattern:   "l-tromino",
		MaxSteps:  1000,
		LevelsDir: "levels",
		DBPath:    "~/.foresight/runs.db",
		Seed:      0,
		Output: OutputConfig{
			Color:  ColorAuto,
			Format: "text",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
