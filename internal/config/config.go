// Package config provides YAML-based configuration loading for foresight.
package config

import (
	"fmt"

	"github.com/vovakirdan/foresight/internal/engine"
	"github.com/vovakirdan/foresight/internal/registry"
)

// Config contains all configuration for the simulator and CLI.
type Config struct {
	Palette   int          `yaml:"palette"`    // Number of colors new tiles are drawn from
	Pattern   string       `yaml:"pattern"`    // Preset used when a level names none
	MaxSteps  int          `yaml:"max_steps"`  // Cascade limit for unpredicted runs
	LevelsDir string       `yaml:"levels_dir"` // Directory searched for level files
	DBPath    string       `yaml:"db_path"`    // Run journal location, ~ is expanded
	Seed      uint64       `yaml:"seed"`       // 0 picks a fresh seed per run
	Output    OutputConfig `yaml:"output"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Color  ColorMode `yaml:"color"`
	Format string    `yaml:"format"` // "text" or "json"
}

// ColorMode selects when colored output is used.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Difficulty is a named palette preset.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// PaletteForDifficulty returns the palette size for a difficulty preset.
// Fewer colors mean longer cascades.
func PaletteForDifficulty(d Difficulty) (int, bool) {
	switch d {
	case DifficultyEasy:
		return 3, true
	case DifficultyNormal:
		return 4, true
	case DifficultyHard:
		return int(engine.ColorCount), true
	default:
		return 0, false
	}
}

// ApplyDifficulty sets the palette from a difficulty preset.
func ApplyDifficulty(cfg *Config, d Difficulty) error {
	palette, ok := PaletteForDifficulty(d)
	if !ok {
		return fmt.Errorf("config: unknown difficulty %q", d)
	}
	cfg.Palette = palette
	return nil
}

// Params returns the simulator parameters described by the config.
func (c Config) Params() engine.Params {
	return engine.Params{
		Palette:  c.Palette,
		MaxSteps: c.MaxSteps,
	}
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if c.Palette < 1 || c.Palette > int(engine.ColorCount) {
		return fmt.Errorf("config: palette must be between 1 and %d, got %d", engine.ColorCount, c.Palette)
	}
	if !registry.Exists(c.Pattern) {
		return fmt.Errorf("config: unknown pattern %q", c.Pattern)
	}
	if c.MaxSteps < 0 {
		return fmt.Errorf("config: max_steps must not be negative, got %d", c.MaxSteps)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("config: output.color must be auto, always or never, got %q", c.Output.Color)
	}
	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: output.format must be text or json, got %q", c.Output.Format)
	}
	return nil
}
