// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/foresight/internal/engine"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Pattern  string            `yaml:"pattern,omitempty"`
	Offsets  [][2]int          `yaml:"offsets,omitempty"` // [dx, dy] pairs, used instead of a preset
	Size     YAMLSize          `yaml:"size"`
	Palette  int               `yaml:"palette,omitempty"`
	Seed     uint64            `yaml:"seed,omitempty"`
	Rows     []string          `yaml:"rows,omitempty"` // Top row first
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents grid dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Level represents a parsed level ready for use.
type Level struct {
	ID       string
	Name     string
	Pattern  string
	Offsets  []engine.Offset
	Width    int
	Height   int
	Palette  int
	Seed     uint64
	Rows     []string
	Metadata map[string]string
}

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("level has no id")
	}
	if yl.Pattern != "" && len(yl.Offsets) > 0 {
		return Level{}, fmt.Errorf("level %s: pattern and offsets are mutually exclusive", yl.ID)
	}
	if yl.Palette < 0 || yl.Palette > int(engine.ColorCount) {
		return Level{}, fmt.Errorf("level %s: palette must be between 1 and %d", yl.ID, engine.ColorCount)
	}

	level := Level{
		ID:       yl.ID,
		Name:     yl.Name,
		Pattern:  yl.Pattern,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		Palette:  yl.Palette,
		Seed:     yl.Seed,
		Rows:     yl.Rows,
		Metadata: yl.Metadata,
	}

	// Size may be taken from the rows
	if len(yl.Rows) > 0 {
		w := len([]rune(yl.Rows[0]))
		if level.Width == 0 && level.Height == 0 {
			level.Width, level.Height = w, len(yl.Rows)
		}
		if level.Width != w || level.Height != len(yl.Rows) {
			return Level{}, fmt.Errorf("level %s: rows are %dx%d but size is %dx%d",
				yl.ID, w, len(yl.Rows), level.Width, level.Height)
		}
	}
	if level.Width <= 0 || level.Height <= 0 {
		return Level{}, fmt.Errorf("level %s: size must be positive, got %dx%d", yl.ID, level.Width, level.Height)
	}

	for _, o := range yl.Offsets {
		level.Offsets = append(level.Offsets, engine.Offset{DX: o[0], DY: o[1]})
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
