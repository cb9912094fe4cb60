// Package levels provides level loading functionality.
// This package depends on engine but engine does not depend on levels.
package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/foresight/internal/engine"
	"github.com/vovakirdan/foresight/internal/levels/formats"
	"github.com/vovakirdan/foresight/internal/registry"
)

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Pattern  string          // Preset name, empty if Offsets is set or the default applies
	Offsets  []engine.Offset // Inline pattern
	Width    int
	Height   int
	Palette  int    // 0 means the configured palette
	Seed     uint64 // 0 means the run picks a seed
	Rows     []string
	Metadata map[string]string
	FilePath string
}

// ResolvePattern returns the level's matching pattern. Inline offsets win over
// a preset name; a level naming neither uses defaultPreset.
func (l *Level) ResolvePattern(defaultPreset string) (engine.Pattern, error) {
	if len(l.Offsets) > 0 {
		p, err := engine.NewPattern(l.Offsets...)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
		return p, nil
	}

	name := l.Pattern
	if name == "" {
		name = defaultPreset
	}
	p, err := registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return p, nil
}

// PatternName describes the pattern for listings.
func (l *Level) PatternName(defaultPreset string) string {
	switch {
	case len(l.Offsets) > 0:
		return "custom"
	case l.Pattern != "":
		return l.Pattern
	default:
		return defaultPreset
	}
}

// ToGrid builds the starting grid. Cells the rows leave open ('.'), or every
// cell when the level has no rows, are filled from rng column by column.
func (l *Level) ToGrid(rng *engine.RNG, palette int) (*engine.Grid, error) {
	var g *engine.Grid
	if len(l.Rows) > 0 {
		parsed, err := engine.ParseRows(l.Rows, nil)
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", l.ID, err)
		}
		g = parsed
	} else {
		g = engine.NewGrid(l.Width, l.Height, nil)
	}

	if l.Palette > 0 {
		palette = l.Palette
	}
	engine.RandomFill(g, rng, palette)
	return g, nil
}

// Loader handles loading levels from a directory.
type Loader struct {
	Root   string
	Logger *log.Logger // Optional; reports skipped files at debug level
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if !isSupportedExtension(ext) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			// Skip invalid files
			if l.Logger != nil {
				l.Logger.Debug("skipping level file", "path", path, "error", err)
			}
			return nil
		}

		levels = append(levels, level)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	// Sort by ID for determinism
	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	parsed, err := parseByExtension(data, ext)
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	return Level{
		ID:       parsed.ID,
		Name:     parsed.Name,
		Pattern:  parsed.Pattern,
		Offsets:  parsed.Offsets,
		Width:    parsed.Width,
		Height:   parsed.Height,
		Palette:  parsed.Palette,
		Seed:     parsed.Seed,
		Rows:     parsed.Rows,
		Metadata: parsed.Metadata,
		FilePath: path,
	}, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("level not found: %s", id)
}

// ListIDs returns all level IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

// isSupportedExtension checks if extension is supported.
func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
