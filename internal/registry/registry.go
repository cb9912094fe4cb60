// Package registry provides a global registry of named matching patterns.
// Presets register themselves in init() functions, so levels and the CLI can
// refer to a pattern by name without knowing its offsets.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/foresight/internal/engine"
)

// PatternInfo contains metadata about a registered pattern.
type PatternInfo struct {
	ID    string
	Title string
	Size  int // Number of cells in the pattern
}

type entry struct {
	title   string
	pattern engine.Pattern
}

var (
	patterns = make(map[string]entry)
	mu       sync.RWMutex
)

// Register adds a named pattern to the registry.
// Panics if a pattern with the same ID is already registered or if the
// pattern lacks the anchor offset.
func Register(id, title string, p engine.Pattern) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := patterns[id]; exists {
		panic(fmt.Sprintf("registry: pattern %q already registered", id))
	}
	if !p.Contains(engine.Zero) {
		panic(fmt.Sprintf("registry: pattern %q lacks the anchor offset", id))
	}

	patterns[id] = entry{title: title, pattern: p}
}

// List returns information about all registered patterns, sorted by ID.
func List() []PatternInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PatternInfo, 0, len(patterns))
	for id, e := range patterns {
		result = append(result, PatternInfo{
			ID:    id,
			Title: e.title,
			Size:  len(e.pattern),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns a copy of the pattern registered under id.
// Returns an error if the pattern ID is not registered.
func Get(id string) (engine.Pattern, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := patterns[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown pattern %q", id)
	}

	out := make(engine.Pattern, len(e.pattern))
	copy(out, e.pattern)
	return out, nil
}

// Exists checks if a pattern with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := patterns[id]
	return ok
}
