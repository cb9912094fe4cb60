package play

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/foresight/internal/engine"
)

// Swap exchanges the tiles at A and B before the simulation starts.
type Swap struct {
	A engine.Coord
	B engine.Coord
}

// ParseCoords parses "x,y;x,y". An empty string yields no coordinates.
func ParseCoords(s string) ([]engine.Coord, error) {
	var coords []engine.Coord
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		c, err := parseCoord(part)
		if err != nil {
			return nil, err
		}
		coords = append(coords, c)
	}
	return coords, nil
}

// FormatCoords is the inverse of ParseCoords.
func FormatCoords(coords []engine.Coord) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = fmt.Sprintf("%d,%d", c.X, c.Y)
	}
	return strings.Join(parts, ";")
}

// ParseSwaps parses "x,y:x,y;x,y:x,y".
func ParseSwaps(s string) ([]Swap, error) {
	var swaps []Swap
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		a, b, ok := strings.Cut(part, ":")
		if !ok {
			return nil, fmt.Errorf("swap %q: want x,y:x,y", part)
		}
		ca, err := parseCoord(a)
		if err != nil {
			return nil, err
		}
		cb, err := parseCoord(b)
		if err != nil {
			return nil, err
		}
		swaps = append(swaps, Swap{A: ca, B: cb})
	}
	return swaps, nil
}

// FormatSwaps is the inverse of ParseSwaps.
func FormatSwaps(swaps []Swap) string {
	parts := make([]string, len(swaps))
	for i, sw := range swaps {
		parts[i] = fmt.Sprintf("%d,%d:%d,%d", sw.A.X, sw.A.Y, sw.B.X, sw.B.Y)
	}
	return strings.Join(parts, ";")
}

func parseCoord(s string) (engine.Coord, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return engine.Coord{}, fmt.Errorf("coordinate %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return engine.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return engine.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return engine.C(x, y), nil
}
