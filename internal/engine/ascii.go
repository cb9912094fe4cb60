package engine

import (
	"fmt"
	"strings"
	"unicode"
)

// ParseRows builds a grid from text rows, top row first.
//
// Format:
//   - '.' is an empty cell
//   - R/G/B/Y/P are tiles of that color
//   - lowercase r/g/b/y/p are stone tiles
//
// All rows must have the same width.
func ParseRows(rows []string, tiles *TileSet) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("engine: no rows")
	}
	w := len([]rune(rows[0]))
	h := len(rows)
	g := NewGrid(w, h, tiles)

	for i, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("engine: row %d has width %d, want %d", i, len(runes), w)
		}
		y := h - 1 - i
		for x, r := range runes {
			if r == '.' {
				continue
			}
			color, stone, ok := ParseColorChar(r)
			if !ok {
				return nil, fmt.Errorf("engine: row %d: unknown tile %q", i, r)
			}
			if stone {
				g.PlaceStone(C(x, y), color)
			} else {
				g.Place(C(x, y), color)
			}
		}
	}
	return g, nil
}

// MustParseRows is like ParseRows but panics on error. Intended for tests.
func MustParseRows(rows ...string) *Grid {
	g, err := ParseRows(rows, nil)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows renders the grid in the ParseRows format, top row first.
func (g *Grid) Rows() []string {
	rows := make([]string, 0, g.H)
	for y := g.H - 1; y >= 0; y-- {
		var sb strings.Builder
		for x := 0; x < g.W; x++ {
			sb.WriteRune(g.Glyph(C(x, y)))
		}
		rows = append(rows, sb.String())
	}
	return rows
}

// Glyph returns the ParseRows character for the cell at c.
func (g *Grid) Glyph(c Coord) rune {
	id := g.At(c)
	if id == NoTile {
		return '.'
	}
	t := g.Tiles.Get(id)
	if t.Stone {
		return unicode.ToLower(t.Color.Char())
	}
	return t.Color.Char()
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// RandomFill places a random tile in every empty cell, column by column.
func RandomFill(g *Grid, rng *RNG, palette int) {
	if palette <= 0 {
		palette = DefaultPalette
	}
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if g.At(C(x, y)) == NoTile {
				g.Place(C(x, y), Color(rng.Intn(palette)))
			}
		}
	}
}
