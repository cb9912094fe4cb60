package engine

// Grid is the game board as a rectangular array of tile handles.
// Cells are stored in row-major order: index = y*W + x, row 0 at the bottom.
// Clones share the TileSet, so tile state is visible through every copy.
type Grid struct {
	W     int      // Width of the grid
	H     int      // Height of the grid
	Cells []TileID // Flat array of handles, length W*H
	Tiles *TileSet // Arena the handles point into
}

// NewGrid creates an empty grid backed by the given arena.
// A nil arena gets a fresh one.
func NewGrid(w, h int, tiles *TileSet) *Grid {
	if tiles == nil {
		tiles = NewTileSet()
	}
	return &Grid{
		W:     w,
		H:     h,
		Cells: make([]TileID, w*h),
		Tiles: tiles,
	}
}

// index converts a coordinate to a flat array index.
func (g *Grid) index(c Coord) int {
	return c.Y*g.W + c.X
}

// InBounds returns true if the coordinate is within the grid boundaries.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.W && c.Y >= 0 && c.Y < g.H
}

// At returns the handle at the given coordinate.
// Returns NoTile if out of bounds.
func (g *Grid) At(c Coord) TileID {
	if !g.InBounds(c) {
		return NoTile
	}
	return g.Cells[g.index(c)]
}

// Set stores a handle at the given coordinate.
func (g *Grid) Set(c Coord, id TileID) {
	if g.InBounds(c) {
		g.Cells[g.index(c)] = id
	}
}

// Clear empties the cell at the given coordinate.
func (g *Grid) Clear(c Coord) {
	g.Set(c, NoTile)
}

// Place creates a tile of the given color at c and returns its handle.
func (g *Grid) Place(c Coord, color Color) TileID {
	id := g.Tiles.New(color)
	g.Set(c, id)
	return id
}

// PlaceStone creates a petrified tile at c and returns its handle.
func (g *Grid) PlaceStone(c Coord, color Color) TileID {
	id := g.Tiles.NewStone(color)
	g.Set(c, id)
	return id
}

// Clone returns a copy of the cell array sharing the same arena.
func (g *Grid) Clone() *Grid {
	cells := make([]TileID, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		W:     g.W,
		H:     g.H,
		Cells: cells,
		Tiles: g.Tiles,
	}
}

// OccupiedCount returns the number of non-empty cells.
func (g *Grid) OccupiedCount() int {
	count := 0
	for _, id := range g.Cells {
		if id != NoTile {
			count++
		}
	}
	return count
}

// ColumnCount returns the number of non-empty cells in column x.
func (g *Grid) ColumnCount(x int) int {
	count := 0
	for y := 0; y < g.H; y++ {
		if g.At(C(x, y)) != NoTile {
			count++
		}
	}
	return count
}

// Find returns the position of a tile on the grid.
func (g *Grid) Find(id TileID) (Coord, bool) {
	if id == NoTile {
		return Coord{}, false
	}
	for i, cell := range g.Cells {
		if cell == id {
			return C(i%g.W, i/g.W), true
		}
	}
	return Coord{}, false
}

// Placements lists every occupied cell in column-major order.
func (g *Grid) Placements() []Placement {
	out := make([]Placement, 0, len(g.Cells))
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if id := g.At(C(x, y)); id != NoTile {
				out = append(out, Placement{Tile: id, Pos: C(x, y)})
			}
		}
	}
	return out
}

// Equal returns true if two grids have the same dimensions and handles.
func (g *Grid) Equal(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// SameColors returns true if two grids hold tiles of the same color and
// stone state at every position, regardless of tile identity.
func (g *Grid) SameColors(other *Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, a := range g.Cells {
		b := other.Cells[i]
		if (a == NoTile) != (b == NoTile) {
			return false
		}
		if a == NoTile {
			continue
		}
		ta, tb := g.Tiles.Get(a), other.Tiles.Get(b)
		if ta.Color != tb.Color || ta.Stone != tb.Stone {
			return false
		}
	}
	return true
}
