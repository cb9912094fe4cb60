package engine

// MoveTilesDown compacts every column toward row 0, preserving the order of
// tiles within a column. Returns the tiles that moved, at their new positions.
func MoveTilesDown(g *Grid) []Placement {
	var moved []Placement

	for x := 0; x < g.W; x++ {
		top := 0
		for y := 0; y < g.H; y++ {
			id := g.At(C(x, y))
			if id == NoTile {
				continue
			}
			if y > top {
				dst := C(x, top)
				g.Set(dst, id)
				g.Clear(C(x, y))
				moved = append(moved, Placement{Tile: id, Pos: dst})
			}
			top++
		}
	}
	return moved
}

// FillWithNewTiles fills the empty cells at the top of each column with new
// tiles of random color. It expects a compacted grid.
//
// Each new tile is returned at its spawn position above the grid, (x, H+k),
// and appended to moved at the cell it settles in, so a renderer can animate
// spawned and falling tiles the same way.
func (s *Simulator) FillWithNewTiles(g *Grid, moved *[]Placement) []Placement {
	var spawned []Placement

	for x := 0; x < g.W; x++ {
		n := g.H - g.ColumnCount(x)
		for y := g.H; y < g.H+n; y++ {
			id := g.Tiles.New(Color(s.rng.Intn(s.palette)))
			settle := C(x, y-n)
			g.Set(settle, id)

			spawned = append(spawned, Placement{Tile: id, Pos: C(x, y)})
			if moved != nil {
				*moved = append(*moved, Placement{Tile: id, Pos: settle})
			}
		}
	}
	return spawned
}

// ClearBottomRows removes every tile in rows [0, rows), stone or not.
func ClearBottomRows(g *Grid, rows int) []Placement {
	var cleared []Placement

	for x := 0; x < g.W; x++ {
		for y := 0; y < rows && y < g.H; y++ {
			pos := C(x, y)
			id := g.At(pos)
			if id == NoTile {
				continue
			}
			cleared = append(cleared, Placement{Tile: id, Pos: pos})
			g.Clear(pos)
		}
	}
	return cleared
}
