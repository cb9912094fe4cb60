package engine

// eligible reports whether a tile may take part in a match.
func eligible(g *Grid, id TileID, pred *Prediction) bool {
	if id == NoTile || g.Tiles.IsStone(id) {
		return false
	}
	return pred == nil || pred.Contains(id)
}

// MatchAt tests every symmetry anchored at c in order and returns the index
// of the first one that matches. Only the grid state passed in is read.
func (s *Simulator) MatchAt(g *Grid, c Coord, pred *Prediction) (int, bool) {
	anchor := g.At(c)
	if !eligible(g, anchor, pred) {
		return -1, false
	}
	color := g.Tiles.Color(anchor)

	for i, pattern := range s.symmetries {
		if s.fits(g, c, color, pattern, pred) {
			return i, true
		}
	}
	return -1, false
}

// fits checks every non-anchor offset of one symmetry.
func (s *Simulator) fits(g *Grid, c Coord, color Color, pattern Pattern, pred *Prediction) bool {
	for _, o := range pattern {
		if o == Zero {
			continue
		}
		pos := c.Add(o)
		if !g.InBounds(pos) {
			return false
		}
		id := g.At(pos)
		if !eligible(g, id, pred) || g.Tiles.Color(id) != color {
			return false
		}
	}
	return true
}

// FindMatches returns every (tile, position) pair that belongs to at least one
// match, without modifying the grid. Anchors are visited column by column,
// bottom to top; results keep first-seen order and never repeat a pair.
func (s *Simulator) FindMatches(g *Grid, pred *Prediction) []Placement {
	seen := make(map[Placement]struct{})
	var matched []Placement

	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			anchor := C(x, y)
			idx, ok := s.MatchAt(g, anchor, pred)
			if !ok {
				continue
			}
			for _, o := range s.symmetries[idx] {
				pos := anchor.Add(o)
				p := Placement{Tile: g.At(pos), Pos: pos}
				if _, dup := seen[p]; dup {
					continue
				}
				seen[p] = struct{}{}
				matched = append(matched, p)
			}
		}
	}
	return matched
}

// RemoveMatchedTiles finds all matches on the grid as it stands, then clears
// the matched cells. With a prediction active, matched tiles leave the
// prediction and are marked correctly predicted.
func (s *Simulator) RemoveMatchedTiles(g *Grid, pred *Prediction) []Placement {
	matched := s.FindMatches(g, pred)

	for _, p := range matched {
		g.Clear(p.Pos)
		if pred != nil && pred.Contains(p.Tile) {
			pred.Remove(p.Tile)
			g.Tiles.markCorrect(p.Tile)
		}
	}
	return matched
}
