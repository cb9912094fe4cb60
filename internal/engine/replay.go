package engine

// Frames replays the trace onto a copy of initial and returns the grid after
// every step, followed by the grid after the clear-board step. The last frame
// equals Final.
//
// Frames resolve handles through the simulation's arena, so tile state is as
// of the end of the run. initial may use a snapshot of that arena taken
// before simulating.
func (s *Simulation) Frames(initial *Grid) []*Grid {
	frames := make([]*Grid, 0, len(s.Steps)+1)
	g := initial.Clone()
	g.Tiles = s.Tiles

	for _, step := range s.Steps {
		applyStep(g, step.Matched, step.Moved)
		frames = append(frames, g.Clone())
	}
	applyStep(g, s.ClearBoard.Cleared, s.ClearBoard.Moved)
	frames = append(frames, g.Clone())

	return frames
}

// applyStep removes tiles, then moves every listed tile to its new cell.
// Tiles not yet on the grid are spawned tiles arriving at their settle cell.
func applyStep(g *Grid, removed, moved []Placement) {
	for _, p := range removed {
		g.Clear(p.Pos)
	}
	for _, p := range moved {
		if from, ok := g.Find(p.Tile); ok {
			g.Clear(from)
		}
		g.Set(p.Pos, p.Tile)
	}
}
