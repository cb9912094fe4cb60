package engine

// Placement pairs a tile with a grid position.
type Placement struct {
	Tile TileID
	Pos  Coord
}

// SimulationStep records one match -> fall -> spawn iteration.
type SimulationStep struct {
	Matched []Placement // Tiles removed by matching, at their positions before removal
	Moved   []Placement // Tiles that changed position, at their new positions
	Spawned []Placement // New tiles, at their spawn positions above the grid
	Score   int         // Running count of matched sets, starting at 1
}

// ClearBoardStep records the forced row clear that ends a simulation.
type ClearBoardStep struct {
	ClearedRows           int
	Cleared               []Placement
	Moved                 []Placement
	Spawned               []Placement
	ExtraneousPredictions []TileID // Predicted tiles that never matched, now stone
}

// Simulation is the full trace of one Simulate call.
// It is read-only once returned.
type Simulation struct {
	Steps                  []SimulationStep
	ClearBoard             ClearBoardStep
	Final                  *Grid    // Grid state after the clear-board step
	Tiles                  *TileSet // Arena resolving every handle in the trace
	FurtherMatchesPossible bool
}

// Score returns the score of the last step, or 0 if nothing matched.
func (s *Simulation) Score() int {
	if len(s.Steps) == 0 {
		return 0
	}
	return s.Steps[len(s.Steps)-1].Score
}

// SwapsGranted returns the number of swaps the player earns: one per step
// after the first.
func (s *Simulation) SwapsGranted() int {
	if len(s.Steps) <= 1 {
		return 0
	}
	return len(s.Steps) - 1
}

// MatchedCount returns the total number of tiles removed by matching.
func (s *Simulation) MatchedCount() int {
	n := 0
	for _, step := range s.Steps {
		n += len(step.Matched)
	}
	return n
}

// WasMatched reports whether a tile appears in any step's matched set.
func (s *Simulation) WasMatched(id TileID) bool {
	for _, step := range s.Steps {
		for _, p := range step.Matched {
			if p.Tile == id {
				return true
			}
		}
	}
	return false
}
