package engine

import "fmt"

// ValidationError describes malformed simulator input.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// ValidateGrid checks that a grid is well formed:
//   - positive dimensions and a cell array of W*H
//   - every handle resolves in the arena
//   - no handle occupies two cells
func ValidateGrid(g *Grid) error {
	if g == nil {
		return ValidationError{Code: "NIL_GRID", Message: "grid is nil"}
	}
	if g.W <= 0 || g.H <= 0 || len(g.Cells) != g.W*g.H {
		return ValidationError{
			Code:    "BAD_DIMENSIONS",
			Message: fmt.Sprintf("grid %dx%d holds %d cells", g.W, g.H, len(g.Cells)),
		}
	}
	if g.Tiles == nil {
		return ValidationError{Code: "NO_ARENA", Message: "grid has no tile set"}
	}

	seen := make(map[TileID]Coord)
	for i, id := range g.Cells {
		if id == NoTile {
			continue
		}
		pos := C(i%g.W, i/g.W)
		if !g.Tiles.Valid(id) {
			return ValidationError{
				Code:    "UNKNOWN_TILE",
				Message: fmt.Sprintf("cell %v holds unknown tile %d", pos, id),
			}
		}
		if prev, dup := seen[id]; dup {
			return ValidationError{
				Code:    "DUPLICATE_TILE",
				Message: fmt.Sprintf("tile %d occupies both %v and %v", id, prev, pos),
			}
		}
		seen[id] = pos
	}
	return nil
}

// ValidatePrediction checks that every predicted tile is on the grid and not stone.
func ValidatePrediction(g *Grid, p *Prediction) error {
	if p == nil {
		return nil
	}
	onGrid := make(map[TileID]bool, len(g.Cells))
	for _, id := range g.Cells {
		if id != NoTile {
			onGrid[id] = true
		}
	}
	for _, id := range p.Tiles() {
		if !onGrid[id] {
			return ValidationError{
				Code:    "PREDICTION_OFF_GRID",
				Message: fmt.Sprintf("predicted tile %d is not on the grid", id),
			}
		}
		if g.Tiles.IsStone(id) {
			return ValidationError{
				Code:    "PREDICTION_STONE",
				Message: fmt.Sprintf("predicted tile %d is stone", id),
			}
		}
	}
	return nil
}
