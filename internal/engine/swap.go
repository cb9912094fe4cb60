package engine

import "errors"

// Swap errors.
var (
	ErrOutOfBounds = errors.New("engine: swap position out of bounds")
	ErrNotAdjacent = errors.New("engine: swap positions are not adjacent")
	ErrEmptyCell   = errors.New("engine: cannot swap an empty cell")
	ErrStoneTile   = errors.New("engine: cannot swap a stone tile")
)

// Swap exchanges two orthogonally adjacent tiles in place.
// Both cells must hold live, non-stone tiles.
func Swap(g *Grid, a, b Coord) error {
	if !g.InBounds(a) || !g.InBounds(b) {
		return ErrOutOfBounds
	}
	if !a.Adjacent(b) {
		return ErrNotAdjacent
	}
	ta, tb := g.At(a), g.At(b)
	if ta == NoTile || tb == NoTile {
		return ErrEmptyCell
	}
	if g.Tiles.IsStone(ta) || g.Tiles.IsStone(tb) {
		return ErrStoneTile
	}
	g.Set(a, tb)
	g.Set(b, ta)
	return nil
}
