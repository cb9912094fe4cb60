package engine

import "fmt"

// Prediction is the set of tiles a player expects to be matched, keyed by handle.
// A nil *Prediction means predictions are disabled; an empty one is still active
// and blocks every match.
type Prediction struct {
	set   map[TileID]struct{}
	order []TileID // insertion order, for deterministic reporting
}

// NewPrediction creates a prediction holding the given tiles.
func NewPrediction(ids ...TileID) *Prediction {
	p := &Prediction{set: make(map[TileID]struct{}, len(ids))}
	for _, id := range ids {
		p.Add(id)
	}
	return p
}

// PredictAt builds a prediction from grid positions.
func PredictAt(g *Grid, coords ...Coord) (*Prediction, error) {
	p := NewPrediction()
	for _, c := range coords {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("engine: predicted position %v out of bounds", c)
		}
		id := g.At(c)
		if id == NoTile {
			return nil, fmt.Errorf("engine: predicted position %v is empty", c)
		}
		p.Add(id)
	}
	return p, nil
}

// Add inserts a tile. Adding a tile twice has no effect.
func (p *Prediction) Add(id TileID) {
	if _, ok := p.set[id]; ok {
		return
	}
	p.set[id] = struct{}{}
	p.order = append(p.order, id)
}

// Contains reports whether the tile is predicted.
func (p *Prediction) Contains(id TileID) bool {
	_, ok := p.set[id]
	return ok
}

// Remove drops a tile from the prediction.
func (p *Prediction) Remove(id TileID) {
	delete(p.set, id)
}

// Len returns the number of predicted tiles.
func (p *Prediction) Len() int {
	if p == nil {
		return 0
	}
	return len(p.set)
}

// Tiles returns the predicted tiles in insertion order.
func (p *Prediction) Tiles() []TileID {
	if p == nil {
		return nil
	}
	out := make([]TileID, 0, len(p.set))
	for _, id := range p.order {
		if p.Contains(id) {
			out = append(out, id)
		}
	}
	return out
}

// Clone returns an independent copy.
func (p *Prediction) Clone() *Prediction {
	if p == nil {
		return nil
	}
	return NewPrediction(p.Tiles()...)
}
