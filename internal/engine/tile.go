package engine

// TileID is a stable handle to a tile in a TileSet.
// The zero value marks an empty cell.
type TileID uint32

// NoTile is the handle stored in empty cells.
const NoTile TileID = 0

// PredictionState records the outcome of a player's guess about a tile.
type PredictionState uint8

const (
	PredictionNone    PredictionState = iota
	PredictionCorrect                 // Guessed and matched
	PredictionWrong                   // Guessed but never matched; tile is petrified
)

// String returns the string representation of a prediction state.
func (p PredictionState) String() string {
	switch p {
	case PredictionNone:
		return "none"
	case PredictionCorrect:
		return "correct"
	case PredictionWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// Tile is a single tile record. Tiles are compared by TileID, never by value.
type Tile struct {
	Color      Color
	Stone      bool
	Prediction PredictionState
}

// TileSet is an append-only arena of tiles.
// Removed tiles stay addressable so traces can refer to them after they leave the grid.
type TileSet struct {
	tiles []Tile // index 0 is reserved for NoTile
}

// NewTileSet creates an empty arena.
func NewTileSet() *TileSet {
	return &TileSet{tiles: make([]Tile, 1)}
}

// New creates a tile and returns its handle.
func (ts *TileSet) New(c Color) TileID {
	ts.tiles = append(ts.tiles, Tile{Color: c})
	return TileID(len(ts.tiles) - 1)
}

// NewStone creates an already petrified tile.
func (ts *TileSet) NewStone(c Color) TileID {
	id := ts.New(c)
	ts.tiles[id].Stone = true
	return id
}

// Valid reports whether id refers to a tile in this arena.
func (ts *TileSet) Valid(id TileID) bool {
	return id != NoTile && int(id) < len(ts.tiles)
}

// Get returns a copy of the tile record.
// Panics on an unknown handle.
func (ts *TileSet) Get(id TileID) Tile {
	if !ts.Valid(id) {
		panic("engine: unknown tile handle")
	}
	return ts.tiles[id]
}

// Color returns the color of a tile.
func (ts *TileSet) Color(id TileID) Color {
	return ts.Get(id).Color
}

// IsStone reports whether a tile has been petrified.
func (ts *TileSet) IsStone(id TileID) bool {
	return ts.Get(id).Stone
}

// Len returns the number of tiles ever created.
func (ts *TileSet) Len() int {
	return len(ts.tiles) - 1
}

// Petrify turns a tile to stone and marks its prediction wrong.
// The prediction state is terminal: a tile already marked keeps its first state.
func (ts *TileSet) Petrify(id TileID) {
	t := &ts.tiles[ts.mustIndex(id)]
	t.Stone = true
	if t.Prediction == PredictionNone {
		t.Prediction = PredictionWrong
	}
}

// markCorrect records a matched prediction.
func (ts *TileSet) markCorrect(id TileID) {
	t := &ts.tiles[ts.mustIndex(id)]
	if t.Prediction == PredictionNone {
		t.Prediction = PredictionCorrect
	}
}

func (ts *TileSet) mustIndex(id TileID) int {
	if !ts.Valid(id) {
		panic("engine: unknown tile handle")
	}
	return int(id)
}

// Clone returns an independent copy of the arena.
func (ts *TileSet) Clone() *TileSet {
	tiles := make([]Tile, len(ts.tiles))
	copy(tiles, ts.tiles)
	return &TileSet{tiles: tiles}
}
