package engine_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/foresight/internal/engine"
)

func TestParseRowsRoundTrip(t *testing.T) {
	rows := []string{
		"R.gB",
		"YPGr",
		"BBRY",
	}
	g, err := engine.ParseRows(rows, nil)
	if err != nil {
		t.Fatalf("ParseRows() failed: %v", err)
	}

	if g.W != 4 || g.H != 3 {
		t.Fatalf("size = %dx%d, want 4x3", g.W, g.H)
	}
	if got := g.Tiles.Color(g.At(engine.C(0, 2))); got != engine.ColorRed {
		t.Errorf("top-left = %v, want red", got)
	}
	if !g.Tiles.IsStone(g.At(engine.C(2, 2))) {
		t.Error("lowercase glyph should parse as stone")
	}
	if g.At(engine.C(1, 2)) != engine.NoTile {
		t.Error("'.' should parse as an empty cell")
	}

	got := g.Rows()
	for i := range rows {
		if got[i] != rows[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], rows[i])
		}
	}
}

func TestParseRowsErrors(t *testing.T) {
	tests := []struct {
		name string
		rows []string
	}{
		{"no rows", nil},
		{"ragged", []string{"RG", "R"}},
		{"unknown glyph", []string{"RX"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := engine.ParseRows(tt.rows, nil); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCloneSharesArena(t *testing.T) {
	g := engine.MustParseRows("RG")
	c := g.Clone()

	c.Clear(engine.C(0, 0))
	if g.At(engine.C(0, 0)) == engine.NoTile {
		t.Error("clearing the clone emptied the original")
	}

	g.Tiles.Petrify(g.At(engine.C(1, 0)))
	if !c.Tiles.IsStone(c.At(engine.C(1, 0))) {
		t.Error("tile state should be shared between clones")
	}
}

func TestPetrifyKeepsFirstPredictionState(t *testing.T) {
	ts := engine.NewTileSet()
	id := ts.New(engine.ColorBlue)

	ts.Petrify(id)
	ts.Petrify(id)
	tile := ts.Get(id)
	if !tile.Stone || tile.Prediction != engine.PredictionWrong {
		t.Errorf("tile = %+v", tile)
	}
}

func TestPredictAt(t *testing.T) {
	g := engine.MustParseRows("R.", "GB")

	p, err := engine.PredictAt(g, engine.C(0, 0), engine.C(1, 0), engine.C(0, 0))
	if err != nil {
		t.Fatalf("PredictAt() failed: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if tiles := p.Tiles(); tiles[0] != g.At(engine.C(0, 0)) {
		t.Errorf("Tiles() lost insertion order: %v", tiles)
	}

	if _, err := engine.PredictAt(g, engine.C(1, 1)); err == nil {
		t.Error("expected error for empty cell")
	}
	if _, err := engine.PredictAt(g, engine.C(5, 0)); err == nil {
		t.Error("expected error for out-of-bounds cell")
	}
}

func TestValidateGrid(t *testing.T) {
	tests := []struct {
		name string
		grid func() *engine.Grid
		code string
	}{
		{"nil", func() *engine.Grid { return nil }, "NIL_GRID"},
		{"zero size", func() *engine.Grid { return engine.NewGrid(0, 3, nil) }, "BAD_DIMENSIONS"},
		{"no arena", func() *engine.Grid {
			g := engine.NewGrid(1, 1, nil)
			g.Tiles = nil
			return g
		}, "NO_ARENA"},
		{"unknown tile", func() *engine.Grid {
			g := engine.NewGrid(1, 1, nil)
			g.Set(engine.C(0, 0), 17)
			return g
		}, "UNKNOWN_TILE"},
		{"valid", func() *engine.Grid { return engine.MustParseRows("R.", "GB") }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.ValidateGrid(tt.grid())
			if tt.code == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			var verr engine.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if verr.Code != tt.code {
				t.Errorf("code = %s, want %s", verr.Code, tt.code)
			}
		})
	}
}
