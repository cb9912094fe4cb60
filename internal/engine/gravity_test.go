package engine_test

import (
	"testing"

	"github.com/vovakirdan/foresight/internal/engine"
)

func TestMoveTilesDown(t *testing.T) {
	g := engine.MustParseRows(
		"R.G",
		".B.",
		"Y..",
	)
	red := g.At(engine.C(0, 2))
	blue := g.At(engine.C(1, 1))
	green := g.At(engine.C(2, 2))

	moved := engine.MoveTilesDown(g)

	want := []engine.Placement{
		{Tile: red, Pos: engine.C(0, 1)},
		{Tile: blue, Pos: engine.C(1, 0)},
		{Tile: green, Pos: engine.C(2, 0)},
	}
	if len(moved) != len(want) {
		t.Fatalf("moved %d tiles, want %d: %+v", len(moved), len(want), moved)
	}
	for i := range want {
		if moved[i] != want[i] {
			t.Errorf("moved[%d] = %+v, want %+v", i, moved[i], want[i])
		}
	}

	got := g.Rows()
	wantRows := []string{"...", "R..", "YBG"}
	for i := range wantRows {
		if got[i] != wantRows[i] {
			t.Errorf("row %d = %q, want %q", i, got[i], wantRows[i])
		}
	}
}

func TestMoveTilesDownPreservesColumnOrder(t *testing.T) {
	g := engine.MustParseRows(
		"G",
		".",
		"B",
		".",
		"R",
		".",
	)
	if moved := engine.MoveTilesDown(g); len(moved) != 3 {
		t.Errorf("expected 3 moved tiles, got %d", len(moved))
	}
	got := g.String()
	want := ".\n.\n.\nG\nB\nR"
	if got != want {
		t.Errorf("column after gravity:\n%s\nwant:\n%s", got, want)
	}
}

func TestMoveTilesDownCompactGrid(t *testing.T) {
	g := engine.MustParseRows("RG", "BY")
	if moved := engine.MoveTilesDown(g); len(moved) != 0 {
		t.Errorf("full grid should not move, got %+v", moved)
	}
}

func TestFillWithNewTiles(t *testing.T) {
	g := engine.MustParseRows(
		"...",
		"R..",
		"YB.",
	)
	sim := newSim(t, domino, 99)
	before := g.Tiles.Len()

	var moved []engine.Placement
	spawned := sim.FillWithNewTiles(g, &moved)

	// Column 0 needs 1, column 1 needs 2, column 2 needs 3.
	if len(spawned) != 6 {
		t.Fatalf("spawned %d tiles, want 6", len(spawned))
	}
	if g.Tiles.Len() != before+6 {
		t.Errorf("arena grew by %d, want 6", g.Tiles.Len()-before)
	}
	if g.OccupiedCount() != 9 {
		t.Errorf("grid holds %d tiles after fill, want 9", g.OccupiedCount())
	}
	if len(moved) != len(spawned) {
		t.Fatalf("moved has %d entries, want %d", len(moved), len(spawned))
	}

	for i, s := range spawned {
		if s.Pos.Y < g.H {
			t.Errorf("spawn %d at %v is inside the grid", i, s.Pos)
		}
		settle := moved[i]
		if settle.Tile != s.Tile || settle.Pos.X != s.Pos.X {
			t.Errorf("spawn %d settles as %+v", i, settle)
		}
		if g.At(settle.Pos) != s.Tile {
			t.Errorf("spawn %d not found at settle position %v", i, settle.Pos)
		}
		if c := g.Tiles.Color(s.Tile); int(c) >= engine.DefaultPalette {
			t.Errorf("spawned color %v outside palette", c)
		}
	}
	if sim.RNG().Draws() != 6 {
		t.Errorf("RNG drew %d values, want 6", sim.RNG().Draws())
	}
}

func TestFillWithNewTilesNilMoved(t *testing.T) {
	g := engine.NewGrid(2, 2, nil)
	sim := newSim(t, domino, 1)

	if spawned := sim.FillWithNewTiles(g, nil); len(spawned) != 4 {
		t.Errorf("spawned %d tiles, want 4", len(spawned))
	}
}

func TestClearBottomRows(t *testing.T) {
	g := engine.MustParseRows(
		"RGB",
		"r.Y",
		"PGb",
	)

	cleared := engine.ClearBottomRows(g, 2)

	// The empty cell at (1,1) is skipped; stone is cleared like any tile.
	if len(cleared) != 5 {
		t.Fatalf("cleared %d tiles, want 5: %+v", len(cleared), cleared)
	}
	wantOrder := []engine.Coord{
		engine.C(0, 0), engine.C(0, 1),
		engine.C(1, 0),
		engine.C(2, 0), engine.C(2, 1),
	}
	for i, c := range wantOrder {
		if cleared[i].Pos != c {
			t.Errorf("cleared[%d] at %v, want %v", i, cleared[i].Pos, c)
		}
	}
	if g.OccupiedCount() != 3 {
		t.Errorf("%d tiles left, want 3", g.OccupiedCount())
	}
}

func TestClearBottomRowsZero(t *testing.T) {
	g := engine.MustParseRows("RG")
	if cleared := engine.ClearBottomRows(g, 0); len(cleared) != 0 {
		t.Errorf("cleared %d tiles with zero rows", len(cleared))
	}
}
