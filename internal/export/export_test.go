package export

import (
	"strings"
	"testing"

	"github.com/vovakirdan/foresight/internal/engine"
)

func simulate(t *testing.T) (Run, *engine.Simulation) {
	t.Helper()
	g := engine.MustParseRows(
		"R",
		"G",
		"G",
		"R",
	)
	pattern := engine.MustPattern(engine.Zero, engine.Offset{DX: 1})
	pred, err := engine.PredictAt(g, engine.C(0, 1), engine.C(0, 2))
	if err != nil {
		t.Fatalf("PredictAt() failed: %v", err)
	}
	sim, err := engine.NewSimulator(pattern, engine.NewRNG(8), engine.DefaultParams())
	if err != nil {
		t.Fatalf("NewSimulator() failed: %v", err)
	}
	initial := g.Clone()
	result, err := sim.Simulate(g, pred)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	return Run{ID: "run-1", LevelID: "cascade", Pattern: pattern, Seed: 8, Initial: initial}, result
}

func TestBuild(t *testing.T) {
	run, sim := simulate(t)
	doc := Build(run, sim)

	if doc.LevelID != "cascade" || doc.Seed != 8 || doc.RunID != "run-1" {
		t.Errorf("header = %+v", doc)
	}
	if doc.Width != 1 || doc.Height != 4 {
		t.Errorf("size = %dx%d, want 1x4", doc.Width, doc.Height)
	}
	if len(doc.Pattern) != 2 {
		t.Errorf("pattern has %d offsets, want 2", len(doc.Pattern))
	}
	if len(doc.Tiles) != sim.Tiles.Len() {
		t.Errorf("tile table has %d entries, want %d", len(doc.Tiles), sim.Tiles.Len())
	}
	if len(doc.Steps) != len(sim.Steps) {
		t.Fatalf("exported %d steps, want %d", len(doc.Steps), len(sim.Steps))
	}
	if strings.Join(doc.Initial, "") != "RGGR" {
		t.Errorf("initial = %v", doc.Initial)
	}

	correct := 0
	for _, tile := range doc.Tiles {
		if tile.Prediction == "correct" {
			correct++
		}
	}
	if correct != 2 {
		t.Errorf("expected 2 correctly predicted tiles, got %d", correct)
	}
}

func TestMarshalShape(t *testing.T) {
	run, sim := simulate(t)
	data, err := Marshal(Build(run, sim))
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}

	out := string(data)
	for _, key := range []string{
		`"level_id": "cascade"`,
		`"clear_board"`,
		`"extraneous_predictions": []`,
		`"further_matches_possible"`,
		`"spawned"`,
	} {
		if !strings.Contains(out, key) {
			t.Errorf("output missing %s", key)
		}
	}

	doc, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() failed: %v", err)
	}
	if len(doc.Steps) != len(sim.Steps) || doc.Score != sim.Score() {
		t.Errorf("decoded document lost data: %+v", doc)
	}
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); err == nil {
		t.Error("expected error")
	}
}

func TestDigestIgnoresRunID(t *testing.T) {
	run, sim := simulate(t)
	doc := Build(run, sim)

	a, err := Digest(doc)
	if err != nil {
		t.Fatalf("Digest() failed: %v", err)
	}
	doc.RunID = "another"
	b, _ := Digest(doc)
	if a != b {
		t.Errorf("digest changed with run id: %s vs %s", a, b)
	}
	if len(a) != 16 {
		t.Errorf("digest %q is not 16 hex digits", a)
	}

	doc.Score++
	if c, _ := Digest(doc); c == a {
		t.Error("digest did not change with the trace")
	}
}
