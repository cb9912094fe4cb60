package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/foresight/internal/engine"
)

func TestGridPlain(t *testing.T) {
	g := engine.MustParseRows(
		"R.g",
		"YBP",
	)
	p := NewPrinter(&bytes.Buffer{}, false)

	want := "R . g\nY B P"
	if got := p.Grid(g); got != want {
		t.Errorf("Grid() = %q, want %q", got, want)
	}
}

func TestGridColor(t *testing.T) {
	g := engine.MustParseRows("RG")
	p := NewPrinter(&bytes.Buffer{}, true)

	got := p.Grid(g)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI escapes in %q", got)
	}
	if !strings.Contains(got, "R") || !strings.Contains(got, "G") {
		t.Errorf("glyphs missing from %q", got)
	}
}

func TestTrace(t *testing.T) {
	g := engine.MustParseRows(
		"R",
		"G",
		"G",
		"R",
	)
	pred, err := engine.PredictAt(g, engine.C(0, 0), engine.C(0, 1), engine.C(0, 2), engine.C(0, 3))
	if err != nil {
		t.Fatalf("PredictAt() failed: %v", err)
	}
	domino := engine.MustPattern(engine.Zero, engine.Offset{DX: 1})
	sim, err := engine.NewSimulator(domino, engine.NewRNG(3), engine.DefaultParams())
	if err != nil {
		t.Fatalf("NewSimulator() failed: %v", err)
	}
	result, err := sim.Simulate(g, pred)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}

	p := NewPrinter(&bytes.Buffer{}, false)
	out := p.Trace(g, result)

	for _, want := range []string{
		"Initial\nR\nG\nG\nR\n",
		"Step 1 score: 1",
		"matched: 2 (0,1) (0,2)",
		"Step 2 score: 2",
		"Clear board rows: 1",
		"steps: 2  score: 2  swaps: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}

	if got := p.Predictions(result, pred.Tiles()); got != "correct: 4  wrong: 0" {
		t.Errorf("Predictions() = %q", got)
	}
}
