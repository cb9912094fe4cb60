// Package render prints grids and simulation traces as text, with optional
// terminal colors.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/foresight/internal/engine"
)

// Printer renders engine values as text.
type Printer struct {
	theme Theme
}

// NewPrinter creates a printer for w. Without color every style renders as
// plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{theme: DefaultTheme(r)}
}

// Grid renders the grid top row first, one glyph per cell separated by spaces.
// Stone tiles are lowercase.
func (p *Printer) Grid(g *engine.Grid) string {
	var sb strings.Builder
	for y := g.H - 1; y >= 0; y-- {
		for x := 0; x < g.W; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(p.cell(g, engine.C(x, y)))
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func (p *Printer) cell(g *engine.Grid, c engine.Coord) string {
	glyph := string(g.Glyph(c))
	id := g.At(c)
	switch {
	case id == engine.NoTile:
		return p.theme.Empty.Render(glyph)
	case g.Tiles.IsStone(id):
		return p.theme.Stone.Render(glyph)
	default:
		return p.theme.Tiles[g.Tiles.Color(id)].Render(glyph)
	}
}

// Trace renders every step of a simulation with the grid after it.
// initial must be the grid the simulation started from.
func (p *Printer) Trace(initial *engine.Grid, sim *engine.Simulation) string {
	var sb strings.Builder
	frames := sim.Frames(initial)

	sb.WriteString(p.theme.Title.Render("Initial"))
	sb.WriteString("\n")
	sb.WriteString(p.Grid(initial))
	sb.WriteString("\n")

	for i, step := range sim.Steps {
		sb.WriteString("\n")
		sb.WriteString(p.theme.Title.Render(fmt.Sprintf("Step %d", i+1)))
		sb.WriteString(" ")
		sb.WriteString(p.field("score", step.Score))
		sb.WriteString("\n  ")
		sb.WriteString(p.field("matched", len(step.Matched)))
		sb.WriteString(" ")
		sb.WriteString(p.theme.Label.Render(positions(step.Matched)))
		sb.WriteString("\n  ")
		sb.WriteString(p.field("moved", len(step.Moved)))
		sb.WriteString("  ")
		sb.WriteString(p.field("spawned", len(step.Spawned)))
		sb.WriteString("\n")
		sb.WriteString(p.Grid(frames[i]))
		sb.WriteString("\n")
	}

	cb := sim.ClearBoard
	sb.WriteString("\n")
	sb.WriteString(p.theme.Title.Render("Clear board"))
	sb.WriteString(" ")
	sb.WriteString(p.field("rows", cb.ClearedRows))
	sb.WriteString("\n  ")
	sb.WriteString(p.field("cleared", len(cb.Cleared)))
	sb.WriteString("  ")
	sb.WriteString(p.field("moved", len(cb.Moved)))
	sb.WriteString("  ")
	sb.WriteString(p.field("spawned", len(cb.Spawned)))
	if n := len(cb.ExtraneousPredictions); n > 0 {
		sb.WriteString("\n  ")
		sb.WriteString(p.theme.Wrong.Render(fmt.Sprintf("petrified predictions: %d", n)))
	}
	sb.WriteString("\n")
	sb.WriteString(p.Grid(frames[len(frames)-1]))
	sb.WriteString("\n\n")

	sb.WriteString(p.Summary(sim))
	sb.WriteString("\n")
	return sb.String()
}

// Summary renders the one-line outcome of a simulation.
func (p *Printer) Summary(sim *engine.Simulation) string {
	further := "no"
	if sim.FurtherMatchesPossible {
		further = "yes"
	}
	parts := []string{
		p.field("steps", len(sim.Steps)),
		p.field("score", sim.Score()),
		p.field("swaps", sim.SwapsGranted()),
		p.theme.Label.Render("further matches:") + " " + p.theme.Value.Render(further),
	}
	return strings.Join(parts, "  ")
}

// Predictions renders how each predicted tile ended up.
func (p *Printer) Predictions(sim *engine.Simulation, pred []engine.TileID) string {
	if len(pred) == 0 {
		return ""
	}
	correct, wrong := 0, 0
	for _, id := range pred {
		if sim.Tiles.Get(id).Prediction == engine.PredictionCorrect {
			correct++
		} else {
			wrong++
		}
	}
	return p.theme.Correct.Render(fmt.Sprintf("correct: %d", correct)) + "  " +
		p.theme.Wrong.Render(fmt.Sprintf("wrong: %d", wrong))
}

func (p *Printer) field(label string, v int) string {
	return p.theme.Label.Render(label+":") + " " + p.theme.Value.Render(fmt.Sprint(v))
}

func positions(ps []engine.Placement) string {
	coords := make([]string, len(ps))
	for i, pl := range ps {
		coords[i] = pl.Pos.String()
	}
	return strings.Join(coords, " ")
}
