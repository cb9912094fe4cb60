// Package engine implements the deterministic match simulation behind the
// puzzle: symmetry expansion of a matching pattern, match scanning, gravity,
// tile spawning, prediction tracking and the closing row clear.
// This package is UI-agnostic and performs no I/O.
package engine

import (
	"errors"
	"fmt"
)

// ErrStepLimit is returned when matching keeps cascading past Params.MaxSteps.
var ErrStepLimit = errors.New("engine: simulation exceeded step limit")

// Params configures a Simulator.
type Params struct {
	Palette  int // Number of colors new tiles are drawn from
	MaxSteps int // Upper bound on match iterations per Simulate call
}

// DefaultParams returns sensible defaults.
func DefaultParams() Params {
	return Params{
		Palette:  DefaultPalette,
		MaxSteps: 1000,
	}
}

// Simulator runs match simulations for one matching pattern.
// A Simulator owns its RNG and is not safe for concurrent use.
type Simulator struct {
	symmetries [SymmetryCount]Pattern
	rng        *RNG
	palette    int
	maxSteps   int
}

// NewSimulator creates a simulator for the given base pattern.
func NewSimulator(base Pattern, rng *RNG, p Params) (*Simulator, error) {
	if !base.Contains(Zero) {
		return nil, fmt.Errorf("engine: pattern %v lacks the anchor offset (0,0)", base)
	}
	if rng == nil {
		return nil, errors.New("engine: simulator needs a random source")
	}
	if p.Palette > int(ColorCount) {
		return nil, fmt.Errorf("engine: palette %d exceeds %d colors", p.Palette, ColorCount)
	}
	if p.Palette <= 0 {
		p.Palette = DefaultPalette
	}
	if p.MaxSteps <= 0 {
		p.MaxSteps = DefaultParams().MaxSteps
	}
	return &Simulator{
		symmetries: Symmetries(base),
		rng:        rng,
		palette:    p.Palette,
		maxSteps:   p.MaxSteps,
	}, nil
}

// Symmetries returns the eight pattern variants in scan order.
func (s *Simulator) Symmetries() [SymmetryCount]Pattern {
	return s.symmetries
}

// RNG returns the simulator's random source.
func (s *Simulator) RNG() *RNG {
	return s.rng
}

// Simulate runs the match loop on a copy of initial until nothing matches,
// petrifies predicted tiles that never matched, then clears one bottom row per
// step beyond the first.
//
// pred may be nil to disable predictions. It is not modified; the tile states
// it leads to (correct marks, petrification) are written to the shared arena.
// On error nothing has been modified.
func (s *Simulator) Simulate(initial *Grid, pred *Prediction) (*Simulation, error) {
	if err := ValidateGrid(initial); err != nil {
		return nil, err
	}
	if err := ValidatePrediction(initial, pred); err != nil {
		return nil, err
	}

	// Dry-run first so a runaway cascade leaves no trace in the arena or RNG.
	// Predicted runs always terminate: every step shrinks the prediction.
	if pred == nil {
		if err := s.checkTerminates(initial); err != nil {
			return nil, err
		}
	}

	working := initial.Clone()
	remaining := pred.Clone()
	steps := make([]SimulationStep, 0)

	for {
		matched := s.RemoveMatchedTiles(working, remaining)
		if len(matched) == 0 {
			break
		}
		moved := MoveTilesDown(working)
		spawned := s.FillWithNewTiles(working, &moved)

		steps = append(steps, SimulationStep{
			Matched: matched,
			Moved:   moved,
			Spawned: spawned,
			Score:   len(steps) + 1,
		})
	}

	clearedRows := clamp(len(steps)-1, 0, working.H)

	extraneous := remaining.Tiles()
	for _, id := range extraneous {
		working.Tiles.Petrify(id)
	}

	cleared := ClearBottomRows(working, clearedRows)
	moved := MoveTilesDown(working)
	spawned := s.FillWithNewTiles(working, &moved)

	if extraneous == nil {
		extraneous = []TileID{}
	}
	return &Simulation{
		Steps: steps,
		ClearBoard: ClearBoardStep{
			ClearedRows:           clearedRows,
			Cleared:               cleared,
			Moved:                 moved,
			Spawned:               spawned,
			ExtraneousPredictions: extraneous,
		},
		Final:                  working,
		Tiles:                  working.Tiles,
		FurtherMatchesPossible: s.HasMatches(working),
	}, nil
}

// HasMatches reports whether any match exists on the grid, ignoring predictions.
func (s *Simulator) HasMatches(g *Grid) bool {
	for x := 0; x < g.W; x++ {
		for y := 0; y < g.H; y++ {
			if _, ok := s.MatchAt(g, C(x, y), nil); ok {
				return true
			}
		}
	}
	return false
}

// checkTerminates replays the match loop on a scratch arena with a cloned RNG
// and fails if it does not settle within the step limit.
func (s *Simulator) checkTerminates(initial *Grid) error {
	scratch := initial.Clone()
	scratch.Tiles = initial.Tiles.Clone()
	probe := *s
	probe.rng = s.rng.Clone()

	for i := 0; i < s.maxSteps; i++ {
		if len(probe.RemoveMatchedTiles(scratch, nil)) == 0 {
			return nil
		}
		MoveTilesDown(scratch)
		probe.FillWithNewTiles(scratch, nil)
	}
	return fmt.Errorf("%w (%d)", ErrStepLimit, s.maxSteps)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
