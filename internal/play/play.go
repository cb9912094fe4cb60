// Package play runs a level end to end: it builds the starting grid from the
// run seed, applies the player's swaps and prediction, simulates, and exports
// the trace. The same inputs always produce the same trace digest, which is
// what replay verification relies on.
package play

import (
	"fmt"

	"github.com/vovakirdan/foresight/internal/engine"
	"github.com/vovakirdan/foresight/internal/export"
	"github.com/vovakirdan/foresight/internal/levels"
	"github.com/vovakirdan/foresight/internal/storage"
)

// Request describes one run.
type Request struct {
	Level      levels.Level
	Preset     string // Pattern used when the level names none
	Seed       uint64
	Params     engine.Params
	Prediction []engine.Coord
	Swaps      []Swap
}

// Result is the outcome of a run.
type Result struct {
	Request     Request
	Initial     *engine.Grid // Grid after swaps, with a snapshot of the arena taken before simulating
	Pattern     engine.Pattern
	PatternName string
	Palette     int
	Prediction  *engine.Prediction // nil when no prediction was made
	Sim         *engine.Simulation
	Document    export.Document
	Digest      string
}

// Run plays a level once.
func Run(req Request) (*Result, error) {
	pattern, err := req.Level.ResolvePattern(req.Preset)
	if err != nil {
		return nil, err
	}

	params := req.Params
	if req.Level.Palette > 0 {
		params.Palette = req.Level.Palette
	}
	if params.Palette <= 0 {
		params.Palette = engine.DefaultPalette
	}

	// Generation and playback share one random source.
	rng := engine.NewRNG(req.Seed)
	grid, err := req.Level.ToGrid(rng, params.Palette)
	if err != nil {
		return nil, err
	}

	for _, sw := range req.Swaps {
		if err := engine.Swap(grid, sw.A, sw.B); err != nil {
			return nil, fmt.Errorf("swap %v with %v: %w", sw.A, sw.B, err)
		}
	}

	var pred *engine.Prediction
	if len(req.Prediction) > 0 {
		pred, err = engine.PredictAt(grid, req.Prediction...)
		if err != nil {
			return nil, err
		}
	}

	sim, err := engine.NewSimulator(pattern, rng, params)
	if err != nil {
		return nil, err
	}

	initial := grid.Clone()
	initial.Tiles = grid.Tiles.Clone()

	trace, err := sim.Simulate(grid, pred)
	if err != nil {
		return nil, fmt.Errorf("level %s, seed %d: %w", req.Level.ID, req.Seed, err)
	}

	doc := export.Build(export.Run{
		LevelID: req.Level.ID,
		Pattern: pattern,
		Seed:    req.Seed,
		Initial: initial,
	}, trace)
	digest, err := export.Digest(doc)
	if err != nil {
		return nil, err
	}

	return &Result{
		Request:     req,
		Initial:     initial,
		Pattern:     pattern,
		PatternName: req.Level.PatternName(req.Preset),
		Palette:     params.Palette,
		Prediction:  pred,
		Sim:         trace,
		Document:    doc,
		Digest:      digest,
	}, nil
}

// JournalEntry converts the result into a run journal record.
func (r *Result) JournalEntry() storage.Run {
	return storage.Run{
		LevelID:        r.Request.Level.ID,
		Pattern:        r.PatternName,
		Seed:           r.Request.Seed,
		Palette:        r.Palette,
		Prediction:     FormatCoords(r.Request.Prediction),
		Swaps:          FormatSwaps(r.Request.Swaps),
		Steps:          len(r.Sim.Steps),
		ClearedRows:    r.Sim.ClearBoard.ClearedRows,
		Extraneous:     len(r.Sim.ClearBoard.ExtraneousPredictions),
		Score:          r.Sim.Score(),
		SwapsGranted:   r.Sim.SwapsGranted(),
		FurtherMatches: r.Sim.FurtherMatchesPossible,
		Digest:         r.Digest,
	}
}

// Replay reruns a recorded run against its level and reports whether the
// trace digest matches the recorded one.
func Replay(run storage.Run, level levels.Level, maxSteps int) (*Result, bool, error) {
	if run.LevelID != level.ID {
		return nil, false, fmt.Errorf("run %s belongs to level %s, not %s", run.ID, run.LevelID, level.ID)
	}
	pred, err := ParseCoords(run.Prediction)
	if err != nil {
		return nil, false, fmt.Errorf("run %s: %w", run.ID, err)
	}
	swaps, err := ParseSwaps(run.Swaps)
	if err != nil {
		return nil, false, fmt.Errorf("run %s: %w", run.ID, err)
	}

	preset := run.Pattern
	if preset == "custom" {
		preset = ""
	}
	res, err := Run(Request{
		Level:      level,
		Preset:     preset,
		Seed:       run.Seed,
		Params:     engine.Params{Palette: run.Palette, MaxSteps: maxSteps},
		Prediction: pred,
		Swaps:      swaps,
	})
	if err != nil {
		return nil, false, err
	}
	res.Document.RunID = run.ID
	return res, res.Digest == run.Digest, nil
}
