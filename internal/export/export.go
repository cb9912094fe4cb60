// Package export converts a simulation trace into a JSON document that an
// external renderer can replay without access to the engine.
package export

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	jsoniter "github.com/json-iterator/go"

	"github.com/vovakirdan/foresight/internal/engine"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the exported form of one run.
type Document struct {
	RunID                  string     `json:"run_id,omitempty"`
	LevelID                string     `json:"level_id"`
	Pattern                [][2]int   `json:"pattern"`
	Seed                   uint64     `json:"seed"`
	Width                  int        `json:"width"`
	Height                 int        `json:"height"`
	Initial                []string   `json:"initial"` // Top row first
	Tiles                  []Tile     `json:"tiles"`
	Steps                  []Step     `json:"steps"`
	ClearBoard             ClearBoard `json:"clear_board"`
	Final                  []string   `json:"final"`
	Score                  int        `json:"score"`
	SwapsGranted           int        `json:"swaps_granted"`
	FurtherMatchesPossible bool       `json:"further_matches_possible"`
}

// Tile is one arena entry, in its state after the run.
type Tile struct {
	ID         engine.TileID `json:"id"`
	Color      string        `json:"color"`
	Stone      bool          `json:"stone,omitempty"`
	Prediction string        `json:"prediction,omitempty"`
}

// Placement is a tile handle at a position.
type Placement struct {
	Tile engine.TileID `json:"tile"`
	X    int           `json:"x"`
	Y    int           `json:"y"`
}

// Step mirrors engine.SimulationStep.
type Step struct {
	Matched []Placement `json:"matched"`
	Moved   []Placement `json:"moved"`
	Spawned []Placement `json:"spawned"`
	Score   int         `json:"score"`
}

// ClearBoard mirrors engine.ClearBoardStep.
type ClearBoard struct {
	ClearedRows           int             `json:"cleared_rows"`
	Cleared               []Placement     `json:"cleared"`
	Moved                 []Placement     `json:"moved"`
	Spawned               []Placement     `json:"spawned"`
	ExtraneousPredictions []engine.TileID `json:"extraneous_predictions"`
}

// Run bundles what Build needs besides the trace.
type Run struct {
	ID      string
	LevelID string
	Pattern engine.Pattern
	Seed    uint64
	Initial *engine.Grid
}

// Build converts a simulation into a Document.
func Build(run Run, sim *engine.Simulation) Document {
	doc := Document{
		RunID:                  run.ID,
		LevelID:                run.LevelID,
		Seed:                   run.Seed,
		Width:                  sim.Final.W,
		Height:                 sim.Final.H,
		Final:                  sim.Final.Rows(),
		Score:                  sim.Score(),
		SwapsGranted:           sim.SwapsGranted(),
		FurtherMatchesPossible: sim.FurtherMatchesPossible,
		Pattern:                make([][2]int, 0, len(run.Pattern)),
		Tiles:                  make([]Tile, 0, sim.Tiles.Len()),
		Steps:                  make([]Step, 0, len(sim.Steps)),
	}
	if run.Initial != nil {
		doc.Initial = run.Initial.Rows()
	}

	for _, o := range run.Pattern {
		doc.Pattern = append(doc.Pattern, [2]int{o.DX, o.DY})
	}

	for id := engine.TileID(1); int(id) <= sim.Tiles.Len(); id++ {
		t := sim.Tiles.Get(id)
		tile := Tile{ID: id, Color: t.Color.String(), Stone: t.Stone}
		if t.Prediction != engine.PredictionNone {
			tile.Prediction = t.Prediction.String()
		}
		doc.Tiles = append(doc.Tiles, tile)
	}

	for _, s := range sim.Steps {
		doc.Steps = append(doc.Steps, Step{
			Matched: placements(s.Matched),
			Moved:   placements(s.Moved),
			Spawned: placements(s.Spawned),
			Score:   s.Score,
		})
	}

	cb := sim.ClearBoard
	doc.ClearBoard = ClearBoard{
		ClearedRows:           cb.ClearedRows,
		Cleared:               placements(cb.Cleared),
		Moved:                 placements(cb.Moved),
		Spawned:               placements(cb.Spawned),
		ExtraneousPredictions: cb.ExtraneousPredictions,
	}
	return doc
}

// Marshal encodes a document as indented JSON.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: cannot encode trace: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a document produced by Marshal.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("export: cannot decode trace: %w", err)
	}
	return doc, nil
}

// Digest fingerprints the trace. The run ID is left out so a replay of a
// recorded run digests the same as the original.
func Digest(doc Document) (string, error) {
	doc.RunID = ""
	data, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("export: cannot encode trace: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}

// placements never returns nil so empty lists encode as [].
func placements(ps []engine.Placement) []Placement {
	out := make([]Placement, 0, len(ps))
	for _, p := range ps {
		out = append(out, Placement{Tile: p.Tile, X: p.Pos.X, Y: p.Pos.Y})
	}
	return out
}
