package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/foresight/internal/engine"
	"github.com/vovakirdan/foresight/internal/registry"
)

var patternsCmd = &cobra.Command{
	Use:   "patterns [id]",
	Short: "List matching pattern presets",
	Long: `Shows the named patterns levels can refer to.
With an id, draws the pattern and its eight symmetries in scan order.

Examples:
  foresight patterns
  foresight patterns l-tromino`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPatterns,
}

func runPatterns(cmd *cobra.Command, args []string) {
	if len(args) == 1 {
		showPattern(args[0])
		return
	}

	fmt.Println("Pattern presets:")
	fmt.Println()
	fmt.Printf("  %-12s  %-5s  %s\n", "ID", "Cells", "Title")
	fmt.Printf("  %-12s  %-5s  %s\n", "--", "-----", "-----")
	for _, p := range registry.List() {
		marker := ""
		if p.ID == cfg.Pattern {
			marker = " (default)"
		}
		fmt.Printf("  %-12s  %-5d  %s%s\n", p.ID, p.Size, p.Title, marker)
	}
}

func showPattern(id string) {
	base, err := registry.Get(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		fmt.Println("Run 'foresight patterns' to see available presets.")
		return
	}

	for i, sym := range engine.Symmetries(base) {
		fmt.Printf("Symmetry %d  [%s]\n", i, sym.Canonical())
		fmt.Println(drawPattern(sym))
		fmt.Println()
	}
}

// drawPattern draws offsets as '#' with the anchor as '@', top row first.
func drawPattern(p engine.Pattern) string {
	minX, maxX, minY, maxY := 0, 0, 0, 0
	for _, o := range p {
		minX, maxX = min(minX, o.DX), max(maxX, o.DX)
		minY, maxY = min(minY, o.DY), max(maxY, o.DY)
	}

	var rows []string
	for y := maxY; y >= minY; y-- {
		var sb strings.Builder
		for x := minX; x <= maxX; x++ {
			switch o := (engine.Offset{DX: x, DY: y}); {
			case o == engine.Zero:
				sb.WriteByte('@')
			case p.Contains(o):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		rows = append(rows, "  "+sb.String())
	}
	return strings.Join(rows, "\n")
}
