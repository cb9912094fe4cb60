package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows every level found in the level directory.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	lvls, err := levelLoader().LoadAll()
	if err != nil {
		fatalf("loading levels: %v", err)
	}

	if len(lvls) == 0 {
		fmt.Printf("No levels found in %s.\n", cfg.LevelsDir)
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, l := range lvls {
		if len(l.ID) > maxIDLen {
			maxIDLen = len(l.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %-6s  %-12s  %s\n", maxIDLen, "ID", "Size", "Pattern", "Name")
	fmt.Printf("  %-*s  %-6s  %-12s  %s\n", maxIDLen, "--", "----", "-------", "----")

	// Print levels
	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-6s  %-12s  %s\n", maxIDLen, l.ID, size, l.PatternName(cfg.Pattern), l.Name)
	}

	fmt.Println()
	fmt.Println("Run 'foresight simulate <id>' to play a level.")
}
