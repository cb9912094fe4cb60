package main

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/foresight/internal/storage"
)

var (
	flagRunsLimit int
	flagRunsClear bool
)

var runsCmd = &cobra.Command{
	Use:   "runs [level]",
	Short: "Show recorded runs",
	Long: `Display the most recent runs from the journal, optionally for one level.
With a level, also shows aggregated statistics.

Examples:
  foresight runs
  foresight runs intro --limit 5
  foresight runs intro --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum number of runs to show")
	runsCmd.Flags().BoolVar(&flagRunsClear, "clear", false, "Delete the recorded runs instead of listing them")
}

func runRuns(cmd *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
	}

	store := openStore()
	defer store.Close()

	if flagRunsClear {
		n, err := store.ClearRuns(levelID)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Deleted %d runs.\n", n)
		return
	}

	var (
		runs []storage.Run
		err  error
	)
	if levelID == "" {
		runs, err = store.RecentRuns(flagRunsLimit)
	} else {
		runs, err = store.RunsForLevel(levelID, flagRunsLimit)
	}
	if err != nil {
		fatalf("retrieving runs: %v", err)
	}

	if levelID == "" {
		fmt.Println("Recent runs")
	} else {
		fmt.Printf("Recent runs - %s\n", levelID)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'foresight simulate <level>' to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-8s  %-12s  %-5s  %-5s  %-9s  %s\n", "Run", "Level", "Steps", "Score", "Predicted", "When")
	fmt.Printf("  %-8s  %-12s  %-5s  %-5s  %-9s  %s\n", "---", "-----", "-----", "-----", "---------", "----")

	for _, r := range runs {
		predicted := "-"
		if r.Prediction != "" {
			predicted = "yes"
			if r.Extraneous > 0 {
				predicted = fmt.Sprintf("%d wrong", r.Extraneous)
			}
		}
		fmt.Printf("  %-8s  %-12s  %-5d  %-5d  %-9s  %s\n",
			shortID(r.ID), r.LevelID, r.Steps, r.Score, predicted, humanize.Time(r.CreatedAt))
	}

	if levelID != "" {
		stats, err := store.LevelStats(levelID)
		if err == nil && stats.RunsCount > 0 {
			fmt.Println()
			fmt.Printf("Runs: %d  Longest cascade: %d  Average: %.1f  Perfect predictions: %d\n",
				stats.RunsCount, stats.MaxSteps, stats.AvgSteps, stats.PerfectRuns)
		}
	}
}

// shortID returns the first block of a run UUID, which replay accepts.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
