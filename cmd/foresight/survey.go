package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/foresight/internal/play"
)

var (
	flagSurveyRuns    int
	flagSurveyWorkers int
)

var surveyCmd = &cobra.Command{
	Use:   "survey <level>",
	Short: "Simulate many seeds of a level and summarise the cascades",
	Long: `Run the level without prediction for consecutive seeds starting at --seed
(or 1) and report how many steps the cascades last. Nothing is recorded.

Examples:
  foresight survey intro
  foresight survey intro --runs 1000 --workers 8 --seed 500`,
	Args: cobra.ExactArgs(1),
	Run:  runSurvey,
}

func init() {
	surveyCmd.Flags().IntVar(&flagSurveyRuns, "runs", 100, "Number of seeds to simulate")
	surveyCmd.Flags().IntVar(&flagSurveyWorkers, "workers", 0, "Concurrent simulations (0 = number of CPUs)")
}

func runSurvey(cmd *cobra.Command, args []string) {
	lvl := loadLevel(args[0])

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("surveying", "level", lvl.ID, "runs", flagSurveyRuns, "from_seed", seed)
	report, err := play.Survey(ctx, play.Request{
		Level:  lvl,
		Preset: cfg.Pattern,
		Seed:   seed,
		Params: cfg.Params(),
	}, play.SurveyOptions{Runs: flagSurveyRuns, Workers: flagSurveyWorkers})
	if err != nil {
		fatalf("%v", err)
	}

	fmt.Printf("Survey - %s, seeds %d..%d\n", lvl.ID, seed, seed+uint64(report.Runs)-1)
	fmt.Println()
	fmt.Printf("  Steps: min %d  mean %.2f  max %d (seed %d)\n",
		report.MinSteps, report.MeanSteps, report.MaxSteps, report.BestSeed)
	fmt.Printf("  Further matches left: %d of %d\n", report.FurtherMatches, report.Runs)
	if report.StepLimitHits > 0 {
		fmt.Printf("  Hit the step limit: %d\n", report.StepLimitHits)
	}
	fmt.Println()

	steps := make([]int, 0, len(report.Histogram))
	for s := range report.Histogram {
		steps = append(steps, s)
	}
	sort.Ints(steps)

	fmt.Printf("  %-5s  %s\n", "Steps", "Runs")
	for _, s := range steps {
		fmt.Printf("  %-5d  %d\n", s, report.Histogram[s])
	}
}
