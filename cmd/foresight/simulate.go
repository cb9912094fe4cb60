package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/foresight/internal/config"
	"github.com/vovakirdan/foresight/internal/export"
	"github.com/vovakirdan/foresight/internal/play"
	"github.com/vovakirdan/foresight/internal/render"
)

var (
	flagPredict    string
	flagSwap       string
	flagJSON       bool
	flagNoSave     bool
	flagDifficulty string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate <level>",
	Short: "Run a level and print the trace",
	Long: `Build the level's starting grid from the seed, apply swaps, then run the
cascade until nothing matches. Predicted tiles that never match are
petrified, and one bottom row is cleared per step after the first.

Coordinates are x,y with 0,0 at the bottom left.

Examples:
  foresight simulate intro
  foresight simulate intro --predict "0,0;1,0;0,1"
  foresight simulate intro --swap "2,0:2,1" --predict "2,0;2,1;3,1"
  foresight simulate intro --seed 42 --json > trace.json
  foresight simulate intro --difficulty easy --no-save`,
	Args: cobra.ExactArgs(1),
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagPredict, "predict", "", "Predicted tiles as \"x,y;x,y\"")
	simulateCmd.Flags().StringVar(&flagSwap, "swap", "", "Swaps applied before the run as \"x,y:x,y;...\"")
	simulateCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the trace as JSON")
	simulateCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the journal")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Palette preset: easy, normal or hard")
}

func runSimulate(cmd *cobra.Command, args []string) {
	lvl := loadLevel(args[0])

	if flagDifficulty != "" {
		if err := config.ApplyDifficulty(&cfg, config.Difficulty(flagDifficulty)); err != nil {
			fatalf("%v", err)
		}
	}

	pred, err := play.ParseCoords(flagPredict)
	if err != nil {
		fatalf("--predict: %v", err)
	}
	swaps, err := play.ParseSwaps(flagSwap)
	if err != nil {
		fatalf("--swap: %v", err)
	}

	seed := runSeed(lvl)
	logger.Info("simulating", "level", lvl.ID, "seed", seed, "swaps", len(swaps), "predicted", len(pred))

	res, err := play.Run(play.Request{
		Level:      lvl,
		Preset:     cfg.Pattern,
		Seed:       seed,
		Params:     cfg.Params(),
		Prediction: pred,
		Swaps:      swaps,
	})
	if err != nil {
		fatalf("%v", err)
	}

	if !flagNoSave {
		store := openStore()
		id, err := store.SaveRun(res.JournalEntry())
		store.Close()
		if err != nil {
			logger.Warn("run not recorded", "error", err)
		} else {
			res.Document.RunID = id
			logger.Info("run recorded", "id", id)
		}
	}

	if flagJSON || cfg.Output.Format == "json" {
		data, err := export.Marshal(res.Document)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Println(string(data))
		return
	}

	printResult(res)
}

// printResult writes the text trace of a run to stdout.
func printResult(res *play.Result) {
	p := render.NewPrinter(os.Stdout, useColor())

	title := res.Request.Level.ID
	if res.Request.Level.Name != "" {
		title = fmt.Sprintf("%s (%s)", res.Request.Level.Name, res.Request.Level.ID)
	}
	fmt.Printf("%s  pattern %s  seed %d  palette %d\n\n", title, res.PatternName, res.Request.Seed, res.Palette)

	fmt.Print(p.Trace(res.Initial, res.Sim))
	if res.Prediction != nil {
		fmt.Println(p.Predictions(res.Sim, res.Prediction.Tiles()))
	}
	if res.Document.RunID != "" {
		fmt.Printf("\nRun %s\n", res.Document.RunID)
	}
}
