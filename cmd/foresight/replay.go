package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/foresight/internal/export"
	"github.com/vovakirdan/foresight/internal/play"
)

var flagReplayJSON bool

var replayCmd = &cobra.Command{
	Use:   "replay <run-id>",
	Short: "Rerun a recorded run and verify its trace",
	Long: `Look up a run in the journal, rebuild its level from the recorded seed,
apply the same swaps and prediction, and check that the new trace has the
same digest. Exits with status 1 when the traces differ.

A unique prefix of the run ID is enough.

Examples:
  foresight replay 3f2a9c1e
  foresight replay 3f2a --json`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&flagReplayJSON, "json", false, "Print the replayed trace as JSON")
}

func runReplay(cmd *cobra.Command, args []string) {
	store := openStore()
	run, err := store.RunByID(args[0])
	store.Close()
	if err != nil {
		fatalf("%v", err)
	}
	if run == nil {
		fmt.Fprintf(os.Stderr, "Error: no run matches %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'foresight runs' to see recorded runs.")
		os.Exit(1)
	}

	lvl := loadLevel(run.LevelID)
	res, ok, err := play.Replay(*run, lvl, cfg.MaxSteps)
	if err != nil {
		fatalf("%v", err)
	}
	logger.Debug("replayed", "run", run.ID, "recorded", run.Digest, "replayed", res.Digest)

	if flagReplayJSON {
		data, err := export.Marshal(res.Document)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Println(string(data))
	} else {
		printResult(res)
	}

	if !ok {
		fmt.Fprintf(os.Stderr, "Mismatch: run %s recorded digest %s, replay produced %s\n", run.ID, run.Digest, res.Digest)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Verified: run %s reproduces digest %s\n", run.ID, res.Digest)
}
