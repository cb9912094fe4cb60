// foresight is a tile-matching prediction puzzle simulator.
//
// Usage:
//
//	foresight levels             - List available levels
//	foresight patterns           - List matching pattern presets
//	foresight simulate <level>   - Run a level and print the trace
//	foresight runs [level]       - Show recorded runs
//	foresight replay <run-id>    - Rerun a recorded run and verify its trace
//	foresight survey <level>     - Simulate many seeds and summarise cascades
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.foresight/configs, ./configs)
//	--seed <value>      - RNG seed for reproducible runs
//	--db <path>         - Run journal path (default: ~/.foresight/runs.db)
//	--levels <dir>      - Level directory (default: ./levels)
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      uint64
	flagDBPath    string
	flagLevelsDir string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "foresight",
	Short: "Foresight - predict which tiles a cascade will clear",
	Long: `Foresight simulates a tile-matching board: matching groups are removed,
tiles fall, new tiles spawn, and the cascade repeats until nothing matches.
Predict which tiles will be cleared before you run it.

Available commands:
  levels    - Show all available levels
  patterns  - Show matching pattern presets
  simulate  - Run a level and print the trace
  runs      - Show recorded runs
  replay    - Rerun a recorded run and verify it
  survey    - Simulate many seeds of a level

Examples:
  foresight levels
  foresight simulate intro --predict "0,0;1,0;0,1"
  foresight simulate intro --seed 42 --json
  foresight runs intro
  foresight replay 3f2a`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setup()
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = level or config seed, else time based)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run journal database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Level directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	// Add subcommands
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(surveyCmd)
}
