package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/foresight/internal/config"
	"github.com/vovakirdan/foresight/internal/levels"
	"github.com/vovakirdan/foresight/internal/storage"
)

var (
	cfg    config.Config
	logger *log.Logger
)

// setup loads configuration and creates the logger. Flags override config.
func setup() {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fatalf("invalid log level %q", flagLogLevel)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "foresight",
		Level:           level,
	})

	cfg, err = config.Load(flagConfig)
	if err != nil {
		fatalf("loading config: %v", err)
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.LevelsDir = flagLevelsDir
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		fatalf("%v", err)
	}
	logger.Debug("configuration loaded", "levels", cfg.LevelsDir, "db", cfg.DBPath, "pattern", cfg.Pattern)
}

// fatalf prints an error and exits.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func levelLoader() *levels.Loader {
	loader := levels.NewLoader(cfg.LevelsDir)
	loader.Logger = logger
	return loader
}

func loadLevel(id string) levels.Level {
	lvl, err := levelLoader().LoadByID(id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'foresight levels' to see available levels.")
		os.Exit(1)
	}
	return lvl
}

func openStore() *storage.Store {
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fatalf("opening run journal: %v", err)
	}
	return store
}

// runSeed picks the seed for a run: flag or config, then the level's own
// seed, then the clock.
func runSeed(lvl levels.Level) uint64 {
	switch {
	case cfg.Seed != 0:
		return cfg.Seed
	case lvl.Seed != 0:
		return lvl.Seed
	default:
		return uint64(time.Now().UnixNano())
	}
}

// useColor reports whether output to stdout should be colored.
func useColor() bool {
	switch cfg.Output.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
