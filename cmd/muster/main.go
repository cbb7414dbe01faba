// Command muster assigns a roster of entities to fixed-capacity units,
// honoring pairing constraints and maximizing captured affinity.
//
// Usage:
//
//	muster solve     -dataset data/dataset.json -units 4,4,3 [flags]
//	muster benchmark -dataset data/dataset.json -units 4,4,3 [flags]
//
// Every command writes a {data, error, meta} JSON envelope to stdout
// and JSONL diagnostics to stderr.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Conventional input locations, used when the matching flag is absent
// and the file exists.
const (
	defaultDataset   = "data/dataset.json"
	defaultRoster    = "config/roster.csv"
	defaultWhitelist = "config/whitelist.csv"
	defaultBlacklist = "config/blacklist.csv"
	defaultScoring   = "config/combat_scoring.json"
	defaultClasses   = "config/entity_classes.csv"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()

		return 2
	}

	runID := uuid.NewString()
	switch args[0] {
	case "solve":
		return runSolve(args[1:], runID)
	case "benchmark":
		return runBenchmark(args[1:], runID)
	case "help", "-h", "--help":
		usage()

		return 0
	default:
		fmt.Fprintf(os.Stderr, "muster: unknown command %q\n\n", args[0])
		usage()

		return 2
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `muster - constraint-aware unit assignment

Commands:
  solve       assign the roster to units and write the solution
  benchmark   sample random baselines and report score statistics

Run "muster <command> -h" for command flags.
`)
}

// newLogger builds the stderr JSONL logger every command shares. An
// unparsable level falls back to info rather than failing the run.
func newLogger(level, runID string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(os.Stderr).Level(lvl).With().
		Timestamp().
		Str("run_id", runID).
		Logger()
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)

	return err == nil && !info.IsDir()
}
