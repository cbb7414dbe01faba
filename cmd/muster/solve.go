package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/muster/combat"
	"github.com/katalvlaran/muster/core"
	"github.com/katalvlaran/muster/solver"
)

// solutionPayload is the data half of the solve envelope.
type solutionPayload struct {
	Units          [][]string      `json:"units"`
	UnitAffinity   []int           `json:"unit_affinity"`
	TotalAffinity  int             `json:"total_affinity"`
	Unassigned     []string        `json:"unassigned"`
	Seed           int64           `json:"seed"`
	Restarts       int             `json:"restarts"`
	SwapIterations int             `json:"swap_iterations"`
	Combat         *combat.Summary `json:"combat,omitempty"`
}

func runSolve(args []string, runID string) int {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	var (
		datasetPath = fs.String("dataset", "", "dataset JSON path (default "+defaultDataset+")")
		rosterPath  = fs.String("roster", "", "roster CSV path (default "+defaultRoster+" when present)")
		unitsArg    = fs.String("units", "", "comma-separated unit sizes, e.g. 4,4,3")
		unitsFile   = fs.String("units-file", "", "JSON file with the unit size list")
		whitelist   = fs.String("whitelist", "", "required pairs CSV (default "+defaultWhitelist+" when present)")
		blacklist   = fs.String("blacklist", "", "forbidden pairs CSV (default "+defaultBlacklist+" when present)")
		scoringPath = fs.String("scoring", "", "combat scoring JSON (default "+defaultScoring+" when present)")
		classesPath = fs.String("classes", "", "class overrides CSV (default "+defaultClasses+" when present)")
		preset      = fs.String("preset", "", "scoring preset: "+strings.Join(combat.PresetNames(), ", "))
		seed        = fs.Int64("seed", 0, "random seed for deterministic output")
		restarts    = fs.Int("restarts", solver.DefaultRestarts, "greedy restart attempts")
		swaps       = fs.Int("swap-iterations", solver.DefaultSwapIterations, "swap-improvement pass budget")
		parallelism = fs.Int("parallelism", 1, "concurrent restart workers")
		minCombat   = fs.Float64("min-combat-score", math.NaN(), "minimum combat composite required")
		outPath     = fs.String("out", "out/solution.json", "solution JSON path")
		summaryPath = fs.String("summary", "out/summary.txt", "text summary path")
		logLevel    = fs.String("log-level", "info", "stderr log level")
	)
	_ = fs.Parse(args)
	log := newLogger(*logLevel, runID)

	in, err := loadProblemInputs(*datasetPath, *rosterPath, *unitsArg, *unitsFile, *whitelist, *blacklist)
	if err != nil {
		return fail(log, runID, "load", err)
	}
	ctx, err := loadCombatContext(in.Dataset, *scoringPath, *classesPath, *preset)
	if err != nil {
		return fail(log, runID, "load", err)
	}
	log.Info().
		Str("event", "data_loaded").
		Str("phase", "load").
		Int("roster", len(in.Roster)).
		Int("units", len(in.Capacities)).
		Int("affinity_edges", len(in.Affinity)).
		Bool("combat", ctx != nil).
		Msg("inputs loaded")

	opts := []solver.Option{
		solver.WithSeed(*seed),
		solver.WithRestarts(*restarts),
		solver.WithSwapIterations(*swaps),
		solver.WithParallelism(*parallelism),
	}
	if ctx != nil {
		opts = append(opts, solver.WithCombatContext(ctx))
	}
	if !math.IsNaN(*minCombat) {
		if ctx == nil {
			return fail(log, runID, "validate",
				fmt.Errorf("%w: -min-combat-score requires class data in the dataset", solver.ErrInvalidOptions))
		}
		opts = append(opts, solver.WithMinCombatScore(*minCombat))
	}

	log.Info().Str("event", "solve_started").Str("phase", "solve").Msg("solving")
	res, err := solver.Solve(in.Problem(), opts...)
	if err != nil {
		return fail(log, runID, "solve", err)
	}
	log.Info().
		Str("event", "solve_completed").
		Str("phase", "solve").
		Int("total_affinity", res.TotalAffinity).
		Int("unassigned", len(res.Grouping.Unassigned)).
		Msg("solve complete")

	payload := solutionPayload{
		Units:          res.Grouping.Units,
		UnitAffinity:   res.UnitAffinity,
		TotalAffinity:  res.TotalAffinity,
		Unassigned:     res.Grouping.Unassigned,
		Seed:           res.Seed,
		Restarts:       res.Restarts,
		SwapIterations: res.SwapIterations,
		Combat:         res.Combat,
	}
	env := successEnvelope(runID, payload)

	if err = writeFileEnvelope(*outPath, env); err != nil {
		return fail(log, runID, "write", err)
	}
	if err = writeTextFile(*summaryPath, renderSummary(res, in.Capacities)); err != nil {
		return fail(log, runID, "write", err)
	}
	log.Info().
		Str("event", "data_written").
		Str("phase", "write").
		Str("solution", *outPath).
		Str("summary", *summaryPath).
		Msg("outputs written")

	if err = writeEnvelope(os.Stdout, env); err != nil {
		return fail(log, runID, "write", err)
	}

	return 0
}

// renderSummary mirrors the solution as a short human-readable report.
func renderSummary(res *solver.Result, caps core.CapacitySpec) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total affinity: %d\n", res.TotalAffinity)
	if res.Combat != nil {
		fmt.Fprintf(&b, "Total combat score: %.2f\n", res.Combat.TotalScore)
	}
	for i, unit := range res.Grouping.Units {
		if res.Combat != nil && i < len(res.Combat.UnitScores) {
			fmt.Fprintf(&b, "Unit %d (%d slots): %d affinity pairs, %.2f combat\n",
				i+1, caps[i], res.UnitAffinity[i], res.Combat.UnitScores[i])
		} else {
			fmt.Fprintf(&b, "Unit %d (%d slots): %d affinity pairs\n",
				i+1, caps[i], res.UnitAffinity[i])
		}
		if len(unit) == 0 {
			b.WriteString("(empty)\n")
		} else {
			b.WriteString(strings.Join(unit, ", ") + "\n")
		}
	}
	if len(res.Grouping.Unassigned) > 0 {
		b.WriteString("Unassigned:\n")
		b.WriteString(strings.Join(res.Grouping.Unassigned, ", ") + "\n")
	}

	return b.String()
}

// fail logs the error, emits a failure envelope on stdout and returns
// the process exit code.
func fail(log zerolog.Logger, runID, phase string, err error) int {
	log.Error().
		Str("event", "run_failed").
		Str("phase", phase).
		Err(err).
		Msg("run failed")
	_ = writeEnvelope(os.Stdout, failureEnvelope(runID, err))

	return 1
}

// writeFileEnvelope writes env to path, creating parent directories.
func writeFileEnvelope(path string, env envelope) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeEnvelope(f, env)
}

// writeTextFile writes content to path, creating parent directories.
func writeTextFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(content), 0o644)
}
