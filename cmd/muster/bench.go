package main

import (
	"flag"
	"math/rand"
	"os"
	"strings"

	"github.com/katalvlaran/muster/benchmark"
	"github.com/katalvlaran/muster/combat"
	"github.com/katalvlaran/muster/solver"
)

// benchmarkPayload is the data half of the benchmark envelope. Stats
// sections are present only when the matching sampler ran.
type benchmarkPayload struct {
	Samples            int              `json:"samples"`
	Seed               int64            `json:"seed"`
	UnitSize           int              `json:"unit_size,omitempty"`
	UnitScores         *benchmark.Stats `json:"unit_scores,omitempty"`
	AssignmentAffinity *benchmark.Stats `json:"assignment_affinity,omitempty"`
}

func runBenchmark(args []string, runID string) int {
	fs := flag.NewFlagSet("benchmark", flag.ExitOnError)
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
		samples     = fs.Int("samples", 1000, "baseline samples to draw")
		unitSize    = fs.Int("unit-size", 0, "random unit size for combat sampling (0 disables)")
		seed        = fs.Int64("seed", 0, "random seed for deterministic sampling")
		parallelism = fs.Int("parallelism", 1, "concurrent sampling workers")
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
		Int("samples", *samples).
		Msg("inputs loaded")

	payload := benchmarkPayload{Samples: *samples, Seed: *seed, UnitSize: *unitSize}

	affinities, err := benchmark.AssignmentAffinities(in.Problem(), *samples, *seed, *parallelism)
	if err != nil {
		return fail(log, runID, "sample", err)
	}
	stats := benchmark.Compute(affinities)
	payload.AssignmentAffinity = &stats
	log.Info().
		Str("event", "phase_completed").
		Str("phase", "sample").
		Int("valid_samples", stats.Count).
		Float64("mean_affinity", stats.Mean).
		Msg("assignment sampling complete")

	if ctx != nil && *unitSize > 0 {
		// Stream indices 0..samples-1 belong to assignment sampling;
		// unit sampling takes the next one.
		rng := rand.New(rand.NewSource(solver.DeriveSeed(*seed, uint64(*samples))))
		scores, uErr := benchmark.UnitScores(ctx, in.Roster, *unitSize, *samples, rng)
		if uErr != nil {
			return fail(log, runID, "sample", uErr)
		}
		unitStats := benchmark.Compute(scores)
		payload.UnitScores = &unitStats
		log.Info().
			Str("event", "phase_completed").
			Str("phase", "sample").
			Float64("mean_unit_score", unitStats.Mean).
			Msg("unit sampling complete")
	}

	if err = writeEnvelope(os.Stdout, successEnvelope(runID, payload)); err != nil {
		return fail(log, runID, "write", err)
	}
	log.Info().Str("event", "run_completed").Str("phase", "write").Msg("benchmark complete")

	return 0
}
