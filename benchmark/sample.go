package benchmark

import (
	"errors"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/muster/combat"
	"github.com/katalvlaran/muster/core"
	"github.com/katalvlaran/muster/solver"
)

// ErrNilContext indicates unit sampling without a combat context;
// there is nothing to score a random unit with.
var ErrNilContext = errors.New("benchmark: combat context must not be nil")

// UnitScores draws samples random units of unitSize members from roster
// (without replacement) and returns each unit's combat score. A
// unitSize outside [1, len(roster)] or samples ≤ 0 yields an empty
// slice — the baseline is simply undefined there, not an error.
//
// Error Conditions:
//   - ErrNilContext : ctx is nil.
//   - combat.ErrUnknownClass : a drawn member fails to resolve.
//
// Complexity: O(samples · (n + unitSize · tags)).
func UnitScores(ctx *combat.Context, roster []string, unitSize, samples int, rng *rand.Rand) ([]float64, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	if unitSize <= 0 || unitSize > len(roster) || samples <= 0 {
		return []float64{}, nil
	}

	scores := make([]float64, 0, samples)
	for i := 0; i < samples; i++ {
		perm := rng.Perm(len(roster))
		unit := make([]string, unitSize)
		for j := 0; j < unitSize; j++ {
			unit[j] = roster[perm[j]]
		}

		sum, err := ctx.Summarize([][]string{unit})
		if err != nil {
			return nil, err
		}
		scores = append(scores, sum.TotalScore)
	}

	return scores, nil
}

// AssignmentAffinities draws samples random constraint-valid groupings
// of p and returns the total rapport each one captures. Samples whose
// attempt budget runs dry are skipped, so the result may be shorter
// than samples; any other failure aborts the whole run.
//
// Each sample owns the RNG stream solver.DeriveSeed(seed, sample), so
// output is identical at any parallelism level. parallelism ≤ 1 runs
// sequentially.
//
// Error Conditions: every prepare error solver.Solve can return.
//
// Complexity: O(prepare + samples · packing) across parallelism workers.
func AssignmentAffinities(p solver.Problem, samples int, seed int64, parallelism int) ([]float64, error) {
	if samples <= 0 {
		return []float64{}, nil
	}

	// Validation, clustering and trimming run once; the prepared
	// sampler is read-only and shared by all workers.
	sampler, err := solver.NewSampler(p)
	if err != nil {
		return nil, err
	}

	graph := core.NewAffinityGraph(p.Affinity)
	results := make([]*float64, samples)

	runSample := func(i int) error {
		rng := rand.New(rand.NewSource(solver.DeriveSeed(seed, uint64(i))))
		grouping, err := sampler.Grouping(rng, solver.DefaultSampleAttempts)
		if err != nil {
			if errors.Is(err, solver.ErrSampleExhausted) {
				return nil
			}

			return err
		}

		var total float64
		for _, unit := range grouping.Units {
			total += float64(graph.WithinGroup(unit))
		}
		results[i] = &total

		return nil
	}

	if parallelism > 1 {
		var g errgroup.Group
		g.SetLimit(parallelism)
		for i := 0; i < samples; i++ {
			g.Go(func() error { return runSample(i) })
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := 0; i < samples; i++ {
			if err := runSample(i); err != nil {
				return nil, err
			}
		}
	}

	scores := make([]float64, 0, samples)
	for _, r := range results {
		if r != nil {
			scores = append(scores, *r)
		}
	}

	return scores, nil
}
