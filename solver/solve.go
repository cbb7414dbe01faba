package solver

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/muster/cluster"
	"github.com/katalvlaran/muster/core"
)

// Solve runs the full assignment pipeline on p and returns the best
// grouping found across all restarts.
//
// Stages: validate → cluster → conflict check → trim → pad →
// restart loop {greedy → local search} → scoring → selection.
//
// Error Conditions:
//   - ErrInvalidOptions, ErrEmptyRoster, core.ErrDuplicateID,
//     core.ErrNoUnits, core.ErrBadCapacity : malformed inputs.
//   - ErrUnknownPairEntity, ErrPairNotAffinity : bad must-pair edges.
//   - cluster.ErrConfigurationInfeasible : a pair both required and
//     forbidden, directly or through a must-pair chain.
//   - cluster.ErrCapacityInfeasible : nothing can be placed, or no
//     restart found a feasible packing.
//   - combat.ErrUnknownClass : combat scoring requested and some roster
//     entity has no resolvable class (checked up front).
//   - ErrBelowMinCombat : the winner's composite misses the threshold.
//
// Determinism: identical Problem + Options ⇒ identical Result, at any
// parallelism level.
func Solve(p Problem, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	// Combat contract: every roster entity must resolve before any
	// search effort is spent.
	if o.Combat != nil {
		if err = o.Combat.CheckRoster(normalizedRoster(p.Roster)); err != nil {
			return nil, err
		}
	}

	// Stages 1-4 - normalization, hygiene, clustering, trim and pad.
	s, err := prepare(p, o.TrimPolicy)
	if err != nil {
		return nil, err
	}

	var tieBreak func([][]int) (float64, error)
	if o.Combat != nil {
		tieBreak = func(units [][]int) (float64, error) {
			return o.Combat.Composite(s.memberUnits(units))
		}
	}

	// Stage 5 - restart loop. Each restart owns a derived RNG stream
	// and a private working buffer; results land in a slot per restart
	// so the reduction below is order-stable.
	type candidate struct {
		units     [][]int
		affinity  int
		composite float64
	}
	results := make([]*candidate, o.Restarts)

	runRestart := func(r int) error {
		rng := restartRNG(o.Seed, r)
		units := greedyAssign(s.kept, p.Capacities, s.metrics, rng)
		if units == nil {
			return nil
		}
		if lsErr := localSearch(units, s.kept, s.metrics, o.SwapIterations, tieBreak); lsErr != nil {
			return lsErr
		}
		cand := &candidate{units: units, affinity: s.metrics.totalAffinity(units)}
		if tieBreak != nil {
			comp, cErr := tieBreak(units)
			if cErr != nil {
				return cErr
			}
			cand.composite = comp
		}
		results[r] = cand

		return nil
	}

	if o.Parallelism > 1 {
		var g errgroup.Group
		g.SetLimit(o.Parallelism)
		for r := 0; r < o.Restarts; r++ {
			g.Go(func() error { return runRestart(r) })
		}
		if err = g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for r := 0; r < o.Restarts; r++ {
			if err = runRestart(r); err != nil {
				return nil, err
			}
		}
	}

	// Stage 6 - selection: lexicographic (affinity, composite), earliest
	// restart wins remaining ties.
	var best *candidate
	for _, cand := range results {
		if cand == nil {
			continue
		}
		if best == nil || cand.affinity > best.affinity ||
			(cand.affinity == best.affinity && cand.composite > best.composite+compositeEps) {
			best = cand
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: no feasible placement found in %d restarts",
			cluster.ErrCapacityInfeasible, o.Restarts)
	}
	if o.EnforceMinCombat && best.composite < o.MinCombatScore {
		return nil, &BelowThresholdError{Score: best.composite, Threshold: o.MinCombatScore}
	}

	// Stage 7 - result assembly on real members only.
	units := s.memberUnits(best.units)
	res := &Result{
		Grouping:       core.Grouping{Units: units, Unassigned: s.unassigned},
		UnitAffinity:   make([]int, len(units)),
		Seed:           o.Seed,
		Restarts:       o.Restarts,
		SwapIterations: o.SwapIterations,
	}
	for i, unit := range units {
		res.UnitAffinity[i] = s.assignedGraph.WithinGroup(unit)
		res.TotalAffinity += res.UnitAffinity[i]
	}
	if o.Combat != nil {
		sum, sErr := o.Combat.Summarize(units)
		if sErr != nil {
			return nil, sErr
		}
		res.Combat = &sum
	}

	return res, nil
}

// normalizedRoster applies NormalizeID and drops blanks, without the
// duplicate check prepare performs later.
func normalizedRoster(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		if id := core.NormalizeID(r); id != "" {
			out = append(out, id)
		}
	}

	return out
}
