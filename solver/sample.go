package solver

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/muster/core"
)

// DefaultSampleAttempts bounds the retry budget of RandomGrouping.
const DefaultSampleAttempts = 50

// Sampler draws random constraint-valid groupings over a problem whose
// validation, clustering and trimming ran once up front, amortizing the
// preparation cost across many draws. After construction the prepared
// state is read-only, so concurrent Grouping calls are safe as long as
// each caller owns its rng.
type Sampler struct {
	state *prepared
	caps  core.CapacitySpec
}

// NewSampler runs the full preparation pipeline once and returns a
// sampler over the resulting feasible space.
//
// Error Conditions: every prepare error Solve can return (see Solve).
//
// Complexity: O(prepare).
func NewSampler(p Problem) (*Sampler, error) {
	s, err := prepare(p, nil)
	if err != nil {
		return nil, err
	}

	return &Sampler{state: s, caps: p.Capacities}, nil
}

// Grouping draws one random constraint-valid grouping without any
// search effort: clusters are shuffled, then best-fit packed with ties
// resolved by rng. The result respects must-pair, must-not-pair and
// capacities exactly like a Solve result, but optimizes nothing — it is
// the baseline distribution benchmarks sample from.
//
// attempts ≤ 0 selects DefaultSampleAttempts. The caller owns rng and
// its seeding; derive per-sample streams with DeriveSeed.
//
// Error Conditions:
//   - ErrSampleExhausted : no attempt produced an exact packing.
//
// Complexity: O(attempts · c·u).
func (s *Sampler) Grouping(rng *rand.Rand, attempts int) (*core.Grouping, error) {
	if attempts <= 0 {
		attempts = DefaultSampleAttempts
	}

	for attempt := 0; attempt < attempts; attempt++ {
		units := randomPack(s.state, s.caps, rng)
		if units == nil {
			continue
		}

		return &core.Grouping{Units: s.state.memberUnits(units), Unassigned: s.state.unassigned}, nil
	}

	return nil, fmt.Errorf("%w: %d attempts", ErrSampleExhausted, attempts)
}

// RandomGrouping is the single-draw convenience wrapper: prepare, then
// one Grouping call. Use a Sampler when drawing repeatedly.
func RandomGrouping(p Problem, rng *rand.Rand, attempts int) (*core.Grouping, error) {
	s, err := NewSampler(p)
	if err != nil {
		return nil, err
	}

	return s.Grouping(rng, attempts)
}

// randomPack places clusters largest-first (random within equal sizes)
// into the tightest feasible unit, breaking remaining-capacity ties at
// random. Returns nil when a cluster cannot be placed or the packing is
// inexact.
func randomPack(s *prepared, caps core.CapacitySpec, rng *rand.Rand) [][]int {
	count := len(s.kept)

	jitter := make([]float64, count)
	for i := range jitter {
		jitter[i] = rng.Float64()
	}
	order := make([]int, count)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if s.kept[ia].Size() != s.kept[ib].Size() {
			return s.kept[ia].Size() > s.kept[ib].Size()
		}

		return jitter[ia] > jitter[ib]
	})

	remaining := make([]int, len(caps))
	copy(remaining, caps)
	units := make([][]int, len(caps))

	var ties []int
	for _, clusterIdx := range order {
		size := s.kept[clusterIdx].Size()

		bestAfter := -1
		ties = ties[:0]
		for unitIdx := range units {
			if remaining[unitIdx] < size {
				continue
			}
			if s.metrics.hasConflict(clusterIdx, units[unitIdx], -1) {
				continue
			}
			after := remaining[unitIdx] - size
			switch {
			case bestAfter < 0 || after < bestAfter:
				bestAfter = after
				ties = append(ties[:0], unitIdx)
			case after == bestAfter:
				ties = append(ties, unitIdx)
			}
		}
		if len(ties) == 0 {
			return nil
		}
		unitIdx := ties[rng.Intn(len(ties))]
		units[unitIdx] = append(units[unitIdx], clusterIdx)
		remaining[unitIdx] -= size
	}

	for _, slack := range remaining {
		if slack != 0 {
			return nil
		}
	}

	return units
}
