package solver

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/muster/cluster"
	"github.com/katalvlaran/muster/core"
)

// greedyAssign builds one initial assignment: clusters are visited in a
// restart-local order (larger, better-connected first, random within
// ties) and each is placed into the feasible unit capturing the most
// new rapport. Returns nil when some cluster cannot be placed or the
// packing is inexact — the restart is simply discarded.
//
// Placement tie-breaks, in order: higher newly captured rapport,
// smaller remaining capacity, lowest unit index (units are scanned
// ascending and only strict improvements displace the incumbent).
//
// Complexity: O(c log c + c·u·k) for c clusters, u units, k clusters
// per unit.
func greedyAssign(clusters []cluster.Cluster, caps core.CapacitySpec, m clusterMetrics, rng *rand.Rand) [][]int {
	count := len(clusters)

	// Restart-local ordering: descending (size, potential, jitter).
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
		if clusters[ia].Size() != clusters[ib].Size() {
			return clusters[ia].Size() > clusters[ib].Size()
		}
		if m.potentials[ia] != m.potentials[ib] {
			return m.potentials[ia] > m.potentials[ib]
		}

		return jitter[ia] > jitter[ib]
	})

	remaining := make([]int, len(caps))
	copy(remaining, caps)
	units := make([][]int, len(caps))

	for _, clusterIdx := range order {
		size := clusters[clusterIdx].Size()

		bestUnit := -1
		var bestGain, bestRemaining int
		for unitIdx := range units {
			if remaining[unitIdx] < size {
				continue
			}
			if m.hasConflict(clusterIdx, units[unitIdx], -1) {
				continue
			}
			gain := m.attachment(clusterIdx, units[unitIdx], -1)
			after := remaining[unitIdx] - size
			if bestUnit < 0 || gain > bestGain || (gain == bestGain && after < bestRemaining) {
				bestUnit = unitIdx
				bestGain = gain
				bestRemaining = after
			}
		}
		if bestUnit < 0 {
			return nil
		}
		units[bestUnit] = append(units[bestUnit], clusterIdx)
		remaining[bestUnit] -= size
	}

	// Filler padding makes totals exact; leftover capacity means the
	// packing failed and the restart is unusable.
	for _, slack := range remaining {
		if slack != 0 {
			return nil
		}
	}

	return units
}
