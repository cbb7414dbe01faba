package solver

import (
	"github.com/katalvlaran/muster/cluster"
	"github.com/katalvlaran/muster/core"
)

// clusterMetrics pre-aggregates the rapport graph and the forbidden
// pairs at cluster granularity, so greedy placement and swap evaluation
// are pure integer-matrix lookups.
type clusterMetrics struct {
	// bonds[i][j] counts rapport edges between clusters i and j;
	// bonds[i][i] counts edges internal to cluster i.
	bonds [][]int
	// conflicts[i][j] marks a forbidden pair spanning clusters i and j.
	conflicts [][]bool
	// potentials[i] counts rapport edges touching cluster i (internal
	// edges once) — the greedy ordering's connectivity signal.
	potentials []int
}

// buildMetrics aggregates edges onto the cluster partition. Edges with
// an endpoint outside the partition are ignored. Forbidden pairs inside
// one cluster cannot occur here: ValidateConflicts runs first, and
// trimming only removes whole clusters.
//
// Complexity: O(c² + E) time, O(c²) space.
func buildMetrics(clusters []cluster.Cluster, affinity []core.Pair, forbidden core.PairSet) clusterMetrics {
	count := len(clusters)
	index := cluster.MemberIndex(clusters)

	m := clusterMetrics{
		bonds:      make([][]int, count),
		conflicts:  make([][]bool, count),
		potentials: make([]int, count),
	}
	for i := range m.bonds {
		m.bonds[i] = make([]int, count)
		m.conflicts[i] = make([]bool, count)
	}

	for _, p := range affinity {
		li, okL := index[p.A()]
		ri, okR := index[p.B()]
		if !okL || !okR {
			continue
		}
		if li == ri {
			m.bonds[li][li]++
			m.potentials[li]++
			continue
		}
		m.bonds[li][ri]++
		m.bonds[ri][li]++
		m.potentials[li]++
		m.potentials[ri]++
	}

	for p := range forbidden {
		li, okL := index[p.A()]
		ri, okR := index[p.B()]
		if !okL || !okR || li == ri {
			continue
		}
		m.conflicts[li][ri] = true
		m.conflicts[ri][li] = true
	}

	return m
}

// unitAffinity scores one unit's cluster list: internal edges of each
// cluster plus pairwise edges between co-located clusters.
//
// Complexity: O(k²) for k clusters in the unit.
func (m clusterMetrics) unitAffinity(unit []int) int {
	var score int
	for i, left := range unit {
		score += m.bonds[left][left]
		for _, right := range unit[i+1:] {
			score += m.bonds[left][right]
		}
	}

	return score
}

// totalAffinity sums unitAffinity over all units.
func (m clusterMetrics) totalAffinity(units [][]int) int {
	var total int
	for _, unit := range units {
		total += m.unitAffinity(unit)
	}

	return total
}

// hasConflict reports whether candidate conflicts with any cluster in
// unit, ignoring exclude (the cluster about to leave in a swap).
func (m clusterMetrics) hasConflict(candidate int, unit []int, exclude int) bool {
	for _, other := range unit {
		if other != exclude && m.conflicts[candidate][other] {
			return true
		}
	}

	return false
}

// attachment sums the rapport between candidate and the clusters of
// unit, ignoring exclude.
func (m clusterMetrics) attachment(candidate int, unit []int, exclude int) int {
	var sum int
	for _, other := range unit {
		if other != exclude {
			sum += m.bonds[candidate][other]
		}
	}

	return sum
}
