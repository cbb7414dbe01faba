package cluster

import (
	"sort"

	"github.com/katalvlaran/muster/core"
)

// TrimPolicy ranks clusters for removal: the returned slice lists
// cluster indices most-expendable first. Trim consults the policy only
// for clusters that fit at least one unit; oversized clusters are
// always dropped ahead of the ranking.
type TrimPolicy func(clusters []Cluster, g *core.AffinityGraph) []int

// TrimResult partitions the input clusters into survivors and drops.
type TrimResult struct {
	// Kept preserves the relative order of the surviving clusters.
	Kept []Cluster
	// Dropped holds removed clusters, in removal order.
	Dropped []Cluster
}

// DroppedMembers flattens Dropped into a sorted id list for the
// unassigned report.
func (r TrimResult) DroppedMembers() []string {
	var out []string
	for _, c := range r.Dropped {
		out = append(out, c.Members...)
	}
	sort.Strings(out)

	return out
}

// DensityRank is the default TrimPolicy: ascending by
// (incident rapport edges / size, size, first member). Sparsest and
// smallest clusters rank first — they forfeit the least rapport per
// slot reclaimed. Internal edges count once in the numerator.
//
// Complexity: O(c·E + c log c).
func DensityRank(clusters []Cluster, g *core.AffinityGraph) []int {
	density := make([]float64, len(clusters))
	for i, c := range clusters {
		density[i] = float64(g.IncidentCount(c.Members)) / float64(c.Size())
	}

	order := make([]int, len(clusters))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if density[ia] != density[ib] {
			return density[ia] < density[ib]
		}
		if clusters[ia].Size() != clusters[ib].Size() {
			return clusters[ia].Size() < clusters[ib].Size()
		}

		return clusters[ia].Members[0] < clusters[ib].Members[0]
	})

	return order
}

// Trim drops whole clusters until the remainder fits the capacities.
// It never splits a cluster.
//
// Steps:
//  1. Drop every cluster wider than the largest capacity — such a
//     cluster can never be placed, regardless of totals.
//  2. If Σ surviving sizes still exceeds Σ capacities, drop survivors
//     in policy order (DensityRank when policy == nil) until they fit.
//  3. If nothing survives step 1 while clusters existed, placement is
//     impossible: *OversizeError naming the smallest cluster.
//
// Complexity: O(c·E + c log c).
func Trim(clusters []Cluster, caps core.CapacitySpec, g *core.AffinityGraph, policy TrimPolicy) (TrimResult, error) {
	if policy == nil {
		policy = DensityRank
	}

	var (
		res      TrimResult
		maxCap   = caps.Max()
		total    int
		dropped  = make([]bool, len(clusters))
		fitting  = make([]Cluster, 0, len(clusters))
		fittingI = make([]int, 0, len(clusters))
	)

	// 1. Oversized clusters are unplaceable no matter what.
	for i, c := range clusters {
		if c.Size() > maxCap {
			dropped[i] = true
			res.Dropped = append(res.Dropped, c)
			continue
		}
		total += c.Size()
		fitting = append(fitting, c)
		fittingI = append(fittingI, i)
	}

	if len(clusters) > 0 && len(fitting) == 0 {
		smallest := clusters[0]
		for _, c := range clusters[1:] {
			if c.Size() < smallest.Size() {
				smallest = c
			}
		}

		return TrimResult{}, &OversizeError{Cluster: smallest, MaxCapacity: maxCap}
	}

	// 2. Drop ranked clusters until the remainder fits.
	if total > caps.Total() {
		for _, local := range policy(fitting, g) {
			if total <= caps.Total() {
				break
			}
			global := fittingI[local]
			if dropped[global] {
				continue
			}
			dropped[global] = true
			res.Dropped = append(res.Dropped, clusters[global])
			total -= clusters[global].Size()
		}
	}

	for i, c := range clusters {
		if !dropped[i] {
			res.Kept = append(res.Kept, c)
		}
	}

	return res, nil
}
