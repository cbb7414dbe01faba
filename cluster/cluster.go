package cluster

import (
	"sort"

	"github.com/katalvlaran/muster/core"
)

// Cluster is a maximal set of entities forced to co-locate by must-pair
// constraints. Members are sorted ascending and never empty.
type Cluster struct {
	Members []string
}

// Size returns the member count.
func (c Cluster) Size() int { return len(c.Members) }

// Build partitions roster into clusters: connected components of the
// must-pair graph restricted to the roster. Must-pair edges with an
// endpoint outside the roster are ignored (restriction); callers that
// consider those an error validate membership beforehand.
//
// Error Conditions:
//   - core.ErrDuplicateID : the roster names the same id twice.
//
// Steps:
//  1. Index the roster into a dense arena: id → index, plus parent[]
//     and rank[] arrays initialized to singleton sets.
//  2. Union the endpoints of every roster-internal must-pair edge,
//     with path compression on find and union by rank.
//  3. Group members by root, sort each cluster's members, then order
//     clusters by their first member for a deterministic partition.
//
// Complexity: O(n·α(n) + n log n) time, O(n) space.
func Build(roster []string, mustPair []core.Pair) ([]Cluster, error) {
	// 1. Dense index arena over the roster.
	index := make(map[string]int, len(roster))
	for i, id := range roster {
		if _, dup := index[id]; dup {
			return nil, core.ErrDuplicateID
		}
		index[id] = i
	}

	parent := make([]int, len(roster))
	rank := make([]int, len(roster))
	for i := range parent {
		parent[i] = i
	}

	// Iterative find with path compression (point at grandparent).
	find := func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}

	// Union by rank merges two disjoint sets.
	union := func(x, y int) {
		rootX, rootY := find(x), find(y)
		if rootX == rootY {
			return
		}
		if rank[rootX] < rank[rootY] {
			parent[rootX] = rootY
		} else {
			parent[rootY] = rootX
			if rank[rootX] == rank[rootY] {
				rank[rootX]++
			}
		}
	}

	// 2. Union roster-internal must-pair endpoints in the given order.
	for _, p := range mustPair {
		ia, okA := index[p.A()]
		ib, okB := index[p.B()]
		if !okA || !okB {
			// Restriction to the roster: outside edges carry no force here.
			continue
		}
		union(ia, ib)
	}

	// 3. Collect components, sorted for determinism.
	byRoot := make(map[int][]string, len(roster))
	for _, id := range roster {
		root := find(index[id])
		byRoot[root] = append(byRoot[root], id)
	}

	clusters := make([]Cluster, 0, len(byRoot))
	for _, members := range byRoot {
		sort.Strings(members)
		clusters = append(clusters, Cluster{Members: members})
	}
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Members[0] < clusters[j].Members[0]
	})

	return clusters, nil
}

// MemberIndex maps every member id to its cluster's position in clusters.
//
// Complexity: O(n).
func MemberIndex(clusters []Cluster) map[string]int {
	index := make(map[string]int)
	for i, c := range clusters {
		for _, id := range c.Members {
			index[id] = i
		}
	}

	return index
}

// ValidateConflicts checks every must-not-pair edge against the
// partition: both endpoints inside one cluster means the constraint set
// is unsatisfiable. Edges touching entities outside the partition are
// ignored. Pairs are checked in sorted order so the reported conflict
// is deterministic.
//
// Error Conditions:
//   - ErrConfigurationInfeasible (via *ConflictError).
//
// Complexity: O(n + |mustNotPair| log |mustNotPair|).
func ValidateConflicts(clusters []Cluster, mustNotPair core.PairSet) error {
	index := MemberIndex(clusters)
	for _, p := range mustNotPair.Sorted() {
		ia, okA := index[p.A()]
		ib, okB := index[p.B()]
		if !okA || !okB {
			continue
		}
		if ia == ib {
			return &ConflictError{Pair: p, Cluster: clusters[ia]}
		}
	}

	return nil
}
