// Package cluster turns hard pairing constraints into atomic placement
// units and decides which of them survive when the roster outgrows the
// available slots.
//
// What & Why
//
//   - Build merges entities joined by "must pair" edges into clusters:
//     connected components of the must-pair graph restricted to the
//     roster, computed with a disjoint-set (union-find) over an index
//     arena — parent/rank arrays indexed by a dense id→index mapping,
//     no pointer graph. Symmetric and transitive by construction: if
//     A–B and B–C are forced, A, B and C land in one cluster. Entities
//     with no must-pair edges form singleton clusters.
//
//   - ValidateConflicts fails fast when a must-not-pair edge has both
//     endpoints inside one cluster: the constraint set is unsatisfiable
//     and no amount of searching will fix it. The returned error names
//     the conflicting pair and the cluster.
//
//   - Trim activates only when Σ cluster sizes exceeds Σ capacities.
//     Whole clusters are dropped — never split — in the order produced
//     by a TrimPolicy. The default DensityRank drops sparsest-smallest
//     first: ascending (incident rapport edges / size, size). A cluster
//     wider than the largest unit can never be placed and is dropped
//     before any ranked cluster. Dropped members are reported for the
//     caller's unassigned list.
//
// Error Conditions:
//   - ErrConfigurationInfeasible (via *ConflictError): a must-pair chain
//     forces a must-not-pair violation.
//   - ErrCapacityInfeasible (via *OversizeError): every cluster exceeds
//     every capacity, so nothing at all can be placed.
//
// Determinism: cluster members are sorted, clusters are ordered by
// their first member, and ranking ties break on (size, first member).
// Identical inputs always produce identical partitions and drops.
//
// Complexity: Build is O(n·α(n) + n log n); Trim is O(c·E + c log c)
// where c is the cluster count and E the rapport edge count.
package cluster
