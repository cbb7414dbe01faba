// Package solver assigns clustered rosters into fixed-capacity units:
// randomized greedy construction over independent restarts, bounded
// first-improvement swap local search, and lexicographic selection on
// (total rapport, combat composite).
//
// What & Why
//
//   - Pipeline per Solve call:
//     validate → cluster (must-pair union-find) → conflict check →
//     trim (when the roster outgrows the slots) → pad (synthetic
//     fillers when slots outgrow the roster) → restart loop
//     {greedy construction → swap local search} → scoring → selection.
//
//   - Greedy construction places clusters in a restart-local random
//     order (larger, better-connected clusters first) into the unit
//     that maximizes newly captured rapport; ties break on smaller
//     remaining capacity, then lowest unit index. Unfilled slots are
//     occupied by synthetic fillers that never score.
//
//   - Local search repeatedly scans unit pairs for equal-size cluster
//     swaps (singleton clusters cover individual entities; clusters
//     always move atomically). A swap is accepted when it strictly
//     increases rapport, or — with a combat context configured — when
//     rapport is unchanged and the combat composite strictly increases.
//     Swaps that would seat a forbidden pair are rejected outright.
//     The scan stops at the iteration budget or at a full pass with no
//     accepted swap. Accepted swaps never decrease total rapport.
//
//   - Selection is lexicographic: total rapport first, combat composite
//     second, earliest restart third (for stable determinism). An
//     optional minimum-combat-score filter reports infeasibility rather
//     than returning a below-threshold result.
//
// Concurrency:
//   - Restarts are embarrassingly parallel: each owns an RNG stream
//     derived from the base seed and its restart index (SplitMix64
//     mixing, see rng.go) and a private working buffer. WithParallelism
//     fans restarts across goroutines; the reduction scans candidates
//     in restart order, so the winner is identical at any worker count.
//
// Determinism: same Problem + same Options ⇒ identical Result, always.
//
// Error Conditions: strict sentinels only — see types.go, plus
// cluster.ErrConfigurationInfeasible / cluster.ErrCapacityInfeasible and
// combat.ErrUnknownClass / combat.ErrInvalidWeight surfaced verbatim.
// Restarts retry for quality, never for error recovery.
package solver
