// Package muster assigns a roster of characters into fixed-capacity
// units so that pairwise rapport is maximized, hard pairing constraints
// are honored, and combat composition breaks the remaining ties.
//
// 🚀 What is muster?
//
//	A deterministic, seed-driven assignment toolkit that brings together:
//		• Constraint clustering: union-find over must-pair edges
//		• Conflict validation: must-not-pair chains rejected up front
//		• Roster trimming: documented density ranking drops the least promising clusters
//		• Greedy construction: randomized restarts, each with its own RNG stream
//		• Local search: bounded first-improvement swaps, never regressing rapport
//		• Combat scoring: per-unit role/capability coverage, army-wide type coverage,
//		  leader diversity — used lexicographically after rapport
//
// ✨ Why choose muster?
//
//   - Deterministic – same seed + same inputs ⇒ identical units and scores
//   - Parallel-safe – restarts and benchmark samples own independent RNG streams
//   - Strict sentinels – infeasible constraint sets fail fast with identifying context
//   - Extensible – trim policy and scoring weights are open, documented knobs
//
// Under the hood, everything is organized under flat subpackages:
//
//	core/      — identifiers, rapport pairs, affinity graph, capacities, groupings
//	cluster/   — must-pair clustering, conflict validation, roster trimming
//	solver/    — greedy restarts, swap local search, solution selection
//	combat/    — class profiles, tag registry, unit/coverage/diversity scoring
//	benchmark/ — random-assignment sampling and score-distribution statistics
//	dataset/   — JSON/CSV loading and schema validation for all inputs
//	cmd/muster — solve/benchmark command-line front end
//
// Quick ASCII example:
//
//	    roster {A,B,C,D}, rapport A─B and C─D, capacities [2,2]
//	    ⇒ units [A,B] [C,D], total rapport 2
//
// Dive into the per-package doc.go files for contracts, complexity notes
// and worked examples.
//
//	go get github.com/katalvlaran/muster
package muster
