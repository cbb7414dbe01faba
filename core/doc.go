// Package core defines the fundamental value types shared by every
// muster component: entity identifiers, normalized rapport pairs,
// the undirected affinity graph, unit capacity specifications and the
// final grouping shape.
//
// What & Why
//
//   - Pair is an unordered, deduplicated edge between two distinct
//     entity ids. All constraint and rapport inputs reduce to Pairs,
//     so symmetry and self-loop rejection are enforced in exactly one
//     place (NewPair).
//
//   - AffinityGraph is an immutable, deduplicated undirected edge set
//     built once per solve. It answers the two questions the solver
//     asks in hot paths: "how many rapport edges lie inside this member
//     set?" (WithinGroup) and "how many touch it at all?"
//     (IncidentCount, the trim-ranking density numerator).
//
//   - CapacitySpec is the ordered list of unit slot counts. Validation
//     is strict: at least one unit, every capacity positive.
//
//   - Grouping is the solver's output shape: ordered units of entity
//     ids plus the unassigned remainder. Every roster entity appears in
//     exactly one unit or in Unassigned, never both, never twice.
//
// Design principles:
//   - Deterministic: all enumerations (Edges, PairSet.Sorted) return
//     lexicographically sorted slices.
//   - Immutable after construction; no locks needed anywhere downstream.
//   - Only sentinel errors from errors.go; no logging, no panics on
//     user input.
//
// For examples of usage, see the *_test.go files in this package.
package core
