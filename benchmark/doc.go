// Package benchmark answers the question "how good is this grouping,
// really?" by putting solver output next to a baseline distribution.
//
// What:
//   - UnitScores draws random fixed-size units from a roster and scores
//     each with a combat context.
//   - AssignmentAffinities draws whole constraint-valid groupings at
//     random (no optimization at all) and records their captured
//     rapport.
//   - Compute condenses either sample set into count / min / max /
//     mean / median / p75 / p90 / std.
//
// Why: an optimizer's raw score is meaningless without scale. A solve
// landing above the baseline's p90 is doing real work; one near the
// median is noise. The random baseline obeys the same clustering and
// conflict rules as the solver, so the comparison is apples to apples.
//
// Determinism: both samplers derive one RNG stream per sample from the
// base seed, so results are reproducible at any parallelism level.
//
// Percentiles use linear interpolation between closest ranks; std is
// the population standard deviation.
package benchmark
