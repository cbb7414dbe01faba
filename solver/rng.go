// Package solver - RNG utilities for restart streams.
//
// This file centralizes deterministic random generation for the solver.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Encapsulation: a single stream factory; no time-based sources.
//   - Safety: no panics, no logging.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Every restart (and every
//     benchmark sample) derives its own independent stream; streams are
//     never shared across goroutines.
package solver

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// DeriveSeed mixes a base seed and a stream index into a new 64-bit
// seed using a SplitMix64-style finalizer (Vigna 2014 constants). Small
// input changes produce well-distributed output changes, so consecutive
// restart indices yield decorrelated streams.
//
// Complexity: O(1).
func DeriveSeed(base int64, stream uint64) int64 {
	if base == 0 {
		base = defaultRNGSeed
	}
	x := uint64(base) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// restartRNG returns the independent deterministic stream for one
// restart index.
//
// Complexity: O(1).
func restartRNG(base int64, restart int) *rand.Rand {
	return rand.New(rand.NewSource(DeriveSeed(base, uint64(restart))))
}
