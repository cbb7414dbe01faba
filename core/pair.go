package core

import (
	"sort"
	"strings"
)

// NormalizeID strips surrounding whitespace from a raw identifier.
// Empty-after-trim ids are the caller's problem; NewPair rejects them.
//
// Complexity: O(len(raw)).
func NormalizeID(raw string) string {
	return strings.TrimSpace(raw)
}

// Pair is an unordered edge between two distinct entity ids.
// The zero Pair is invalid; construct via NewPair, which normalizes
// both ids and orders them so that Pair is a canonical, comparable
// map key regardless of argument order.
type Pair struct {
	a, b string // invariant: a < b, both non-empty
}

// NewPair builds a canonical Pair from two raw ids.
//
// Error Conditions:
//   - ErrEmptyID  : either id is empty after trimming.
//   - ErrSelfPair : both ids normalize to the same value.
//
// Complexity: O(len(a)+len(b)).
func NewPair(a, b string) (Pair, error) {
	// 1. Normalize both endpoints before any comparison.
	na, nb := NormalizeID(a), NormalizeID(b)
	if na == "" || nb == "" {
		return Pair{}, ErrEmptyID
	}
	// 2. A pair must join two distinct entities.
	if na == nb {
		return Pair{}, ErrSelfPair
	}
	// 3. Canonical ordering makes {x,y} and {y,x} the same key.
	if na > nb {
		na, nb = nb, na
	}

	return Pair{a: na, b: nb}, nil
}

// A returns the lexicographically smaller endpoint.
func (p Pair) A() string { return p.a }

// B returns the lexicographically larger endpoint.
func (p Pair) B() string { return p.b }

// Contains reports whether id is one of the pair's endpoints.
func (p Pair) Contains(id string) bool { return p.a == id || p.b == id }

// Within reports whether both endpoints belong to the given id set.
func (p Pair) Within(ids map[string]struct{}) bool {
	_, okA := ids[p.a]
	_, okB := ids[p.b]

	return okA && okB
}

// String renders the pair as "a–b" for error context and summaries.
func (p Pair) String() string { return p.a + "–" + p.b }

// PairSet is a deduplicated collection of Pairs.
type PairSet map[Pair]struct{}

// NewPairSet builds a PairSet from the given pairs, dropping duplicates.
func NewPairSet(pairs ...Pair) PairSet {
	s := make(PairSet, len(pairs))
	for _, p := range pairs {
		s[p] = struct{}{}
	}

	return s
}

// Add inserts p into the set.
func (s PairSet) Add(p Pair) { s[p] = struct{}{} }

// Has reports membership of p.
func (s PairSet) Has(p Pair) bool {
	_, ok := s[p]

	return ok
}

// Intersects reports whether the two sets share at least one pair.
// Iterates the smaller set.
//
// Complexity: O(min(|s|,|other|)).
func (s PairSet) Intersects(other PairSet) bool {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	for p := range small {
		if large.Has(p) {
			return true
		}
	}

	return false
}

// Restrict returns a new set holding only pairs whose endpoints both
// belong to ids.
//
// Complexity: O(|s|).
func (s PairSet) Restrict(ids map[string]struct{}) PairSet {
	out := make(PairSet, len(s))
	for p := range s {
		if p.Within(ids) {
			out.Add(p)
		}
	}

	return out
}

// Sorted returns the pairs in lexicographic (A,B) order.
// Deterministic enumeration is the point; map iteration order is not.
//
// Complexity: O(n log n).
func (s PairSet) Sorted() []Pair {
	out := make([]Pair, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].a != out[j].a {
			return out[i].a < out[j].a
		}

		return out[i].b < out[j].b
	})

	return out
}
