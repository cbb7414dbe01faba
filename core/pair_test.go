package core

import (
	"errors"
	"reflect"
	"testing"
)

// TestNewPair_Canonical verifies that argument order and surrounding
// whitespace never change the resulting Pair.
func TestNewPair_Canonical(t *testing.T) {
	p1, err := NewPair("beryl", "ash")
	if err != nil {
		t.Fatalf("NewPair failed: %v", err)
	}
	p2, err := NewPair(" ash ", "beryl")
	if err != nil {
		t.Fatalf("NewPair failed: %v", err)
	}
	if p1 != p2 {
		t.Errorf("pairs differ: %v vs %v", p1, p2)
	}
	if p1.A() != "ash" || p1.B() != "beryl" {
		t.Errorf("endpoints = (%q, %q); want (ash, beryl)", p1.A(), p1.B())
	}
}

// TestNewPair_Rejects covers the two invalid shapes: blank endpoints
// and self-pairs.
func TestNewPair_Rejects(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		want error
	}{
		{"empty left", "", "x", ErrEmptyID},
		{"blank right", "x", "   ", ErrEmptyID},
		{"self", "x", "x", ErrSelfPair},
		{"self after trim", " x", "x ", ErrSelfPair},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewPair(tc.a, tc.b); !errors.Is(err, tc.want) {
				t.Errorf("NewPair(%q,%q) = %v; want %v", tc.a, tc.b, err, tc.want)
			}
		})
	}
}

func mustPair(t *testing.T, a, b string) Pair {
	t.Helper()
	p, err := NewPair(a, b)
	if err != nil {
		t.Fatalf("NewPair(%q,%q) failed: %v", a, b, err)
	}

	return p
}

// TestPairSet_SortedRestrict checks deterministic enumeration and
// endpoint-set restriction.
func TestPairSet_SortedRestrict(t *testing.T) {
	s := NewPairSet(
		mustPair(t, "c", "d"),
		mustPair(t, "a", "b"),
		mustPair(t, "b", "c"),
		mustPair(t, "a", "b"), // duplicate
	)
	if len(s) != 3 {
		t.Fatalf("set size = %d; want 3", len(s))
	}

	sorted := s.Sorted()
	want := []Pair{mustPair(t, "a", "b"), mustPair(t, "b", "c"), mustPair(t, "c", "d")}
	if !reflect.DeepEqual(sorted, want) {
		t.Errorf("Sorted = %v; want %v", sorted, want)
	}

	ids := map[string]struct{}{"a": {}, "b": {}, "c": {}}
	got := s.Restrict(ids).Sorted()
	want = want[:2]
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Restrict = %v; want %v", got, want)
	}
}

// TestPairSet_Intersects checks overlap detection in both directions.
func TestPairSet_Intersects(t *testing.T) {
	s1 := NewPairSet(mustPair(t, "a", "b"), mustPair(t, "c", "d"))
	s2 := NewPairSet(mustPair(t, "c", "d"))
	s3 := NewPairSet(mustPair(t, "e", "f"))

	if !s1.Intersects(s2) || !s2.Intersects(s1) {
		t.Error("expected s1 and s2 to intersect")
	}
	if s1.Intersects(s3) {
		t.Error("expected s1 and s3 to be disjoint")
	}
}

// TestAffinityGraph_WithinGroup counts edges internal to a member list.
func TestAffinityGraph_WithinGroup(t *testing.T) {
	g := NewAffinityGraph([]Pair{
		mustPair(t, "a", "b"),
		mustPair(t, "b", "c"),
		mustPair(t, "c", "d"),
	})

	if got := g.WithinGroup([]string{"a", "b", "c"}); got != 2 {
		t.Errorf("WithinGroup(a,b,c) = %d; want 2", got)
	}
	if got := g.WithinGroup([]string{"a", "d"}); got != 0 {
		t.Errorf("WithinGroup(a,d) = %d; want 0", got)
	}
	if !g.Has("b", "a") {
		t.Error("Has should be order-insensitive")
	}
	if g.Has("a", "a") {
		t.Error("self edge must report false")
	}
}

// TestAffinityGraph_IncidentCount verifies internal edges count once.
func TestAffinityGraph_IncidentCount(t *testing.T) {
	g := NewAffinityGraph([]Pair{
		mustPair(t, "a", "b"), // internal to {a,b}
		mustPair(t, "b", "c"), // one endpoint
		mustPair(t, "c", "d"), // no endpoint
	})
	if got := g.IncidentCount([]string{"a", "b"}); got != 2 {
		t.Errorf("IncidentCount(a,b) = %d; want 2", got)
	}
}

// TestCapacitySpec_Validate covers the spec shape rules.
func TestCapacitySpec_Validate(t *testing.T) {
	if err := (CapacitySpec{}).Validate(); !errors.Is(err, ErrNoUnits) {
		t.Errorf("empty spec: %v; want ErrNoUnits", err)
	}
	if err := (CapacitySpec{4, 0}).Validate(); !errors.Is(err, ErrBadCapacity) {
		t.Errorf("zero capacity: %v; want ErrBadCapacity", err)
	}
	if err := (CapacitySpec{4, -1}).Validate(); !errors.Is(err, ErrBadCapacity) {
		t.Errorf("negative capacity: %v; want ErrBadCapacity", err)
	}
	spec := CapacitySpec{4, 3, 4}
	if err := spec.Validate(); err != nil {
		t.Errorf("valid spec rejected: %v", err)
	}
	if spec.Total() != 11 || spec.Max() != 4 {
		t.Errorf("Total/Max = %d/%d; want 11/4", spec.Total(), spec.Max())
	}
}

// TestGrouping_CheckRoster exercises the exactly-once invariant.
func TestGrouping_CheckRoster(t *testing.T) {
	roster := []string{"a", "b", "c", "d"}

	ok := Grouping{Units: [][]string{{"a", "b"}, {"c"}}, Unassigned: []string{"d"}}
	if err := ok.CheckRoster(roster); err != nil {
		t.Errorf("valid grouping rejected: %v", err)
	}

	double := Grouping{Units: [][]string{{"a", "b"}, {"b"}}, Unassigned: []string{"c", "d"}}
	if err := double.CheckRoster(roster); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("double placement: %v; want ErrDuplicateID", err)
	}

	missing := Grouping{Units: [][]string{{"a", "b"}}, Unassigned: []string{"c"}}
	if err := missing.CheckRoster(roster); !errors.Is(err, ErrEmptyID) {
		t.Errorf("missing id: %v; want ErrEmptyID", err)
	}
}
