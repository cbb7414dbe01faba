// Package solver_test exercises the full pipeline through the public
// API: clustering, trimming, search, scoring and the error contract.
package solver_test

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/katalvlaran/muster/cluster"
	"github.com/katalvlaran/muster/combat"
	"github.com/katalvlaran/muster/core"
	"github.com/katalvlaran/muster/solver"
)

func pair(t *testing.T, a, b string) core.Pair {
	t.Helper()
	p, err := core.NewPair(a, b)
	if err != nil {
		t.Fatalf("NewPair(%q,%q) failed: %v", a, b, err)
	}

	return p
}

// findUnit returns the index of the unit containing id, or -1.
func findUnit(units [][]string, id string) int {
	for i, unit := range units {
		for _, member := range unit {
			if member == id {
				return i
			}
		}
	}

	return -1
}

// TestSolve_CapturesDisjointPairs: two disjoint affinity edges and two
// two-slot units admit a perfect assignment capturing both.
func TestSolve_CapturesDisjointPairs(t *testing.T) {
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d"},
		Capacities: core.CapacitySpec{2, 2},
		Affinity:   []core.Pair{pair(t, "a", "b"), pair(t, "c", "d")},
	}

	res, err := solver.Solve(p, solver.WithSeed(1))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.TotalAffinity != 2 {
		t.Errorf("TotalAffinity = %d; want 2", res.TotalAffinity)
	}
	for i, ua := range res.UnitAffinity {
		if ua != 1 {
			t.Errorf("UnitAffinity[%d] = %d; want 1", i, ua)
		}
	}
	if len(res.Grouping.Unassigned) != 0 {
		t.Errorf("Unassigned = %v; want none", res.Grouping.Unassigned)
	}
	if err = res.Grouping.CheckRoster(p.Roster); err != nil {
		t.Errorf("grouping invariant violated: %v", err)
	}
}

// TestSolve_TrimsSparsestEntity: five entities into four slots — the
// isolated one is reported unassigned, never silently dropped.
func TestSolve_TrimsSparsestEntity(t *testing.T) {
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d", "e"},
		Capacities: core.CapacitySpec{2, 2},
		Affinity:   []core.Pair{pair(t, "a", "b"), pair(t, "c", "d")},
	}

	res, err := solver.Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !reflect.DeepEqual(res.Grouping.Unassigned, []string{"e"}) {
		t.Errorf("Unassigned = %v; want [e]", res.Grouping.Unassigned)
	}
	if res.TotalAffinity != 2 {
		t.Errorf("TotalAffinity = %d; want 2", res.TotalAffinity)
	}
	if err = res.Grouping.CheckRoster(p.Roster); err != nil {
		t.Errorf("grouping invariant violated: %v", err)
	}
}

// TestSolve_MustNotPairSeparates: a and b share an edge but are
// forbidden together; the best legal assignment captures the rest.
func TestSolve_MustNotPairSeparates(t *testing.T) {
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d"},
		Capacities: core.CapacitySpec{2, 2},
		Affinity: []core.Pair{
			pair(t, "a", "b"),
			pair(t, "b", "c"),
			pair(t, "a", "d"),
		},
		MustNotPair: []core.Pair{pair(t, "a", "b")},
	}

	res, err := solver.Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if findUnit(res.Grouping.Units, "a") == findUnit(res.Grouping.Units, "b") {
		t.Errorf("a and b share a unit: %v", res.Grouping.Units)
	}
	if res.TotalAffinity != 2 {
		t.Errorf("TotalAffinity = %d; want 2", res.TotalAffinity)
	}
}

// TestSolve_MustPairKeepsTogether: a required pair always lands in one
// unit.
func TestSolve_MustPairKeepsTogether(t *testing.T) {
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d"},
		Capacities: core.CapacitySpec{2, 2},
		Affinity: []core.Pair{
			pair(t, "a", "b"),
			pair(t, "a", "c"),
			pair(t, "b", "d"),
		},
		MustPair: []core.Pair{pair(t, "a", "b")},
	}

	res, err := solver.Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	ua, ub := findUnit(res.Grouping.Units, "a"), findUnit(res.Grouping.Units, "b")
	if ua < 0 || ua != ub {
		t.Errorf("a in unit %d, b in unit %d; want same", ua, ub)
	}
}

// TestSolve_ConflictInfeasible covers both conflict shapes: a pair
// directly required and forbidden, and a forbidden pair trapped through
// a must-pair chain.
func TestSolve_ConflictInfeasible(t *testing.T) {
	base := solver.Problem{
		Roster:     []string{"a", "b", "c", "d"},
		Capacities: core.CapacitySpec{2, 2},
		Affinity: []core.Pair{
			pair(t, "a", "b"),
			pair(t, "b", "c"),
		},
	}

	direct := base
	direct.MustPair = []core.Pair{pair(t, "a", "b")}
	direct.MustNotPair = []core.Pair{pair(t, "a", "b")}
	if _, err := solver.Solve(direct); !errors.Is(err, cluster.ErrConfigurationInfeasible) {
		t.Errorf("direct conflict: %v; want ErrConfigurationInfeasible", err)
	}

	chained := base
	chained.MustPair = []core.Pair{pair(t, "a", "b"), pair(t, "b", "c")}
	chained.MustNotPair = []core.Pair{pair(t, "a", "c")}
	_, err := solver.Solve(chained)
	if !errors.Is(err, cluster.ErrConfigurationInfeasible) {
		t.Fatalf("chained conflict: %v; want ErrConfigurationInfeasible", err)
	}
	var conflict *cluster.ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err is not *ConflictError: %v", err)
	}
	if conflict.Pair != pair(t, "a", "c") {
		t.Errorf("conflict pair = %v; want a–c", conflict.Pair)
	}
}

// TestSolve_MustPairHygiene: required pairs must reference roster
// members and existing affinity edges.
func TestSolve_MustPairHygiene(t *testing.T) {
	base := solver.Problem{
		Roster:     []string{"a", "b", "c", "d"},
		Capacities: core.CapacitySpec{2, 2},
		Affinity:   []core.Pair{pair(t, "a", "b")},
	}

	outside := base
	outside.MustPair = []core.Pair{pair(t, "a", "zz")}
	if _, err := solver.Solve(outside); !errors.Is(err, solver.ErrUnknownPairEntity) {
		t.Errorf("outside roster: %v; want ErrUnknownPairEntity", err)
	}

	strangers := base
	strangers.MustPair = []core.Pair{pair(t, "c", "d")}
	if _, err := solver.Solve(strangers); !errors.Is(err, solver.ErrPairNotAffinity) {
		t.Errorf("no affinity edge: %v; want ErrPairNotAffinity", err)
	}
}

// TestSolve_AllClustersOversized: a three-member cluster with only
// two-slot units is unplaceable.
func TestSolve_AllClustersOversized(t *testing.T) {
	p := solver.Problem{
		Roster:     []string{"a", "b", "c"},
		Capacities: core.CapacitySpec{2},
		Affinity:   []core.Pair{pair(t, "a", "b"), pair(t, "b", "c")},
		MustPair:   []core.Pair{pair(t, "a", "b"), pair(t, "b", "c")},
	}

	if _, err := solver.Solve(p); !errors.Is(err, cluster.ErrCapacityInfeasible) {
		t.Errorf("err = %v; want ErrCapacityInfeasible", err)
	}
}

// TestSolve_OversizedClusterDropped: when other clusters remain, an
// oversized cluster moves to unassigned instead of failing the solve.
func TestSolve_OversizedClusterDropped(t *testing.T) {
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d"},
		Capacities: core.CapacitySpec{2, 2},
		Affinity:   []core.Pair{pair(t, "a", "b"), pair(t, "b", "c")},
		MustPair:   []core.Pair{pair(t, "a", "b"), pair(t, "b", "c")},
	}

	res, err := solver.Solve(p)
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !reflect.DeepEqual(res.Grouping.Unassigned, []string{"a", "b", "c"}) {
		t.Errorf("Unassigned = %v; want [a b c]", res.Grouping.Unassigned)
	}
	if res.TotalAffinity != 0 {
		t.Errorf("TotalAffinity = %d; want 0", res.TotalAffinity)
	}
	if err = res.Grouping.CheckRoster(p.Roster); err != nil {
		t.Errorf("grouping invariant violated: %v", err)
	}
}

// TestSolve_Deterministic: identical inputs and seed give identical
// results, sequentially and at any parallelism level.
func TestSolve_Deterministic(t *testing.T) {
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d", "e", "f", "g", "h"},
		Capacities: core.CapacitySpec{4, 4},
		Affinity: []core.Pair{
			pair(t, "a", "b"), pair(t, "b", "c"), pair(t, "c", "d"),
			pair(t, "d", "e"), pair(t, "e", "f"), pair(t, "f", "g"),
			pair(t, "g", "h"), pair(t, "h", "a"), pair(t, "a", "e"),
			pair(t, "b", "f"),
		},
	}

	first, err := solver.Solve(p, solver.WithSeed(42))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	second, err := solver.Solve(p, solver.WithSeed(42))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same seed produced different results:\n%+v\n%+v", first, second)
	}

	parallel, err := solver.Solve(p, solver.WithSeed(42), solver.WithParallelism(4))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if !reflect.DeepEqual(first, parallel) {
		t.Errorf("parallel result differs from sequential:\n%+v\n%+v", first, parallel)
	}

	if first.Seed != 42 || first.Restarts != solver.DefaultRestarts {
		t.Errorf("echoed parameters = seed %d restarts %d", first.Seed, first.Restarts)
	}
}

// TestSolve_InputValidation covers the cheap upfront rejections.
func TestSolve_InputValidation(t *testing.T) {
	valid := solver.Problem{
		Roster:     []string{"a", "b"},
		Capacities: core.CapacitySpec{2},
	}

	empty := valid
	empty.Roster = []string{"  ", ""}
	if _, err := solver.Solve(empty); !errors.Is(err, solver.ErrEmptyRoster) {
		t.Errorf("blank roster: %v; want ErrEmptyRoster", err)
	}

	dup := valid
	dup.Roster = []string{"a", "a"}
	if _, err := solver.Solve(dup); !errors.Is(err, core.ErrDuplicateID) {
		t.Errorf("duplicate roster: %v; want ErrDuplicateID", err)
	}

	noUnits := valid
	noUnits.Capacities = nil
	if _, err := solver.Solve(noUnits); !errors.Is(err, core.ErrNoUnits) {
		t.Errorf("no units: %v; want ErrNoUnits", err)
	}

	if _, err := solver.Solve(valid, solver.WithRestarts(0)); !errors.Is(err, solver.ErrInvalidOptions) {
		t.Errorf("zero restarts: %v; want ErrInvalidOptions", err)
	}
	if _, err := solver.Solve(valid, solver.WithMinCombatScore(1)); !errors.Is(err, solver.ErrInvalidOptions) {
		t.Errorf("threshold without scorer: %v; want ErrInvalidOptions", err)
	}
}

// combatContext builds a minimal two-class scorer for the combat-path
// tests: a and b run a leader mage, c and d a plain fighter.
func combatContext(t *testing.T, cfg combat.Config) *combat.Context {
	t.Helper()
	classes := []combat.ClassProfile{
		{ID: "mage", Roles: []string{"attacker"}, ClassTypes: []string{combat.CapabilityCaster},
			AssistType: "magick", UnitType: combat.UnitTypeFlying, Leader: true},
		{ID: "fighter", Roles: []string{"attacker"}, AssistType: combat.AssistNone,
			UnitType: combat.UnitTypeInfantry},
	}
	assignments := map[string]string{"a": "mage", "b": "mage", "c": "fighter", "d": "fighter"}
	ctx, err := combat.NewContext(classes, assignments, cfg)
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}

	return ctx
}

// TestSolve_CombatTieBreak: with zero affinity everywhere, the combat
// composite decides — presence scoring rewards spreading the mages.
func TestSolve_CombatTieBreak(t *testing.T) {
	cfg := combat.DefaultConfig()
	cfg.Diversity.Enabled = false
	ctx := combatContext(t, cfg)

	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d"},
		Capacities: core.CapacitySpec{2, 2},
	}
	res, err := solver.Solve(p, solver.WithCombatContext(ctx))
	if err != nil {
		t.Fatalf("Solve failed: %v", err)
	}
	if res.Combat == nil {
		t.Fatal("Combat summary missing")
	}
	if findUnit(res.Grouping.Units, "a") == findUnit(res.Grouping.Units, "b") {
		t.Errorf("mages share a unit despite composite tie-break: %v", res.Grouping.Units)
	}
}

// TestSolve_MinCombatThreshold: an unreachable threshold turns the best
// solution into a reported infeasibility carrying both scores.
func TestSolve_MinCombatThreshold(t *testing.T) {
	ctx := combatContext(t, combat.DefaultConfig())
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d"},
		Capacities: core.CapacitySpec{2, 2},
	}

	_, err := solver.Solve(p, solver.WithCombatContext(ctx), solver.WithMinCombatScore(1e6))
	if !errors.Is(err, solver.ErrBelowMinCombat) {
		t.Fatalf("err = %v; want ErrBelowMinCombat", err)
	}
	var below *solver.BelowThresholdError
	if !errors.As(err, &below) {
		t.Fatalf("err is not *BelowThresholdError: %v", err)
	}
	if below.Threshold != 1e6 || below.Score >= below.Threshold {
		t.Errorf("threshold error = %+v", below)
	}
}

// TestSolve_UnknownClassFailsFast: scoring enabled plus an entity with
// no class kills the solve before any search effort.
func TestSolve_UnknownClassFailsFast(t *testing.T) {
	ctx := combatContext(t, combat.DefaultConfig())
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "ghost"},
		Capacities: core.CapacitySpec{2, 2},
	}

	_, err := solver.Solve(p, solver.WithCombatContext(ctx))
	if !errors.Is(err, combat.ErrUnknownClass) {
		t.Fatalf("err = %v; want ErrUnknownClass", err)
	}
	var unknown *combat.UnknownClassError
	if !errors.As(err, &unknown) || unknown.Entity != "ghost" {
		t.Errorf("unknown entity = %+v; want ghost", unknown)
	}
}

// TestRandomGrouping_Valid: a sampled grouping obeys the same
// invariants as a solved one.
func TestRandomGrouping_Valid(t *testing.T) {
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d", "e"},
		Capacities: core.CapacitySpec{2, 2},
		Affinity:   []core.Pair{pair(t, "a", "b"), pair(t, "c", "d")},
		MustNotPair: []core.Pair{
			pair(t, "a", "c"),
		},
	}

	rng := rand.New(rand.NewSource(solver.DeriveSeed(9, 0)))
	g, err := solver.RandomGrouping(p, rng, 0)
	if err != nil {
		t.Fatalf("RandomGrouping failed: %v", err)
	}
	if err = g.CheckRoster(p.Roster); err != nil {
		t.Errorf("grouping invariant violated: %v", err)
	}
	for i, unit := range g.Units {
		if len(unit) > p.Capacities[i] {
			t.Errorf("unit %d holds %d members over capacity %d", i, len(unit), p.Capacities[i])
		}
	}
	if ua, uc := findUnit(g.Units, "a"), findUnit(g.Units, "c"); ua >= 0 && ua == uc {
		t.Errorf("forbidden pair a–c placed together: %v", g.Units)
	}
}

// TestSampler_MatchesSingleDraw: a reused sampler replays exactly the
// groupings the single-draw entry point produces under the same
// streams, so repeated sampling only amortizes the preparation cost.
func TestSampler_MatchesSingleDraw(t *testing.T) {
	p := solver.Problem{
		Roster:     []string{"a", "b", "c", "d", "e", "f"},
		Capacities: core.CapacitySpec{3, 3},
		Affinity: []core.Pair{
			pair(t, "a", "b"), pair(t, "c", "d"), pair(t, "e", "f"),
		},
	}

	s, err := solver.NewSampler(p)
	if err != nil {
		t.Fatalf("NewSampler failed: %v", err)
	}

	for stream := uint64(0); stream < 8; stream++ {
		seed := solver.DeriveSeed(21, stream)

		got, err := s.Grouping(rand.New(rand.NewSource(seed)), 0)
		if err != nil {
			t.Fatalf("stream %d: Grouping failed: %v", stream, err)
		}
		want, err := solver.RandomGrouping(p, rand.New(rand.NewSource(seed)), 0)
		if err != nil {
			t.Fatalf("stream %d: RandomGrouping failed: %v", stream, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("stream %d: sampler diverged:\n%v\n%v", stream, got, want)
		}
	}

	p.Capacities = nil
	if _, err = solver.NewSampler(p); !errors.Is(err, core.ErrNoUnits) {
		t.Errorf("NewSampler = %v; want ErrNoUnits", err)
	}
}

// TestDeriveSeed_Streams: distinct stream indices give distinct seeds
// and the mapping is stable.
func TestDeriveSeed_Streams(t *testing.T) {
	s0, s1 := solver.DeriveSeed(7, 0), solver.DeriveSeed(7, 1)
	if s0 == s1 {
		t.Error("adjacent streams must not collide")
	}
	if s0 != solver.DeriveSeed(7, 0) {
		t.Error("DeriveSeed must be pure")
	}
	if solver.DeriveSeed(0, 0) != solver.DeriveSeed(0, 0) {
		t.Error("zero base must be stable")
	}
}
