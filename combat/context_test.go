package combat

import (
	"errors"
	"math"
	"testing"
)

// testClasses is a small but representative class set: two plain
// attackers, a healer with an assist, a caster archetype and two
// cavalry leaders.
func testClasses() []ClassProfile {
	return []ClassProfile{
		{ID: "fighter", Roles: []string{"attacker"}, AssistType: AssistNone, UnitType: UnitTypeInfantry},
		{ID: "guard", Roles: []string{"defender"}, AssistType: AssistNone, UnitType: UnitTypeInfantry},
		{ID: "cleric", Roles: []string{"healer"}, AssistType: "healing", UnitType: UnitTypeInfantry},
		{ID: "mage", Roles: []string{"attacker"}, ClassTypes: []string{CapabilityCaster}, AssistType: "magick", UnitType: UnitTypeFlying, Leader: true},
		{ID: "rider", Roles: []string{"attacker"}, AssistType: AssistNone, UnitType: UnitTypeCavalry, Leader: true},
		{ID: "lancer", Roles: []string{"defender"}, AssistType: AssistNone, UnitType: UnitTypeCavalry, Leader: true},
	}
}

func testAssignments() map[string]string {
	return map[string]string{
		"ann": "fighter",
		"bob": "fighter",
		"cat": "cleric",
		"dee": "mage",
		"eli": "rider",
		"fox": "lancer",
		"gus": "guard",
		"hal": "mage",
	}
}

// unitOnlyConfig scores units in isolation: coverage and diversity off.
func unitOnlyConfig() Config {
	cfg := DefaultConfig()
	cfg.Coverage.Enabled = false
	cfg.Diversity.Enabled = false

	return cfg
}

func newTestContext(t *testing.T, cfg Config) *Context {
	t.Helper()
	ctx, err := NewContext(testClasses(), testAssignments(), cfg)
	if err != nil {
		t.Fatalf("NewContext failed: %v", err)
	}

	return ctx
}

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

// TestSummarize_PresenceScoring: each configured weight is earned at
// most once per unit, no matter how many members carry the tag.
func TestSummarize_PresenceScoring(t *testing.T) {
	ctx := newTestContext(t, unitOnlyConfig())

	cases := []struct {
		name string
		unit []string
		want float64
	}{
		// Two attackers still earn attacker once.
		{"duplicate role", []string{"ann", "bob"}, 1.0},
		// attacker 1.0 + healer 1.0 + assist 0.5 (cleric's healing).
		{"attacker healer", []string{"ann", "cat"}, 2.5},
		// attacker 1.0 + assist 0.5 + caster 0.5 + flying 0.5.
		{"caster derived tags", []string{"ann", "dee"}, 2.5},
		// attacker 1.0 + cavalry 0.5.
		{"cavalry derived", []string{"eli"}, 1.5},
		{"empty unit", nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := ctx.Summarize([][]string{tc.unit})
			if err != nil {
				t.Fatalf("Summarize failed: %v", err)
			}
			if !almostEqual(sum.TotalScore, tc.want) {
				t.Errorf("score = %v; want %v", sum.TotalScore, tc.want)
			}
		})
	}
}

// TestSummarize_PermutationInvariant: member order inside a unit never
// changes any score component.
func TestSummarize_PermutationInvariant(t *testing.T) {
	ctx := newTestContext(t, DefaultConfig())

	s1, err := ctx.Summarize([][]string{{"ann", "cat", "dee"}, {"eli", "fox"}})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	s2, err := ctx.Summarize([][]string{{"dee", "ann", "cat"}, {"fox", "eli"}})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	if !almostEqual(s1.CompositeTotal, s2.CompositeTotal) {
		t.Errorf("composite differs under permutation: %v vs %v",
			s1.CompositeTotal, s2.CompositeTotal)
	}
	if !almostEqual(s1.TotalScore, s2.TotalScore) {
		t.Errorf("unit total differs under permutation: %v vs %v",
			s1.TotalScore, s2.TotalScore)
	}
}

// TestSummarize_UnknownClass: an unresolvable member is a hard failure
// naming the entity, never a silent zero.
func TestSummarize_UnknownClass(t *testing.T) {
	ctx := newTestContext(t, unitOnlyConfig())

	_, err := ctx.Summarize([][]string{{"ann", "stranger"}})
	if !errors.Is(err, ErrUnknownClass) {
		t.Fatalf("err = %v; want ErrUnknownClass", err)
	}
	var unknown *UnknownClassError
	if !errors.As(err, &unknown) {
		t.Fatalf("err is not *UnknownClassError: %v", err)
	}
	if unknown.Entity != "stranger" {
		t.Errorf("entity = %q; want stranger", unknown.Entity)
	}
}

// TestCheckRoster mirrors the solver's upfront contract.
func TestCheckRoster(t *testing.T) {
	ctx := newTestContext(t, unitOnlyConfig())

	if err := ctx.CheckRoster([]string{"ann", "bob", "cat"}); err != nil {
		t.Errorf("CheckRoster = %v; want nil", err)
	}
	if err := ctx.CheckRoster([]string{"ann", "ghost"}); !errors.Is(err, ErrUnknownClass) {
		t.Errorf("CheckRoster = %v; want ErrUnknownClass", err)
	}
}

// TestCoverage_TargetMultiplier: multiplier 0 caps a tag's bonus at
// first occurrence; multiplier 1 grows it linearly with count.
func TestCoverage_TargetMultiplier(t *testing.T) {
	cfg := unitOnlyConfig()
	cfg.Coverage = CoverageConfig{
		Enabled:           true,
		AssistTypeWeights: map[string]float64{"magick": 1.0},
		TargetMultiplier:  0,
	}

	// Two magick assists in the army: dee and hal both run mage.
	units := [][]string{{"dee"}, {"hal"}}

	ctx := newTestContext(t, cfg)
	sum, err := ctx.Summarize(units)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if !almostEqual(sum.Coverage.TotalScore, 1.0) {
		t.Errorf("multiplier 0: coverage = %v; want 1.0", sum.Coverage.TotalScore)
	}

	cfg.Coverage.TargetMultiplier = 1
	ctx = newTestContext(t, cfg)
	sum, err = ctx.Summarize(units)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if !almostEqual(sum.Coverage.TotalScore, 2.0) {
		t.Errorf("multiplier 1: coverage = %v; want 2.0", sum.Coverage.TotalScore)
	}
	if sum.Coverage.AssistTypeCounts["magick"] != 2 {
		t.Errorf("magick count = %d; want 2", sum.Coverage.AssistTypeCounts["magick"])
	}
}

// TestDiversity_Modes: the same leaders key differently per mode —
// distinct classes on the same mount are unique under ModeClass and
// duplicates under ModeUnitType.
func TestDiversity_Modes(t *testing.T) {
	cfg := unitOnlyConfig()
	cfg.Diversity = DiversityConfig{
		Enabled:                true,
		UniqueLeaderBonus:      1.0,
		DuplicateLeaderPenalty: 0.5,
		Mode:                   ModeClass,
	}
	units := [][]string{{"eli"}, {"fox"}} // rider and lancer, both cavalry

	ctx := newTestContext(t, cfg)
	sum, err := ctx.Summarize(units)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if sum.Diversity.UniqueCount != 2 || !almostEqual(sum.Diversity.Score, 2.0) {
		t.Errorf("class mode: unique=%d score=%v; want 2 / 2.0",
			sum.Diversity.UniqueCount, sum.Diversity.Score)
	}

	cfg.Diversity.Mode = ModeUnitType
	ctx = newTestContext(t, cfg)
	sum, err = ctx.Summarize(units)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if sum.Diversity.UniqueCount != 1 || sum.Diversity.DuplicateCount != 1 {
		t.Errorf("unit_type mode: unique=%d dup=%d; want 1/1",
			sum.Diversity.UniqueCount, sum.Diversity.DuplicateCount)
	}
	if !almostEqual(sum.Diversity.Score, 0.5) {
		t.Errorf("unit_type mode: score = %v; want 0.5", sum.Diversity.Score)
	}
}

// TestDiversity_ScoreFloor: heavy duplication never drives the score
// negative.
func TestDiversity_ScoreFloor(t *testing.T) {
	cfg := unitOnlyConfig()
	cfg.Diversity = DiversityConfig{
		Enabled:                true,
		UniqueLeaderBonus:      0.1,
		DuplicateLeaderPenalty: 5.0,
		Mode:                   ModeUnitType,
	}
	ctx := newTestContext(t, cfg)

	sum, err := ctx.Summarize([][]string{{"eli"}, {"fox"}, {"eli"}})
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if sum.Diversity.Score != 0 {
		t.Errorf("score = %v; want floor 0", sum.Diversity.Score)
	}
}

// TestValidate_RejectsBadWeights: unknown tags, negative weights and
// out-of-range multipliers are configuration errors with context.
func TestValidate_RejectsBadWeights(t *testing.T) {
	base := unitOnlyConfig()

	t.Run("unknown role tag", func(t *testing.T) {
		cfg := base
		cfg.RoleWeights = map[string]float64{"berserk": 1.0}
		_, err := NewContext(testClasses(), testAssignments(), cfg)
		if !errors.Is(err, ErrInvalidWeight) {
			t.Fatalf("err = %v; want ErrInvalidWeight", err)
		}
		var weight *WeightError
		if !errors.As(err, &weight) || weight.Table != "roles" || weight.Tag != "berserk" {
			t.Errorf("weight error context = %+v", weight)
		}
	})

	t.Run("negative capability weight", func(t *testing.T) {
		cfg := base
		cfg.CapabilityWeights = map[string]float64{CapabilityAssist: -0.5}
		if _, err := NewContext(testClasses(), testAssignments(), cfg); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("err = %v; want ErrInvalidWeight", err)
		}
	})

	t.Run("multiplier out of range", func(t *testing.T) {
		cfg := base
		cfg.Coverage.Enabled = true
		cfg.Coverage.TargetMultiplier = 1.5
		if _, err := NewContext(testClasses(), testAssignments(), cfg); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("err = %v; want ErrInvalidWeight", err)
		}
	})

	t.Run("unknown diversity mode", func(t *testing.T) {
		cfg := base
		cfg.Diversity.Enabled = true
		cfg.Diversity.Mode = DiversityMode("zodiac")
		if _, err := NewContext(testClasses(), testAssignments(), cfg); !errors.Is(err, ErrInvalidWeight) {
			t.Errorf("err = %v; want ErrInvalidWeight", err)
		}
	})
}

// TestNewContext_DefaultConfigAnyClassSet: the default weights and all
// presets validate against any class set, even one producing a single
// role tag — the built-in vocabulary covers the rest.
func TestNewContext_DefaultConfigAnyClassSet(t *testing.T) {
	classes := []ClassProfile{
		{ID: "fighter", Roles: []string{RoleAttacker}, AssistType: AssistNone, UnitType: UnitTypeInfantry},
	}
	assignments := map[string]string{"ann": "fighter"}

	if _, err := NewContext(classes, assignments, DefaultConfig()); err != nil {
		t.Fatalf("NewContext with defaults failed: %v", err)
	}
	for _, name := range PresetNames() {
		cfg, err := ApplyPreset(DefaultConfig(), name)
		if err != nil {
			t.Fatalf("ApplyPreset(%s) failed: %v", name, err)
		}
		if _, err = NewContext(classes, assignments, cfg); err != nil {
			t.Errorf("preset %s rejected: %v", name, err)
		}
	}
}

// TestApplyPreset: presets replace coverage and diversity values and
// leave the base role weights alone.
func TestApplyPreset(t *testing.T) {
	base := DefaultConfig()
	got, err := ApplyPreset(base, PresetOffensive)
	if err != nil {
		t.Fatalf("ApplyPreset failed: %v", err)
	}
	if !almostEqual(got.Coverage.AssistTypeWeights["ranged"], 1.0) {
		t.Errorf("ranged weight = %v; want 1.0", got.Coverage.AssistTypeWeights["ranged"])
	}
	if !almostEqual(got.Diversity.DuplicateLeaderPenalty, 0.3) {
		t.Errorf("penalty = %v; want 0.3", got.Diversity.DuplicateLeaderPenalty)
	}
	if !almostEqual(got.RoleWeights["attacker"], base.RoleWeights["attacker"]) {
		t.Error("preset must not touch role weights")
	}

	if _, err = ApplyPreset(base, "glass-cannon"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("unknown preset: %v; want ErrUnknownPreset", err)
	}
}
