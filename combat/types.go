package combat

// AssistNone marks a class that grants no assist; such classes neither
// earn the derived "assist" capability nor count toward assist coverage.
const AssistNone = "none"

// Derived capability tags contributed by class metadata rather than the
// explicit capability list.
const (
	CapabilityAssist  = "assist"
	CapabilityCavalry = "cavalry"
	CapabilityFlying  = "flying"
	CapabilityArcher  = "archer"
	CapabilityCaster  = "caster"
)

// Built-in unit types that double as derived capabilities.
const (
	UnitTypeInfantry = "infantry"
	UnitTypeCavalry  = "cavalry"
	UnitTypeFlying   = "flying"
)

// Built-in assist types; always legal in coverage weight tables.
const (
	AssistRanged  = "ranged"
	AssistMagick  = "magick"
	AssistHealing = "healing"
)

// Built-in role tags; always legal in role weight tables.
const (
	RoleAttacker = "attacker"
	RoleDefender = "defender"
	RoleHealer   = "healer"
	RoleSupport  = "support"
)

// ClassProfile describes one class: its tag categories and whether it
// marks its bearer as a leader candidate. Supplied externally; the
// scorer treats it as a read-only lookup.
type ClassProfile struct {
	ID           string
	Roles        []string
	Capabilities []string
	// AssistType is the class's assist category, AssistNone when absent.
	AssistType string
	// UnitType is the movement/deployment category (infantry, cavalry, …).
	UnitType string
	// ClassTypes are free-form archetype tags ("archer", "caster", …)
	// that surface as derived capabilities.
	ClassTypes []string
	// Leader marks the class as a leader category for diversity scoring.
	Leader bool
}

// ClassIndex resolves class id → profile.
type ClassIndex map[string]ClassProfile

// NewClassIndex builds the lookup from a profile list. Later duplicates
// win, matching last-definition semantics of configuration files.
func NewClassIndex(classes []ClassProfile) ClassIndex {
	index := make(ClassIndex, len(classes))
	for _, c := range classes {
		index[c.ID] = c
	}

	return index
}

// DiversityMode selects the leader diversity key.
type DiversityMode string

const (
	// ModeClass keys diversity on the leader's class id.
	ModeClass DiversityMode = "class"
	// ModeUnitType keys diversity on the leader's unit-type tag.
	ModeUnitType DiversityMode = "unit_type"
	// ModeAssistType keys diversity on the leader's assist-type tag.
	ModeAssistType DiversityMode = "assist_type"
)

// CoverageConfig weights army-wide type coverage.
type CoverageConfig struct {
	Enabled           bool
	AssistTypeWeights map[string]float64
	UnitTypeWeights   map[string]float64
	// TargetMultiplier scales repeat occurrences: 0 caps each tag's
	// bonus at first occurrence, 1 grows it linearly with count.
	TargetMultiplier float64
}

// DiversityConfig weights leader diversity.
type DiversityConfig struct {
	Enabled                bool
	UniqueLeaderBonus      float64
	DuplicateLeaderPenalty float64
	Mode                   DiversityMode
}

// Config is the complete scoring configuration. Pass it by value; the
// scorer never mutates it and no package-level state exists.
type Config struct {
	RoleWeights       map[string]float64
	CapabilityWeights map[string]float64
	Coverage          CoverageConfig
	Diversity         DiversityConfig
}

// DefaultConfig returns the baseline configuration: unit presence
// weights for the common roles and derived capabilities, flat coverage
// bonuses, and class-keyed leader diversity.
func DefaultConfig() Config {
	return Config{
		RoleWeights: map[string]float64{
			RoleAttacker: 1.0,
			RoleDefender: 1.0,
			RoleHealer:   1.0,
			RoleSupport:  0.5,
		},
		CapabilityWeights: map[string]float64{
			CapabilityAssist:  0.5,
			CapabilityCavalry: 0.5,
			CapabilityFlying:  0.5,
			CapabilityArcher:  0.5,
			CapabilityCaster:  0.5,
		},
		Coverage: CoverageConfig{
			Enabled: true,
			AssistTypeWeights: map[string]float64{
				AssistRanged:  0.5,
				AssistMagick:  0.5,
				AssistHealing: 0.5,
			},
			UnitTypeWeights: map[string]float64{
				UnitTypeInfantry: 0.3,
				UnitTypeCavalry:  0.3,
				UnitTypeFlying:   0.3,
			},
			TargetMultiplier: 0.0,
		},
		Diversity: DiversityConfig{
			Enabled:                true,
			UniqueLeaderBonus:      1.0,
			DuplicateLeaderPenalty: 0.5,
			Mode:                   ModeClass,
		},
	}
}

// Breakdown is one unit's tag-presence counts and score. JSON tags
// exist because summaries are part of the CLI's output contract.
type Breakdown struct {
	// Roles maps role tag → member count carrying it.
	Roles map[string]int `json:"roles"`
	// Capabilities maps capability tag (explicit + derived) → count.
	Capabilities map[string]int `json:"capabilities"`
	// Score is the presence-based unit score.
	Score float64 `json:"score"`
}

// CoverageSummary is the army-wide type coverage result.
type CoverageSummary struct {
	AssistTypeCounts map[string]int `json:"assist_type_counts,omitempty"`
	UnitTypeCounts   map[string]int `json:"unit_type_counts,omitempty"`
	AssistTypeScore  float64        `json:"assist_type_score"`
	UnitTypeScore    float64        `json:"unit_type_score"`
	TotalScore       float64        `json:"total_score"`
}

// DiversitySummary is the leader diversity result.
type DiversitySummary struct {
	// Leaders lists the selected leader per unit, skipping units with none.
	Leaders []string `json:"leaders,omitempty"`
	// LeaderKeys lists each leader's diversity key, aligned with Leaders.
	LeaderKeys     []string `json:"leader_keys,omitempty"`
	UniqueCount    int      `json:"unique_count"`
	DuplicateCount int      `json:"duplicate_count"`
	Score          float64  `json:"score"`
}

// Summary aggregates all combat scoring for one grouping.
type Summary struct {
	UnitScores     []float64   `json:"unit_scores"`
	UnitBreakdowns []Breakdown `json:"unit_breakdowns"`
	// TotalScore is the sum of unit scores.
	TotalScore float64          `json:"total_score"`
	Coverage   CoverageSummary  `json:"coverage"`
	Diversity  DiversitySummary `json:"diversity"`
	// CompositeTotal = TotalScore + Coverage.TotalScore + Diversity.Score.
	// This is the solver's secondary selection key.
	CompositeTotal float64 `json:"composite_total"`
}
