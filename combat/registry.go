package combat

// Vocabulary is the open tag registry derived from the class profiles:
// the set of tags a weight table may legally reference. Deriving it
// from data keeps vocabularies configuration-driven — a new tag becomes
// valid the moment a class carries it.
type Vocabulary struct {
	Roles        map[string]struct{}
	Capabilities map[string]struct{}
	AssistTypes  map[string]struct{}
	UnitTypes    map[string]struct{}
}

// NewVocabulary collects every tag the class set can produce, plus the
// built-in roles and the derived capability, assist and unit-type tags,
// so that weighting any of them is always legal.
//
// Complexity: O(total tags).
func NewVocabulary(classes ClassIndex) Vocabulary {
	v := Vocabulary{
		Roles:        make(map[string]struct{}),
		Capabilities: make(map[string]struct{}),
		AssistTypes:  make(map[string]struct{}),
		UnitTypes:    make(map[string]struct{}),
	}

	// Built-in tags are always recognizable, even when no loaded class
	// currently produces them: the standard roles, derived capabilities,
	// assist and unit types the default config and presets weight.
	for _, tag := range []string{RoleAttacker, RoleDefender, RoleHealer, RoleSupport} {
		v.Roles[tag] = struct{}{}
	}
	for _, tag := range []string{
		CapabilityAssist, CapabilityCavalry, CapabilityFlying,
		CapabilityArcher, CapabilityCaster,
	} {
		v.Capabilities[tag] = struct{}{}
	}
	for _, tag := range []string{AssistRanged, AssistMagick, AssistHealing} {
		v.AssistTypes[tag] = struct{}{}
	}
	for _, tag := range []string{UnitTypeInfantry, UnitTypeCavalry, UnitTypeFlying} {
		v.UnitTypes[tag] = struct{}{}
	}

	for _, c := range classes {
		for _, tag := range c.Roles {
			v.Roles[tag] = struct{}{}
		}
		for _, tag := range c.Capabilities {
			v.Capabilities[tag] = struct{}{}
		}
		for _, tag := range c.ClassTypes {
			v.Capabilities[tag] = struct{}{}
		}
		if c.AssistType != "" && c.AssistType != AssistNone {
			v.AssistTypes[c.AssistType] = struct{}{}
		}
		if c.UnitType != "" {
			v.UnitTypes[c.UnitType] = struct{}{}
		}
	}

	return v
}

// Validate checks cfg against the vocabulary: all weights non-negative,
// all weighted tags recognized, target multiplier within [0,1], and a
// known diversity mode.
//
// Error Conditions:
//   - ErrInvalidWeight (via *WeightError) for the first offense found,
//     scanning tables in a fixed order with sorted keys so the reported
//     entry is deterministic.
//
// Complexity: O(total weights · log).
func (v Vocabulary) Validate(cfg Config) error {
	if err := checkTable("roles", cfg.RoleWeights, v.Roles); err != nil {
		return err
	}
	if err := checkTable("capabilities", cfg.CapabilityWeights, v.Capabilities); err != nil {
		return err
	}
	if cfg.Coverage.Enabled {
		if err := checkTable("assist_types", cfg.Coverage.AssistTypeWeights, v.AssistTypes); err != nil {
			return err
		}
		if err := checkTable("unit_types", cfg.Coverage.UnitTypeWeights, v.UnitTypes); err != nil {
			return err
		}
		if m := cfg.Coverage.TargetMultiplier; m < 0 || m > 1 {
			return &WeightError{Table: "coverage", Reason: "multiplier out of range", Value: m}
		}
	}
	if cfg.Diversity.Enabled {
		if cfg.Diversity.UniqueLeaderBonus < 0 {
			return &WeightError{Table: "diversity", Tag: "unique_leader_bonus",
				Reason: "negative", Value: cfg.Diversity.UniqueLeaderBonus}
		}
		if cfg.Diversity.DuplicateLeaderPenalty < 0 {
			return &WeightError{Table: "diversity", Tag: "duplicate_leader_penalty",
				Reason: "negative", Value: cfg.Diversity.DuplicateLeaderPenalty}
		}
		switch cfg.Diversity.Mode {
		case ModeClass, ModeUnitType, ModeAssistType:
			// recognized
		default:
			return &WeightError{Table: "diversity", Tag: string(cfg.Diversity.Mode),
				Reason: "unknown tag"}
		}
	}

	return nil
}

// checkTable validates a single weight table against its vocabulary.
func checkTable(name string, weights map[string]float64, vocab map[string]struct{}) error {
	for _, tag := range sortedKeys(weights) {
		w := weights[tag]
		if w < 0 {
			return &WeightError{Table: name, Tag: tag, Reason: "negative", Value: w}
		}
		if _, ok := vocab[tag]; !ok {
			return &WeightError{Table: name, Tag: tag, Reason: "unknown tag", Value: w}
		}
	}

	return nil
}
