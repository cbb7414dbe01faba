package combat

// derivedCapabilities folds class metadata into the capability set:
// a non-none assist type grants "assist", cavalry/flying unit types
// grant their own tag, and archetype class-types pass through.
func derivedCapabilities(profile ClassProfile, into map[string]int) {
	for _, tag := range profile.Capabilities {
		into[tag]++
	}
	if profile.AssistType != "" && profile.AssistType != AssistNone {
		into[CapabilityAssist]++
	}
	switch profile.UnitType {
	case UnitTypeCavalry:
		into[CapabilityCavalry]++
	case UnitTypeFlying:
		into[CapabilityFlying]++
	}
	for _, tag := range profile.ClassTypes {
		into[tag]++
	}
}

// breakdownUnit counts role and capability tags among the unit's
// members and scores presence. Each configured weight is earned at most
// once per unit regardless of how many members carry the tag, so the
// score is invariant under member permutation.
//
// Error Conditions:
//   - ErrUnknownClass (via *UnknownClassError): any member fails to
//     resolve. Hard failure by contract, not a zero-score fallback.
//
// Complexity: O(members · tags + weights).
func (c *Context) breakdownUnit(unit []string) (Breakdown, error) {
	b := Breakdown{
		Roles:        make(map[string]int),
		Capabilities: make(map[string]int),
	}

	for _, member := range unit {
		profile, err := c.resolve(member)
		if err != nil {
			return Breakdown{}, err
		}
		for _, tag := range profile.Roles {
			b.Roles[tag]++
		}
		derivedCapabilities(profile, b.Capabilities)
	}

	// Presence-based scoring: weight counts once when the tag is present.
	for _, tag := range sortedKeys(c.cfg.RoleWeights) {
		if b.Roles[tag] > 0 {
			b.Score += c.cfg.RoleWeights[tag]
		}
	}
	for _, tag := range sortedKeys(c.cfg.CapabilityWeights) {
		if b.Capabilities[tag] > 0 {
			b.Score += c.cfg.CapabilityWeights[tag]
		}
	}

	return b, nil
}
