package combat

// coverage computes army-wide assist-type and unit-type coverage across
// every unit of the grouping. No hard requirement is enforced: a type
// that never appears simply earns zero.
//
// Per configured tag with count ≥ 1:
//
//	bonus = weight × (1 + TargetMultiplier × (count − 1))
//
// so multiplier 0 caps at first occurrence and 1 scales linearly.
//
// Error Conditions:
//   - ErrUnknownClass (via *UnknownClassError): any member fails to resolve.
//
// Complexity: O(members + weights).
func (c *Context) coverage(units [][]string) (CoverageSummary, error) {
	sum := CoverageSummary{
		AssistTypeCounts: make(map[string]int),
		UnitTypeCounts:   make(map[string]int),
	}

	for _, unit := range units {
		for _, member := range unit {
			profile, err := c.resolve(member)
			if err != nil {
				return CoverageSummary{}, err
			}
			if profile.AssistType != "" && profile.AssistType != AssistNone {
				sum.AssistTypeCounts[profile.AssistType]++
			}
			if profile.UnitType != "" {
				sum.UnitTypeCounts[profile.UnitType]++
			}
		}
	}

	mult := c.cfg.Coverage.TargetMultiplier
	for _, tag := range sortedKeys(c.cfg.Coverage.AssistTypeWeights) {
		if count := sum.AssistTypeCounts[tag]; count > 0 {
			sum.AssistTypeScore += c.cfg.Coverage.AssistTypeWeights[tag] * (1 + mult*float64(count-1))
		}
	}
	for _, tag := range sortedKeys(c.cfg.Coverage.UnitTypeWeights) {
		if count := sum.UnitTypeCounts[tag]; count > 0 {
			sum.UnitTypeScore += c.cfg.Coverage.UnitTypeWeights[tag] * (1 + mult*float64(count-1))
		}
	}
	sum.TotalScore = sum.AssistTypeScore + sum.UnitTypeScore

	return sum, nil
}
