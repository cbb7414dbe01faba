package combat

// selectLeader picks a unit's leader, in priority order:
//  1. first member whose class carries the leader marker,
//  2. else first member with any resolved class,
//  3. else none ("" and false).
//
// Under the hard-failure class contract every member resolves, so (2)
// triggers only when no member is marked and (3) only for empty units.
//
// Complexity: O(members).
func (c *Context) selectLeader(unit []string) (string, bool) {
	for _, member := range unit {
		if profile, err := c.resolve(member); err == nil && profile.Leader {
			return member, true
		}
	}
	for _, member := range unit {
		if _, err := c.resolve(member); err == nil {
			return member, true
		}
	}

	return "", false
}

// leaderKey derives the diversity key for a leader per the configured
// mode. Unrecognized modes are rejected during Validate; the default
// arm mirrors ModeClass for safety.
func (c *Context) leaderKey(leader string) (string, error) {
	profile, err := c.resolve(leader)
	if err != nil {
		return "", err
	}

	switch c.cfg.Diversity.Mode {
	case ModeUnitType:
		return profile.UnitType, nil
	case ModeAssistType:
		return profile.AssistType, nil
	default:
		return profile.ID, nil
	}
}

// diversity scores leader-key uniqueness across the grouping:
//
//	score = bonus × distinct keys − penalty × repeats beyond first
//
// floored at zero.
//
// Error Conditions:
//   - ErrUnknownClass (via *UnknownClassError): a selected leader fails
//     to resolve.
//
// Complexity: O(units · members).
func (c *Context) diversity(units [][]string) (DiversitySummary, error) {
	var sum DiversitySummary
	for _, unit := range units {
		leader, ok := c.selectLeader(unit)
		if !ok {
			continue
		}
		key, err := c.leaderKey(leader)
		if err != nil {
			return DiversitySummary{}, err
		}
		sum.Leaders = append(sum.Leaders, leader)
		sum.LeaderKeys = append(sum.LeaderKeys, key)
	}

	unique := make(map[string]struct{}, len(sum.LeaderKeys))
	for _, key := range sum.LeaderKeys {
		unique[key] = struct{}{}
	}
	sum.UniqueCount = len(unique)
	sum.DuplicateCount = len(sum.LeaderKeys) - sum.UniqueCount

	score := c.cfg.Diversity.UniqueLeaderBonus*float64(sum.UniqueCount) -
		c.cfg.Diversity.DuplicateLeaderPenalty*float64(sum.DuplicateCount)
	if score < 0 {
		score = 0
	}
	sum.Score = score

	return sum, nil
}
