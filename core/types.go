package core

// Entity is one assignable roster member. Immutable, sourced externally.
type Entity struct {
	// ID is the unique identifier used throughout the solver.
	ID string
	// Name is an optional display name; the solver never reads it.
	Name string
}

// CapacitySpec is the ordered sequence of unit slot counts.
type CapacitySpec []int

// Validate checks the specification shape.
//
// Error Conditions:
//   - ErrNoUnits     : the spec is empty.
//   - ErrBadCapacity : any capacity is < 1.
//
// Complexity: O(n).
func (c CapacitySpec) Validate() error {
	if len(c) == 0 {
		return ErrNoUnits
	}
	for _, size := range c {
		if size < 1 {
			return ErrBadCapacity
		}
	}

	return nil
}

// Total returns the sum of all unit capacities.
func (c CapacitySpec) Total() int {
	var total int
	for _, size := range c {
		total += size
	}

	return total
}

// Max returns the largest single unit capacity, or 0 for an empty spec.
func (c CapacitySpec) Max() int {
	var max int
	for _, size := range c {
		if size > max {
			max = size
		}
	}

	return max
}

// Grouping is the assignment output shape: one ordered member list per
// unit plus the unassigned remainder. Invariant: every roster entity
// appears in exactly one unit or in Unassigned, never both, never twice.
type Grouping struct {
	Units      [][]string
	Unassigned []string
}

// Members returns all assigned entity ids, unit by unit.
//
// Complexity: O(n).
func (g Grouping) Members() []string {
	var out []string
	for _, unit := range g.Units {
		out = append(out, unit...)
	}

	return out
}

// CheckRoster verifies the Grouping invariant against a roster: each
// roster id appears exactly once across units and unassigned, and no
// foreign ids appear. Returns ErrDuplicateID on double placement and
// ErrEmptyID when an id is missing entirely.
//
// Complexity: O(n).
func (g Grouping) CheckRoster(roster []string) error {
	seen := make(map[string]int, len(roster))
	for _, id := range g.Members() {
		seen[id]++
	}
	for _, id := range g.Unassigned {
		seen[id]++
	}
	for _, id := range roster {
		switch seen[id] {
		case 1:
			// placed exactly once
		case 0:
			return ErrEmptyID
		default:
			return ErrDuplicateID
		}
	}

	return nil
}
