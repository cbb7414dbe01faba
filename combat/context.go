package combat

import "sort"

// Context binds a class index, the entity→class resolution and a
// validated configuration into a ready-to-use scorer. Immutable after
// construction; safe for concurrent use.
type Context struct {
	classes     ClassIndex
	assignments map[string]string
	cfg         Config
}

// NewContext validates cfg against the vocabulary derived from classes
// and returns the scorer.
//
// Error Conditions:
//   - ErrInvalidWeight : cfg references unknown tags, negative weights,
//     an out-of-range multiplier, or an unknown diversity mode.
//
// Complexity: O(total tags + total weights).
func NewContext(classes []ClassProfile, assignments map[string]string, cfg Config) (*Context, error) {
	index := NewClassIndex(classes)
	if err := NewVocabulary(index).Validate(cfg); err != nil {
		return nil, err
	}

	// Copy the assignment map so later caller mutation cannot leak in.
	resolved := make(map[string]string, len(assignments))
	for id, classID := range assignments {
		resolved[id] = classID
	}

	return &Context{classes: index, assignments: resolved, cfg: cfg}, nil
}

// Config returns the validated configuration value.
func (c *Context) Config() Config { return c.cfg }

// CheckRoster verifies that every id resolves to a known class. The
// solver calls this before spending any search effort, so an
// unresolvable entity fails the whole solve up front.
//
// Error Conditions:
//   - ErrUnknownClass (via *UnknownClassError) naming the first
//     unresolvable id, in roster order.
//
// Complexity: O(n).
func (c *Context) CheckRoster(ids []string) error {
	for _, id := range ids {
		if _, err := c.resolve(id); err != nil {
			return err
		}
	}

	return nil
}

// resolve maps an entity to its class profile. Missing assignment or a
// dangling class id are both hard failures naming the entity.
func (c *Context) resolve(entity string) (ClassProfile, error) {
	classID, ok := c.assignments[entity]
	if !ok || classID == "" {
		return ClassProfile{}, &UnknownClassError{Entity: entity}
	}
	profile, ok := c.classes[classID]
	if !ok {
		return ClassProfile{}, &UnknownClassError{Entity: entity}
	}

	return profile, nil
}

// sortedKeys returns map keys in ascending order; scoring outputs and
// validation scans both need deterministic iteration.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
