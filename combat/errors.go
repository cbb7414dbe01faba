package combat

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownClass indicates a scored entity has no resolvable class.
	ErrUnknownClass = errors.New("combat: entity has no resolvable class")
	// ErrInvalidWeight indicates a negative weight, an unrecognized tag,
	// or an out-of-range target multiplier in the scoring configuration.
	ErrInvalidWeight = errors.New("combat: invalid scoring weight configuration")
	// ErrUnknownPreset indicates an unrecognized preset name.
	ErrUnknownPreset = errors.New("combat: unknown scoring preset")
)

// UnknownClassError names the entity whose class could not be resolved.
// errors.Is matches ErrUnknownClass.
type UnknownClassError struct {
	Entity string
}

// Error names the offending entity.
func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("combat: entity %q has no resolvable class", e.Entity)
}

// Unwrap ties the detail error to the package sentinel.
func (e *UnknownClassError) Unwrap() error { return ErrUnknownClass }

// WeightError identifies the offending weight table entry.
// errors.Is matches ErrInvalidWeight.
type WeightError struct {
	// Table is the weight table name (e.g. "roles", "assist_types").
	Table string
	// Tag is the offending key, empty for table-level problems.
	Tag string
	// Value is the rejected weight or multiplier.
	Value float64
	// Reason is a short machine-independent cause ("negative",
	// "unknown tag", "multiplier out of range").
	Reason string
}

// Error renders table, tag and reason.
func (e *WeightError) Error() string {
	if e.Tag == "" {
		return fmt.Sprintf("combat: %s: %s (%v)", e.Table, e.Reason, e.Value)
	}

	return fmt.Sprintf("combat: %s[%s]: %s (%v)", e.Table, e.Tag, e.Reason, e.Value)
}

// Unwrap ties the detail error to the package sentinel.
func (e *WeightError) Unwrap() error { return ErrInvalidWeight }
