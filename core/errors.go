package core

import "errors"

var (
	// ErrEmptyID indicates an entity identifier was empty after trimming.
	ErrEmptyID = errors.New("core: entity id must be non-empty")
	// ErrSelfPair indicates a pair was built from two identical ids.
	ErrSelfPair = errors.New("core: pair cannot contain identical ids")
	// ErrDuplicateID indicates the same entity id appears twice in a roster.
	ErrDuplicateID = errors.New("core: duplicate entity id in roster")
	// ErrNoUnits indicates an empty capacity specification.
	ErrNoUnits = errors.New("core: at least one unit capacity is required")
	// ErrBadCapacity indicates a non-positive unit capacity.
	ErrBadCapacity = errors.New("core: unit capacities must be positive")
)
