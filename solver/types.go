package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/muster/combat"
	"github.com/katalvlaran/muster/core"
)

var (
	// ErrEmptyRoster indicates a solve with no entities at all.
	ErrEmptyRoster = errors.New("solver: roster must not be empty")
	// ErrInvalidOptions indicates negative restart/iteration/parallelism
	// settings.
	ErrInvalidOptions = errors.New("solver: invalid solve options")
	// ErrUnknownPairEntity indicates a must-pair edge referencing an id
	// outside the roster.
	ErrUnknownPairEntity = errors.New("solver: must-pair edge references id outside roster")
	// ErrPairNotAffinity indicates a must-pair edge that is not a
	// rapport edge; forcing strangers together is a configuration bug.
	ErrPairNotAffinity = errors.New("solver: must-pair edge is not a rapport edge")
	// ErrBelowMinCombat indicates the best solution's combat composite
	// falls below the configured threshold.
	ErrBelowMinCombat = errors.New("solver: best solution falls below the minimum combat score")
	// ErrSampleExhausted indicates RandomGrouping used up its attempt
	// budget without producing an exact packing.
	ErrSampleExhausted = errors.New("solver: random sampling exhausted its attempt budget")
)

// BelowThresholdError reports the achieved composite and the threshold
// it missed. errors.Is matches ErrBelowMinCombat.
type BelowThresholdError struct {
	Score     float64
	Threshold float64
}

// Error renders the achieved and required scores.
func (e *BelowThresholdError) Error() string {
	return fmt.Sprintf("solver: combat composite %.2f below required minimum %.2f",
		e.Score, e.Threshold)
}

// Unwrap ties the detail error to the package sentinel.
func (e *BelowThresholdError) Unwrap() error { return ErrBelowMinCombat }

// Problem is the immutable input of one solve: roster, capacities,
// rapport edges and hard constraints. All fields are read-only to the
// solver; restarts share them without locking.
type Problem struct {
	// Roster is the candidate entity id list.
	Roster []string
	// Capacities is the ordered unit slot specification.
	Capacities core.CapacitySpec
	// Affinity is the rapport edge list (deduplicated on build).
	Affinity []core.Pair
	// MustPair forces both endpoints into one unit.
	MustPair []core.Pair
	// MustNotPair forbids both endpoints from sharing a unit.
	MustNotPair []core.Pair
}

// Result is the immutable outcome of one solve.
type Result struct {
	// Grouping holds the final units and the unassigned remainder.
	Grouping core.Grouping
	// UnitAffinity counts rapport edges captured inside each unit.
	UnitAffinity []int
	// TotalAffinity is the sum of UnitAffinity.
	TotalAffinity int
	// Combat is the full scoring summary, nil when no combat context
	// was configured.
	Combat *combat.Summary
	// Seed, Restarts and SwapIterations echo the parameters actually used.
	Seed           int64
	Restarts       int
	SwapIterations int
}
