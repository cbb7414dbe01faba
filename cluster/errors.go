package cluster

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/muster/core"
)

var (
	// ErrConfigurationInfeasible indicates a must-pair chain forces a
	// must-not-pair violation; no assignment can satisfy both.
	ErrConfigurationInfeasible = errors.New("cluster: must-pair constraints force a forbidden pair")
	// ErrCapacityInfeasible indicates no cluster fits any unit capacity,
	// leaving nothing assignable.
	ErrCapacityInfeasible = errors.New("cluster: no cluster fits any unit capacity")
)

// ConflictError identifies the forbidden pair and the cluster that
// traps both of its endpoints. errors.Is matches ErrConfigurationInfeasible.
type ConflictError struct {
	Pair    core.Pair
	Cluster Cluster
}

// Error renders the conflicting pair and the offending cluster members.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("cluster: forbidden pair %s trapped in cluster [%s]",
		e.Pair, strings.Join(e.Cluster.Members, ", "))
}

// Unwrap ties the detail error to the package sentinel.
func (e *ConflictError) Unwrap() error { return ErrConfigurationInfeasible }

// OversizeError identifies the smallest cluster when every cluster is
// too wide for every unit. errors.Is matches ErrCapacityInfeasible.
type OversizeError struct {
	Cluster     Cluster
	MaxCapacity int
}

// Error names the smallest unplaceable cluster and the widest unit.
func (e *OversizeError) Error() string {
	return fmt.Sprintf("cluster: smallest cluster [%s] (size %d) exceeds largest capacity %d",
		strings.Join(e.Cluster.Members, ", "), e.Cluster.Size(), e.MaxCapacity)
}

// Unwrap ties the detail error to the package sentinel.
func (e *OversizeError) Unwrap() error { return ErrCapacityInfeasible }
