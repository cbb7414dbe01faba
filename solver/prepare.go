package solver

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/muster/cluster"
	"github.com/katalvlaran/muster/core"
)

// fillerPrefix marks synthetic entities that occupy otherwise empty
// slots so greedy packing stays exact. Fillers carry no rapport, no
// constraints and no class; they are stripped before scoring and before
// any result is assembled.
const fillerPrefix = "__empty_slot__"

// prepared is the shared read-only state every restart (and every
// benchmark sample) works from: the padded cluster list, the restricted
// rapport graph, the aggregated metrics and the trim fallout.
type prepared struct {
	// kept holds surviving clusters plus filler singletons, in order.
	kept []cluster.Cluster
	// fillerSet identifies the synthetic padding ids.
	fillerSet map[string]struct{}
	// unassigned lists trimmed-away members, sorted.
	unassigned []string
	// assignedGraph is the rapport graph restricted to placed members.
	assignedGraph *core.AffinityGraph
	// metrics aggregates rapport and conflicts at cluster granularity.
	metrics clusterMetrics
}

// prepare runs the deterministic front half of the pipeline: roster
// normalization, constraint hygiene, clustering, conflict validation,
// trimming and filler padding. See Solve for the error contract.
//
// Complexity: O(n log n + E + c²).
func prepare(p Problem, policy cluster.TrimPolicy) (*prepared, error) {
	if err := p.Capacities.Validate(); err != nil {
		return nil, err
	}

	// Stage 1 - roster normalization.
	roster := make([]string, 0, len(p.Roster))
	rosterSet := make(map[string]struct{}, len(p.Roster))
	for _, raw := range p.Roster {
		id := core.NormalizeID(raw)
		if id == "" {
			continue
		}
		if _, dup := rosterSet[id]; dup {
			return nil, core.ErrDuplicateID
		}
		rosterSet[id] = struct{}{}
		roster = append(roster, id)
	}
	if len(roster) == 0 {
		return nil, ErrEmptyRoster
	}

	// Stage 2 - constraint hygiene. Must-not-pair edges touching ids
	// outside the roster carry no force and are filtered silently;
	// must-pair edges are held to a stricter standard.
	graph := core.NewAffinityGraph(p.Affinity).Restrict(roster)
	mustPair := core.NewPairSet(p.MustPair...)
	mustNot := core.NewPairSet(p.MustNotPair...).Restrict(rosterSet)

	for _, pr := range mustPair.Sorted() {
		if mustNot.Has(pr) {
			return nil, fmt.Errorf("%w: pair %s is both required and forbidden",
				cluster.ErrConfigurationInfeasible, pr)
		}
		if !pr.Within(rosterSet) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPairEntity, pr)
		}
		if !graph.HasPair(pr) {
			return nil, fmt.Errorf("%w: %s", ErrPairNotAffinity, pr)
		}
	}

	// Stage 3 - clustering and conflict validation.
	clusters, err := cluster.Build(roster, mustPair.Sorted())
	if err != nil {
		return nil, err
	}
	if err = cluster.ValidateConflicts(clusters, mustNot); err != nil {
		return nil, err
	}

	// Stage 4 - trim to fit, then pad to exactness.
	trimmed, err := cluster.Trim(clusters, p.Capacities, graph, policy)
	if err != nil {
		return nil, err
	}

	kept := trimmed.Kept
	assigned := make([]string, 0, len(roster))
	assignedSet := make(map[string]struct{}, len(roster))
	var keptTotal int
	for _, c := range kept {
		keptTotal += c.Size()
		for _, id := range c.Members {
			assigned = append(assigned, id)
			assignedSet[id] = struct{}{}
		}
	}

	assignedGraph := graph.Restrict(assigned)
	mustNot = mustNot.Restrict(assignedSet)

	fillers := makeFillers(rosterSet, p.Capacities.Total()-keptTotal)
	fillerSet := make(map[string]struct{}, len(fillers))
	for _, f := range fillers {
		fillerSet[f] = struct{}{}
		kept = append(kept, cluster.Cluster{Members: []string{f}})
	}

	return &prepared{
		kept:          kept,
		fillerSet:     fillerSet,
		unassigned:    trimmed.DroppedMembers(),
		assignedGraph: assignedGraph,
		metrics:       buildMetrics(kept, assignedGraph.Edges(), mustNot),
	}, nil
}

// memberUnits flattens cluster-index units into member-id units,
// preserving placement order and stripping fillers.
func (s *prepared) memberUnits(units [][]int) [][]string {
	out := make([][]string, len(units))
	for u, unit := range units {
		members := make([]string, 0)
		for _, clusterIdx := range unit {
			for _, id := range s.kept[clusterIdx].Members {
				if _, isFiller := s.fillerSet[id]; !isFiller {
					members = append(members, id)
				}
			}
		}
		out[u] = members
	}

	return out
}

// makeFillers mints deficit synthetic ids that collide with nothing in
// taken.
func makeFillers(taken map[string]struct{}, deficit int) []string {
	if deficit <= 0 {
		return nil
	}
	fillers := make([]string, 0, deficit)
	for next := 1; len(fillers) < deficit; next++ {
		id := fillerPrefix + strconv.Itoa(next)
		if _, clash := taken[id]; clash {
			continue
		}
		fillers = append(fillers, id)
	}

	return fillers
}
