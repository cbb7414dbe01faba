package dataset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/muster/combat"
	"github.com/katalvlaran/muster/core"
	"github.com/katalvlaran/muster/solver"
)

// Inputs is the cross-validated bundle one run needs. Build it with
// BuildProblem, then hand Problem() to the solver.
type Inputs struct {
	Dataset     *Dataset
	Roster      []string
	Capacities  core.CapacitySpec
	Affinity    []core.Pair
	MustPair    []core.Pair
	MustNotPair []core.Pair
}

// Problem assembles the solver input from the validated bundle.
func (in *Inputs) Problem() solver.Problem {
	return solver.Problem{
		Roster:      in.Roster,
		Capacities:  in.Capacities,
		Affinity:    in.Affinity,
		MustPair:    in.MustPair,
		MustNotPair: in.MustNotPair,
	}
}

// BuildProblem cross-validates run inputs against the dataset and
// assembles the solver bundle.
//
// Steps:
//  1. A nil roster defaults to every dataset entity, sorted; roster ids
//     must be defined and unique.
//  2. Rapport edges are folded from the bond lists, dropping edges that
//     touch undefined ids, then restricted to the roster.
//  3. Must-pair edges must sit inside the roster. Must-not-pair edges
//     outside the roster carry no force and are filtered silently.
//
// Deeper hygiene (must-pair ∩ must-not-pair, must-pair ⊆ rapport,
// capacity validity) is the solver's contract; duplicating it here
// would just split one failure across two vocabularies.
//
// Error Conditions: ErrSchema, ErrUnknownID.
func BuildProblem(ds *Dataset, roster []string, caps core.CapacitySpec, mustPair, mustNotPair []core.Pair) (*Inputs, error) {
	defined := ds.EntitySet()

	// 1. Roster resolution.
	if roster == nil {
		roster = ds.EntityIDs()
	}
	rosterSet := make(map[string]struct{}, len(roster))
	var unknown []string
	for _, id := range roster {
		if _, dup := rosterSet[id]; dup {
			return nil, fmt.Errorf("%w: duplicate roster id %q", ErrSchema, id)
		}
		rosterSet[id] = struct{}{}
		if _, ok := defined[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)

		return nil, fmt.Errorf("%w: roster: %s", ErrUnknownID, strings.Join(unknown, ", "))
	}

	// 2. Rapport edges from bond lists.
	edges := core.NewPairSet()
	for _, entry := range ds.Bonds {
		if _, ok := defined[entry.ID]; !ok {
			continue
		}
		for _, partner := range entry.Pairs {
			if _, ok := defined[partner]; !ok {
				continue
			}
			p, err := core.NewPair(entry.ID, partner)
			if err != nil {
				return nil, fmt.Errorf("%w: bonds: %v", ErrSchema, err)
			}
			edges.Add(p)
		}
	}
	edges = edges.Restrict(rosterSet)

	// 3. Constraint scoping.
	for _, p := range mustPair {
		if !p.Within(rosterSet) {
			return nil, fmt.Errorf("%w: must-pair %s", ErrUnknownID, p)
		}
	}
	mustNot := core.NewPairSet(mustNotPair...).Restrict(rosterSet)

	return &Inputs{
		Dataset:     ds,
		Roster:      roster,
		Capacities:  caps,
		Affinity:    edges.Sorted(),
		MustPair:    core.NewPairSet(mustPair...).Sorted(),
		MustNotPair: mustNot.Sorted(),
	}, nil
}

// BuildCombatContext resolves the effective class per entity (dataset
// defaults overlaid with overrides) and binds them to cfg. A dataset
// without classes yields (nil, nil): solving proceeds, scoring is
// simply off.
//
// Override legality:
//   - the overridden entity and the target class must exist;
//   - an entity without a class line may only "override" to its own
//     default;
//   - an entity with a class line may only pick classes on that line.
//
// Error Conditions: ErrUnknownID, ErrIllegalOverride, plus everything
// combat.NewContext reports about cfg.
func BuildCombatContext(ds *Dataset, cfg combat.Config, overrides map[string]string) (*combat.Context, error) {
	if len(ds.Classes) == 0 {
		return nil, nil
	}

	classIndex := combat.NewClassIndex(ds.Profiles())
	lines := make(map[string]ClassLine, len(ds.ClassLines))
	for _, line := range ds.ClassLines {
		lines[line.ID] = line
	}

	defined := ds.EntitySet()
	var unknown []string
	for id := range overrides {
		if _, ok := defined[id]; !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)

		return nil, fmt.Errorf("%w: class overrides: %s", ErrUnknownID, strings.Join(unknown, ", "))
	}
	for _, classID := range overrides {
		if _, ok := classIndex[classID]; !ok {
			unknown = append(unknown, classID)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)

		return nil, fmt.Errorf("%w: override classes: %s", ErrUnknownID, strings.Join(unknown, ", "))
	}

	for _, id := range sortedOverrideIDs(overrides) {
		classID := overrides[id]
		info, ok := ds.EntityClasses[id]
		if !ok {
			return nil, fmt.Errorf("%w: entity %s has no default class", ErrIllegalOverride, id)
		}
		if info.ClassLine == "" {
			if classID != info.DefaultClass {
				return nil, fmt.Errorf("%w: entity %s has no class line, only %s is allowed",
					ErrIllegalOverride, id, info.DefaultClass)
			}
			continue
		}
		line, ok := lines[info.ClassLine]
		if !ok {
			return nil, fmt.Errorf("%w: entity %s references unknown class line %s",
				ErrUnknownID, id, info.ClassLine)
		}
		if !contains(line.Classes, classID) {
			return nil, fmt.Errorf("%w: entity %s: %s is not on class line %s",
				ErrIllegalOverride, id, classID, info.ClassLine)
		}
	}

	effective := make(map[string]string, len(ds.EntityClasses))
	for id, info := range ds.EntityClasses {
		effective[id] = info.DefaultClass
	}
	for id, classID := range overrides {
		effective[id] = classID
	}

	return combat.NewContext(ds.Profiles(), effective, cfg)
}

func sortedOverrideIDs(overrides map[string]string) []string {
	ids := make([]string, 0, len(overrides))
	for id := range overrides {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

func contains(list []string, target string) bool {
	for _, item := range list {
		if item == target {
			return true
		}
	}

	return false
}
