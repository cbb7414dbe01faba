package solver

import "github.com/katalvlaran/muster/cluster"

// compositeEps guards float comparisons in combat tie-breaks; a swap
// must beat the incumbent composite by more than this to be accepted.
const compositeEps = 1e-9

// localSearch improves units in place with bounded first-improvement
// passes. Each pass scans every unit pair for an equal-size cluster
// swap (singleton clusters are how individual entities move; clusters
// never split) and accepts the first swap that strictly increases
// rapport — or, when tieBreak is non-nil, keeps rapport unchanged while
// strictly increasing the combat composite. Swaps seating a forbidden
// pair are rejected outright.
//
// Terminates after maxPasses passes or the first full pass with no
// accepted swap. Accepted swaps never decrease total rapport.
//
// tieBreak receives the whole assignment because coverage and leader
// diversity are army-wide; it returns the combat composite.
//
// Complexity: O(passes · u² · k² · k) plus tie-break evaluations.
func localSearch(units [][]int, clusters []cluster.Cluster, m clusterMetrics, maxPasses int, tieBreak func([][]int) (float64, error)) error {
	if maxPasses <= 0 {
		return nil
	}

	var (
		composite float64
		err       error
	)
	if tieBreak != nil {
		if composite, err = tieBreak(units); err != nil {
			return err
		}
	}

	for pass := 0; pass < maxPasses; pass++ {
		improved, tieComposite, err := onePass(units, clusters, m, tieBreak, composite)
		if err != nil {
			return err
		}
		if !improved {
			return nil
		}
		composite = tieComposite
	}

	return nil
}

// onePass performs one first-improvement scan. Returns whether a swap
// was accepted and the composite after the accepted swap (meaningful
// only under tie-breaking).
func onePass(units [][]int, clusters []cluster.Cluster, m clusterMetrics, tieBreak func([][]int) (float64, error), composite float64) (bool, float64, error) {
	for left := 0; left < len(units); left++ {
		for right := left + 1; right < len(units); right++ {
			leftUnit, rightUnit := units[left], units[right]
			for i, lc := range leftUnit {
				for j, rc := range rightUnit {
					// Atomic moves only: capacities stay exact when the
					// swapped clusters match in size.
					if clusters[lc].Size() != clusters[rc].Size() {
						continue
					}
					if m.hasConflict(lc, rightUnit, rc) || m.hasConflict(rc, leftUnit, lc) {
						continue
					}

					before := m.attachment(lc, leftUnit, lc) + m.attachment(rc, rightUnit, rc)
					after := m.attachment(lc, rightUnit, rc) + m.attachment(rc, leftUnit, lc)
					delta := after - before

					if delta > 0 {
						leftUnit[i], rightUnit[j] = rc, lc
						next := composite
						if tieBreak != nil {
							var err error
							if next, err = tieBreak(units); err != nil {
								return false, 0, err
							}
						}

						return true, next, nil
					}

					// Rapport-neutral swap: accept only a strict combat gain.
					if delta == 0 && tieBreak != nil {
						leftUnit[i], rightUnit[j] = rc, lc
						next, err := tieBreak(units)
						if err != nil {
							return false, 0, err
						}
						if next > composite+compositeEps {
							return true, next, nil
						}
						// revert
						leftUnit[i], rightUnit[j] = lc, rc
					}
				}
			}
		}
	}

	return false, composite, nil
}
