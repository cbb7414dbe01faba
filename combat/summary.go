package combat

// Summarize scores a finished grouping: per-unit breakdowns, army
// coverage and leader diversity, combined into the composite total the
// solver uses as its secondary selection key. Disabled sections
// contribute zero and stay empty in the returned Summary.
//
// Error Conditions:
//   - ErrUnknownClass (via *UnknownClassError): any assigned member
//     fails to resolve.
//
// Complexity: O(members · tags + weights) over the whole grouping.
func (c *Context) Summarize(units [][]string) (Summary, error) {
	sum := Summary{
		UnitScores:     make([]float64, 0, len(units)),
		UnitBreakdowns: make([]Breakdown, 0, len(units)),
	}

	for _, unit := range units {
		b, err := c.breakdownUnit(unit)
		if err != nil {
			return Summary{}, err
		}
		sum.UnitScores = append(sum.UnitScores, b.Score)
		sum.UnitBreakdowns = append(sum.UnitBreakdowns, b)
		sum.TotalScore += b.Score
	}

	if c.cfg.Coverage.Enabled {
		coverage, err := c.coverage(units)
		if err != nil {
			return Summary{}, err
		}
		sum.Coverage = coverage
	}
	if c.cfg.Diversity.Enabled {
		diversity, err := c.diversity(units)
		if err != nil {
			return Summary{}, err
		}
		sum.Diversity = diversity
	}

	sum.CompositeTotal = sum.TotalScore + sum.Coverage.TotalScore + sum.Diversity.Score

	return sum, nil
}

// Composite returns only the composite total. The solver's tie-break
// path calls this in its swap loop; full breakdowns are assembled once,
// at the end.
func (c *Context) Composite(units [][]string) (float64, error) {
	sum, err := c.Summarize(units)
	if err != nil {
		return 0, err
	}

	return sum.CompositeTotal, nil
}
