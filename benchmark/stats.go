package benchmark

import (
	"math"
	"sort"
)

// Stats condenses one sample set. The zero value describes an empty
// set.
type Stats struct {
	// Count is the number of samples aggregated.
	Count int `json:"count"`
	// Min and Max are the extreme observations.
	Min float64 `json:"minimum"`
	Max float64 `json:"maximum"`
	// Mean is the arithmetic mean.
	Mean float64 `json:"mean"`
	// Median, P75 and P90 are interpolated percentiles.
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	P90    float64 `json:"p90"`
	// Std is the population standard deviation.
	Std float64 `json:"std"`
}

// Percentile returns the fraction-th percentile of sorted (ascending)
// values, linearly interpolating between the two closest ranks.
// fraction outside [0,1] clamps to the nearest extreme; empty input
// yields 0.
func Percentile(sorted []float64, fraction float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if fraction <= 0 {
		return sorted[0]
	}
	if fraction >= 1 {
		return sorted[len(sorted)-1]
	}

	position := float64(len(sorted)-1) * fraction
	lower := math.Floor(position)
	upper := math.Ceil(position)
	if lower == upper {
		return sorted[int(position)]
	}
	weight := position - lower

	return sorted[int(lower)] + (sorted[int(upper)]-sorted[int(lower)])*weight
}

// Compute aggregates values into Stats. The input is not mutated.
//
// Complexity: O(n log n).
func Compute(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var total float64
	for _, v := range sorted {
		total += v
	}
	mean := total / float64(len(sorted))

	var variance float64
	for _, v := range sorted {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(sorted))

	return Stats{
		Count:  len(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Mean:   mean,
		Median: Percentile(sorted, 0.5),
		P75:    Percentile(sorted, 0.75),
		P90:    Percentile(sorted, 0.9),
		Std:    math.Sqrt(variance),
	}
}
