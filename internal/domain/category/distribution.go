package category

import (
	"math"
)

// Distribution captures league mean and standard deviation for one category.
// StdDev is floored to 1 at construction so it is always a safe divisor.
type Distribution struct {
	Mean   float64
	StdDev float64
}

// Distributions maps categories to their league distribution.
type Distributions map[ID]Distribution

// NewDistribution computes mean and stddev over samples. A zero or
// near-zero standard deviation is replaced by 1.
func NewDistribution(samples []float64) Distribution {
	n := float64(len(samples))
	if n == 0 {
		return Distribution{Mean: 0, StdDev: 1}
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	mean := sum / n
	var variance float64
	for _, v := range samples {
		d := v - mean
		variance += d * d
	}
	std := math.Sqrt(variance / n)
	if std < 1e-9 {
		std = 1
	}
	return Distribution{Mean: mean, StdDev: std}
}

// Z standardizes value against the distribution for id. Categories where a
// lower raw value is better (goals-against-average) invert the sign.
func (ds Distributions) Z(id ID, value float64) float64 {
	d, ok := ds[id]
	if !ok {
		return 0
	}
	if id.LowerIsBetter() {
		return (d.Mean - value) / d.StdDev
	}
	return (value - d.Mean) / d.StdDev
}

// TeamTotal sums one category across a roster of per-player totals.
func TeamTotal(rosters []map[ID]float64, id ID) float64 {
	var total float64
	for _, stats := range rosters {
		total += stats[id]
	}
	return total
}

// ComputeTeamDistributions builds per-category distributions over one
// aggregate total per team.
func ComputeTeamDistributions(teamStats [][]map[ID]float64) Distributions {
	out := make(Distributions, len(valid))
	for _, id := range All() {
		samples := make([]float64, 0, len(teamStats))
		for _, roster := range teamStats {
			samples = append(samples, TeamTotal(roster, id))
		}
		out[id] = NewDistribution(samples)
	}
	return out
}

// ComputePlayerDistributions builds per-category distributions over
// individual player totals, restricted to the given category set.
func ComputePlayerDistributions(players []map[ID]float64, ids []ID) Distributions {
	out := make(Distributions, len(ids))
	for _, id := range ids {
		samples := make([]float64, 0, len(players))
		for _, stats := range players {
			samples = append(samples, stats[id])
		}
		out[id] = NewDistribution(samples)
	}
	return out
}
