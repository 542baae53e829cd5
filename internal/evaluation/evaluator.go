// Package evaluation ranks the scenario catalog by expected value.
package evaluation

import (
	"math"
	"sort"

	"litigation-strategy-lab/internal/domain"
)

// Ranked annotates one scenario with its ranking metrics.
type Ranked struct {
	Scenario domain.Scenario

	NetValue      float64 // value - cost
	ExpectedValue float64 // net value weighted by base probability

	// ROI is net value over cost. A zero-cost scenario yields +Inf
	// rather than an error: one undefined ratio must not block the
	// rest of the analysis.
	ROI float64

	// ValuePerDay is net value over duration, +Inf on zero duration.
	ValuePerDay float64
}

// Rank scores every scenario and sorts descending by expected value.
// The sort is stable, so ties keep catalog declaration order and the
// result is a total order. The top entry is the optimal path.
func Rank(catalog []domain.Scenario) []Ranked {
	ranked := make([]Ranked, len(catalog))
	for i, s := range catalog {
		net := s.Value - s.Cost
		ranked[i] = Ranked{
			Scenario:      s,
			NetValue:      net,
			ExpectedValue: net * s.BaseProbability,
			ROI:           guardedRatio(net, s.Cost),
			ValuePerDay:   guardedRatio(net, float64(s.DurationDays)),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ExpectedValue > ranked[j].ExpectedValue
	})

	return ranked
}

// Optimal returns the highest expected-value entry. The catalog is
// never empty, so an empty ranking is a programming error upstream.
func Optimal(ranked []Ranked) Ranked {
	return ranked[0]
}

// guardedRatio divides with a +Inf sentinel instead of a crash when the
// denominator is zero.
func guardedRatio(num, den float64) float64 {
	if den == 0 {
		return math.Inf(1)
	}
	return num / den
}
