// Package strategy merges the evaluator's optimal path, the selected
// best response, and the simulated distribution into the final
// recommendation. Pure aggregation; no failure modes of its own.
package strategy

import (
	"fmt"

	"litigation-strategy-lab/internal/domain"
	"litigation-strategy-lab/internal/evaluation"
	"litigation-strategy-lab/internal/montecarlo"
)

// Win-rate bands for tactic selection.
const (
	strongPositionRate = 0.8
	evenPositionRate   = 0.5
)

// Synthesize builds the Recommendation. Negotiation anchors come from
// the simulated value distribution: demand at the 75th percentile,
// target at the median, floor at the 25th.
func Synthesize(
	optimal evaluation.Ranked,
	response domain.ClaimantStrategy,
	opponent domain.OpponentStrategy,
	result *montecarlo.Result,
) *domain.Recommendation {
	medianDays := result.Times.Median

	return &domain.Recommendation{
		PrimaryStrategy: response,
		OpponentProfile: opponent,

		ExpectedValue:   optimal.ExpectedValue,
		OptimalScenario: optimal.Scenario.Type,

		WinProbability: result.WinRate,

		DemandAnchor:    result.Values.P75,
		Target:          result.Values.Median,
		AcceptanceFloor: result.Values.P25,

		ExpectedDurationDays: medianDays,
		Timing:               timing(medianDays, opponent),
		Tactics:              tactics(result.WinRate, response),
	}
}

func timing(medianDays float64, opponent domain.OpponentStrategy) string {
	base := fmt.Sprintf("plan for roughly %.0f days to resolution (median of simulated outcomes)", medianDays)
	switch opponent {
	case domain.OpponentSettleQuick:
		return base + "; press for terms early, before the respondent's settlement window closes"
	case domain.OpponentFightToTrial:
		return base + "; budget costs through trial and revisit settlement after dispositive motions"
	default:
		return base + "; expect several negotiation rounds around discovery milestones"
	}
}

func tactics(winRate float64, response domain.ClaimantStrategy) []string {
	var out []string

	switch response {
	case domain.StrategyAggressiveLitigation:
		out = append(out,
			"open at the demand anchor and hold it through the first exchange",
			"front-load dispositive motions to raise the respondent's cost of delay",
		)
	case domain.StrategySettlementFocused:
		out = append(out,
			"propose mediation before discovery costs accrue on either side",
			"frame the acceptance floor as a time-limited certainty discount",
		)
	case domain.StrategyModerateApproach:
		out = append(out,
			"pace concessions against discovery milestones",
			"keep a parallel settlement track open while litigating",
		)
	}

	switch {
	case winRate > strongPositionRate:
		out = append(out, fmt.Sprintf("leverage the %.0f%% simulated recovery rate to resist early undercutting offers", winRate*100))
	case winRate > evenPositionRate:
		out = append(out, fmt.Sprintf("treat offers above the target as favorable given the %.0f%% simulated recovery rate", winRate*100))
	default:
		out = append(out, fmt.Sprintf("weigh certainty heavily: only %.0f%% of simulated outcomes recover value", winRate*100))
	}

	return out
}
