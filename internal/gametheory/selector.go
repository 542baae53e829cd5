// Package gametheory models a simplified two-player strategy game
// between claimant and respondent. It computes a best response to one
// inferred opponent strategy, not a Nash fixed point: mutual-equilibrium
// behavior would require iterating best responses to convergence or
// solving the matrix game exactly, which this engine does not attempt.
package gametheory

import "litigation-strategy-lab/internal/domain"

// Opponent classification thresholds over the historical settlement rate.
const (
	settleQuickThreshold  = 0.7 // rate above this: settles quickly
	fightToTrialThreshold = 0.3 // rate below this: fights to trial
)

// Payoff multipliers applied to the optimal expected value. Any pair
// not listed here multiplies by 1.0.
const (
	aggressiveVsSettleQuick = 1.2
	settlementVsFight       = 0.7
	moderateVsAnything      = 0.95
)

// PayoffMatrix maps (claimant strategy, opponent strategy) index pairs,
// in declaration order, to an estimated monetary payoff. Built and
// discarded within one selection.
type PayoffMatrix [3][3]float64

// At returns the payoff for a strategy pair.
func (m PayoffMatrix) At(c domain.ClaimantStrategy, o domain.OpponentStrategy) float64 {
	return m[claimantIndex(c)][opponentIndex(o)]
}

// ClassifyOpponent infers the respondent's likely strategy from their
// historical settlement rate.
func ClassifyOpponent(settlementRate float64) domain.OpponentStrategy {
	switch {
	case settlementRate > settleQuickThreshold:
		return domain.OpponentSettleQuick
	case settlementRate < fightToTrialThreshold:
		return domain.OpponentFightToTrial
	default:
		return domain.OpponentNegotiate
	}
}

// BuildPayoffMatrix seeds the 3x3 matrix from the optimal scenario's
// expected value with the fixed multiplier table.
func BuildPayoffMatrix(optimalEV float64) PayoffMatrix {
	var m PayoffMatrix
	for i, c := range domain.ClaimantStrategies {
		for j, o := range domain.OpponentStrategies {
			m[i][j] = optimalEV * multiplier(c, o)
		}
	}
	return m
}

// BestResponse returns the claimant strategy with the highest payoff in
// the inferred opponent's matrix column. Ties resolve to the earliest
// declared claimant strategy, for determinism.
func BestResponse(optimalEV float64, opponent domain.OpponentStrategy) (domain.ClaimantStrategy, PayoffMatrix) {
	m := BuildPayoffMatrix(optimalEV)
	col := opponentIndex(opponent)

	best := 0
	for i := 1; i < len(domain.ClaimantStrategies); i++ {
		if m[i][col] > m[best][col] {
			best = i
		}
	}
	return domain.ClaimantStrategies[best], m
}

func multiplier(c domain.ClaimantStrategy, o domain.OpponentStrategy) float64 {
	switch {
	case c == domain.StrategyAggressiveLitigation && o == domain.OpponentSettleQuick:
		return aggressiveVsSettleQuick
	case c == domain.StrategySettlementFocused && o == domain.OpponentFightToTrial:
		return settlementVsFight
	case c == domain.StrategyModerateApproach:
		return moderateVsAnything
	default:
		return 1.0
	}
}

func claimantIndex(c domain.ClaimantStrategy) int {
	for i, s := range domain.ClaimantStrategies {
		if s == c {
			return i
		}
	}
	return 0
}

func opponentIndex(o domain.OpponentStrategy) int {
	for i, s := range domain.OpponentStrategies {
		if s == o {
			return i
		}
	}
	return 0
}
