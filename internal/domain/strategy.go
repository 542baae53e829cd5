package domain

// ClaimantStrategy is one of the three discrete postures available to
// the claimant in the strategy game.
type ClaimantStrategy string

// Claimant strategies in declaration order. Payoff ties resolve to the
// earliest declared strategy.
const (
	StrategyAggressiveLitigation ClaimantStrategy = "aggressive_litigation"
	StrategySettlementFocused    ClaimantStrategy = "settlement_focused"
	StrategyModerateApproach     ClaimantStrategy = "moderate_approach"
)

// ClaimantStrategies lists claimant strategies in declaration order.
var ClaimantStrategies = []ClaimantStrategy{
	StrategyAggressiveLitigation,
	StrategySettlementFocused,
	StrategyModerateApproach,
}

// OpponentStrategy is the respondent posture inferred from a behavioral
// signal (historical settlement rate).
type OpponentStrategy string

// Opponent strategies in declaration order.
const (
	OpponentSettleQuick  OpponentStrategy = "settle_quick"
	OpponentNegotiate    OpponentStrategy = "negotiate"
	OpponentFightToTrial OpponentStrategy = "fight_to_trial"
)

// OpponentStrategies lists opponent strategies in declaration order.
var OpponentStrategies = []OpponentStrategy{
	OpponentSettleQuick,
	OpponentNegotiate,
	OpponentFightToTrial,
}
