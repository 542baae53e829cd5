// Package scenario materializes the canonical catalog of terminal case
// outcomes. The catalog is the numeric model: its probabilities drive
// expected-value ranking and Monte Carlo sampling. The decision tree in
// internal/tree is a separate, explanation-only model.
package scenario

import "litigation-strategy-lab/internal/domain"

// Cost and duration assumptions per outcome class, USD and days.
// Hand-tuned defaults without a cited empirical source; treated as
// documented constants, not validated ground truth.
const (
	defaultJudgmentCost = 2_500
	defaultJudgmentDays = 90

	earlySettlementCost = 5_000
	earlySettlementDays = 120

	midSettlementCost = 15_000
	midSettlementDays = 270

	lateSettlementCost = 30_000
	lateSettlementDays = 450

	summaryJudgmentCost = 20_000
	summaryJudgmentDays = 300

	trialCost = 50_000
	trialDays = 540
)

// Probability constants. TrialReachRate is the conditional likelihood of
// a contested case surviving to verdict; TrialWinCap caps the win share
// at full case strength.
const (
	defaultJudgmentProb = 0.15
	earlySettlementProb = 0.25
	midSettlementProb   = 0.35
	lateSettlementProb  = 0.10

	summaryJudgmentStrengthWeight = 0.10

	TrialWinCap    = 0.75
	TrialReachRate = 0.65
)

// Catalog materializes the seven canonical scenarios for one case.
// Total over validated inputs: never fails. Entries appear in fixed
// declaration order (the ranking tie-break). caseStrength must already
// be clamped to [0, 10].
func Catalog(d domain.DamagesRange, caseStrength int) []domain.Scenario {
	cs := float64(caseStrength) / 10.0

	return []domain.Scenario{
		{
			Type:            domain.ScenarioDefaultJudgment,
			BaseProbability: defaultJudgmentProb,
			Value:           d.Recommended,
			Cost:            defaultJudgmentCost,
			DurationDays:    defaultJudgmentDays,
		},
		{
			Type:            domain.ScenarioEarlySettlement,
			BaseProbability: earlySettlementProb,
			Value:           d.Conservative,
			Cost:            earlySettlementCost,
			DurationDays:    earlySettlementDays,
		},
		{
			Type:            domain.ScenarioMidSettlement,
			BaseProbability: midSettlementProb,
			Value:           0.85 * d.Recommended,
			Cost:            midSettlementCost,
			DurationDays:    midSettlementDays,
		},
		{
			Type:            domain.ScenarioLateSettlement,
			BaseProbability: lateSettlementProb,
			Value:           d.Recommended,
			Cost:            lateSettlementCost,
			DurationDays:    lateSettlementDays,
		},
		{
			Type:            domain.ScenarioSummaryJudgmentWin,
			BaseProbability: summaryJudgmentStrengthWeight * cs,
			Value:           0.90 * d.Aggressive,
			Cost:            summaryJudgmentCost,
			DurationDays:    summaryJudgmentDays,
		},
		{
			Type:            domain.ScenarioTrialWin,
			BaseProbability: cs * TrialWinCap * TrialReachRate,
			Value:           d.Aggressive,
			Cost:            trialCost,
			DurationDays:    trialDays,
		},
		{
			Type:            domain.ScenarioTrialLoss,
			BaseProbability: (1 - cs*TrialWinCap) * TrialReachRate,
			Value:           0,
			Cost:            trialCost,
			DurationDays:    trialDays,
		},
	}
}

// ByType indexes a catalog by scenario type.
func ByType(catalog []domain.Scenario) map[domain.ScenarioType]domain.Scenario {
	m := make(map[domain.ScenarioType]domain.Scenario, len(catalog))
	for _, s := range catalog {
		m[s.Type] = s
	}
	return m
}
