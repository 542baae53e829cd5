package montecarlo

import "litigation-strategy-lab/internal/domain"

// Noise holds the per-branch Gaussian standard deviations for sampled
// value, duration, and cost.
type Noise struct {
	Value float64
	Time  float64 // days
	Cost  float64
}

// Params holds the sampling constants. The defaults are hand-tuned with
// no cited empirical source, so they are configurable rather than baked
// in; callers override individual fields as better data arrives.
type Params struct {
	// Cumulative thresholds for the primary uniform roll.
	DefaultJudgmentCum float64
	EarlySettlementCum float64
	MidSettlementCum   float64

	// Secondary roll splitting the residual mass.
	SummaryJudgmentCum float64
	LateSettlementCum  float64

	// TrialWinCap bounds the tertiary win roll at full case strength.
	TrialWinCap float64

	// Noise per scenario branch. trial_loss value noise is zero so a
	// loss is exactly zero-valued and the win-rate definition (nonzero
	// recovery) stays consistent with the branch type.
	Noise map[domain.ScenarioType]Noise
}

// DefaultParams returns the reference sampling constants.
func DefaultParams() Params {
	return Params{
		DefaultJudgmentCum: 0.15,
		EarlySettlementCum: 0.40,
		MidSettlementCum:   0.75,

		SummaryJudgmentCum: 0.20,
		LateSettlementCum:  0.60,

		TrialWinCap: 0.75,

		Noise: map[domain.ScenarioType]Noise{
			domain.ScenarioDefaultJudgment:    {Value: 5_000, Time: 15, Cost: 500},
			domain.ScenarioEarlySettlement:    {Value: 8_000, Time: 20, Cost: 1_000},
			domain.ScenarioMidSettlement:      {Value: 10_000, Time: 30, Cost: 2_000},
			domain.ScenarioLateSettlement:     {Value: 12_000, Time: 45, Cost: 4_000},
			domain.ScenarioSummaryJudgmentWin: {Value: 15_000, Time: 40, Cost: 3_000},
			domain.ScenarioTrialWin:           {Value: 20_000, Time: 60, Cost: 7_500},
			domain.ScenarioTrialLoss:          {Value: 0, Time: 60, Cost: 7_500},
		},
	}
}
