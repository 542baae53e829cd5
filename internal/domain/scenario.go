package domain

// ScenarioType identifies one of the seven canonical terminal outcomes.
// The set is closed: branch handling switches over these constants and
// nothing else.
type ScenarioType string

// Canonical scenario types.
const (
	ScenarioDefaultJudgment    ScenarioType = "default_judgment"
	ScenarioEarlySettlement    ScenarioType = "early_settlement"
	ScenarioMidSettlement      ScenarioType = "mid_settlement"
	ScenarioLateSettlement     ScenarioType = "late_settlement"
	ScenarioSummaryJudgmentWin ScenarioType = "summary_judgment_win"
	ScenarioTrialWin           ScenarioType = "trial_win"
	ScenarioTrialLoss          ScenarioType = "trial_loss"
)

// ScenarioTypes lists every canonical type in declaration order.
// Declaration order is the deterministic tie-break for rankings.
var ScenarioTypes = []ScenarioType{
	ScenarioDefaultJudgment,
	ScenarioEarlySettlement,
	ScenarioMidSettlement,
	ScenarioLateSettlement,
	ScenarioSummaryJudgmentWin,
	ScenarioTrialWin,
	ScenarioTrialLoss,
}

// Scenario is one fully materialized terminal outcome for a specific case.
// BaseProbability is an independent path likelihood conditioned on
// reaching that branch, not a slice of a partition; the catalog's
// probabilities are not expected to sum to 1. Aggregate statistics come
// from the Monte Carlo simulation, never from summing probability*value.
type Scenario struct {
	Type            ScenarioType
	BaseProbability float64
	Value           float64 // gross recovery, USD
	Cost            float64 // total litigation cost to reach this outcome, USD
	DurationDays    int
}
