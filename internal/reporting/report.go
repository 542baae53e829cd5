package reporting

import (
	"time"

	"litigation-strategy-lab/internal/domain"
	"litigation-strategy-lab/internal/engine"
	"litigation-strategy-lab/internal/gametheory"
	"litigation-strategy-lab/internal/montecarlo"
	"litigation-strategy-lab/internal/tree"
)

// Report is the renderable view of one analysis.
type Report struct {
	GeneratedAt time.Time
	AnalysisID  string

	// Inputs
	Damages        domain.DamagesRange
	CaseStrength   int
	SettlementRate float64
	Trials         int
	Seed           int64

	Recommendation *domain.Recommendation

	// Scenario ranking (descending by expected value)
	Ranking []RankingRow

	// Strategy game
	Opponent domain.OpponentStrategy
	Matrix   gametheory.PayoffMatrix

	// Simulated distributions
	Values montecarlo.Distribution
	Times  montecarlo.Distribution
	Costs  montecarlo.Distribution

	// Explanation-only decision tree
	Tree *tree.Node
}

// RankingRow is one row of the scenario ranking table.
type RankingRow struct {
	Scenario      domain.ScenarioType
	Probability   float64
	Value         float64
	Cost          float64
	DurationDays  int
	NetValue      float64
	ExpectedValue float64
	ROI           float64
	ValuePerDay   float64
}

// Build converts an analysis into a renderable report.
func Build(a *engine.Analysis) *Report {
	rows := make([]RankingRow, len(a.Ranking))
	for i, r := range a.Ranking {
		rows[i] = RankingRow{
			Scenario:      r.Scenario.Type,
			Probability:   r.Scenario.BaseProbability,
			Value:         r.Scenario.Value,
			Cost:          r.Scenario.Cost,
			DurationDays:  r.Scenario.DurationDays,
			NetValue:      r.NetValue,
			ExpectedValue: r.ExpectedValue,
			ROI:           r.ROI,
			ValuePerDay:   r.ValuePerDay,
		}
	}

	return &Report{
		GeneratedAt: time.Now().UTC(),
		AnalysisID:  a.Recommendation.AnalysisID,

		Damages:        a.Damages,
		CaseStrength:   a.CaseStrength,
		SettlementRate: a.SettlementRate,
		Trials:         a.Trials,
		Seed:           a.Seed,

		Recommendation: a.Recommendation,
		Ranking:        rows,

		Opponent: a.Opponent,
		Matrix:   a.Matrix,

		Values: a.Simulation.Values,
		Times:  a.Simulation.Times,
		Costs:  a.Simulation.Costs,

		Tree: a.Tree,
	}
}
