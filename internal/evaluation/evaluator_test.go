package evaluation

import (
	"math"
	"testing"

	"litigation-strategy-lab/internal/domain"
	"litigation-strategy-lab/internal/scenario"
)

func testCatalog(t *testing.T) []domain.Scenario {
	t.Helper()
	d, err := domain.NewDamagesRange(30000, 50000, 75000)
	if err != nil {
		t.Fatalf("NewDamagesRange failed: %v", err)
	}
	return scenario.Catalog(d, 8)
}

func TestRank_DescendingByExpectedValue(t *testing.T) {
	ranked := Rank(testCatalog(t))

	if len(ranked) != 7 {
		t.Fatalf("expected 7 ranked scenarios, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].ExpectedValue > ranked[i-1].ExpectedValue {
			t.Errorf("ranking not descending at position %d: %v > %v",
				i, ranked[i].ExpectedValue, ranked[i-1].ExpectedValue)
		}
	}
}

func TestRank_OptimalAtStrength8(t *testing.T) {
	// trial_win: (75000-50000) * 0.8*0.75*0.65 = 9750, the top path
	ranked := Rank(testCatalog(t))
	top := Optimal(ranked)

	if top.Scenario.Type != domain.ScenarioTrialWin {
		t.Errorf("expected trial_win optimal, got %s", top.Scenario.Type)
	}
	if math.Abs(top.ExpectedValue-9750) > 1e-6 {
		t.Errorf("expected optimal EV 9750, got %v", top.ExpectedValue)
	}
}

func TestRank_Metrics(t *testing.T) {
	ranked := Rank(testCatalog(t))

	byType := make(map[domain.ScenarioType]Ranked)
	for _, r := range ranked {
		byType[r.Scenario.Type] = r
	}

	dj := byType[domain.ScenarioDefaultJudgment]
	if dj.NetValue != 47500 {
		t.Errorf("default_judgment net value: expected 47500, got %v", dj.NetValue)
	}
	if math.Abs(dj.ExpectedValue-7125) > 1e-6 {
		t.Errorf("default_judgment EV: expected 7125, got %v", dj.ExpectedValue)
	}
	if math.Abs(dj.ROI-19.0) > 1e-9 {
		t.Errorf("default_judgment ROI: expected 19.0, got %v", dj.ROI)
	}
	if math.Abs(dj.ValuePerDay-47500.0/90.0) > 1e-9 {
		t.Errorf("default_judgment value/day: expected %v, got %v", 47500.0/90.0, dj.ValuePerDay)
	}

	loss := byType[domain.ScenarioTrialLoss]
	if loss.NetValue != -50000 {
		t.Errorf("trial_loss net value: expected -50000, got %v", loss.NetValue)
	}
	if loss.ROI != -1 {
		t.Errorf("trial_loss ROI: expected -1, got %v", loss.ROI)
	}
}

func TestRank_ZeroCostROISentinel(t *testing.T) {
	catalog := []domain.Scenario{
		{Type: domain.ScenarioEarlySettlement, BaseProbability: 0.5, Value: 1000, Cost: 0, DurationDays: 10},
	}

	ranked := Rank(catalog)
	if !math.IsInf(ranked[0].ROI, 1) {
		t.Errorf("expected +Inf ROI sentinel for zero cost, got %v", ranked[0].ROI)
	}
}

func TestRank_TiesKeepDeclarationOrder(t *testing.T) {
	// Two scenarios with identical expected value must not swap.
	catalog := []domain.Scenario{
		{Type: domain.ScenarioEarlySettlement, BaseProbability: 0.5, Value: 2000, Cost: 1000, DurationDays: 10},
		{Type: domain.ScenarioMidSettlement, BaseProbability: 0.25, Value: 3000, Cost: 1000, DurationDays: 10},
	}
	// EVs: 0.5*1000 = 500 and 0.25*2000 = 500

	ranked := Rank(catalog)
	if ranked[0].Scenario.Type != domain.ScenarioEarlySettlement {
		t.Errorf("tie broke declaration order: got %s first", ranked[0].Scenario.Type)
	}
	if ranked[1].Scenario.Type != domain.ScenarioMidSettlement {
		t.Errorf("tie broke declaration order: got %s second", ranked[1].Scenario.Type)
	}
}
