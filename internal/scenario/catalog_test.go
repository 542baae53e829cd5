package scenario

import (
	"math"
	"testing"

	"litigation-strategy-lab/internal/domain"
)

func testDamages(t *testing.T) domain.DamagesRange {
	t.Helper()
	d, err := domain.NewDamagesRange(30000, 50000, 75000)
	if err != nil {
		t.Fatalf("NewDamagesRange failed: %v", err)
	}
	return d
}

func TestCatalog_SevenEntriesInDeclarationOrder(t *testing.T) {
	catalog := Catalog(testDamages(t), 8)

	if len(catalog) != len(domain.ScenarioTypes) {
		t.Fatalf("expected %d scenarios, got %d", len(domain.ScenarioTypes), len(catalog))
	}
	for i, want := range domain.ScenarioTypes {
		if catalog[i].Type != want {
			t.Errorf("position %d: expected %s, got %s", i, want, catalog[i].Type)
		}
	}
}

func TestCatalog_Values(t *testing.T) {
	catalog := ByType(Catalog(testDamages(t), 8))

	tests := []struct {
		scenario domain.ScenarioType
		value    float64
	}{
		{domain.ScenarioDefaultJudgment, 50000},
		{domain.ScenarioEarlySettlement, 30000},
		{domain.ScenarioMidSettlement, 42500},
		{domain.ScenarioLateSettlement, 50000},
		{domain.ScenarioSummaryJudgmentWin, 67500},
		{domain.ScenarioTrialWin, 75000},
		{domain.ScenarioTrialLoss, 0},
	}

	for _, tt := range tests {
		got := catalog[tt.scenario].Value
		if math.Abs(got-tt.value) > 1e-9 {
			t.Errorf("%s: expected value %v, got %v", tt.scenario, tt.value, got)
		}
	}
}

func TestCatalog_StrengthWeightedProbabilities(t *testing.T) {
	// trial_win probability = (caseStrength/10) * 0.75 * 0.65
	catalog := ByType(Catalog(testDamages(t), 8))
	want := 0.8 * 0.75 * 0.65
	got := catalog[domain.ScenarioTrialWin].BaseProbability
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("trial_win probability: expected %v, got %v", want, got)
	}

	want = (1 - 0.8*0.75) * 0.65
	got = catalog[domain.ScenarioTrialLoss].BaseProbability
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("trial_loss probability: expected %v, got %v", want, got)
	}
}

func TestCatalog_ZeroStrength(t *testing.T) {
	catalog := ByType(Catalog(testDamages(t), 0))

	if p := catalog[domain.ScenarioTrialWin].BaseProbability; p != 0 {
		t.Errorf("trial_win probability at strength 0 must be exactly 0, got %v", p)
	}
	if p := catalog[domain.ScenarioSummaryJudgmentWin].BaseProbability; p != 0 {
		t.Errorf("summary_judgment_win probability at strength 0 must be exactly 0, got %v", p)
	}
	// Unfavorable and strength-independent paths remain live
	if p := catalog[domain.ScenarioTrialLoss].BaseProbability; math.Abs(p-TrialReachRate) > 1e-9 {
		t.Errorf("trial_loss probability at strength 0: expected %v, got %v", TrialReachRate, p)
	}
}

func TestCatalog_MaxStrengthCapped(t *testing.T) {
	catalog := ByType(Catalog(testDamages(t), 10))
	want := TrialWinCap * TrialReachRate
	got := catalog[domain.ScenarioTrialWin].BaseProbability
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("trial_win probability at full strength: expected %v, got %v", want, got)
	}
}

func TestCatalog_ProbabilitiesAreConditionalNotAPartition(t *testing.T) {
	// The catalog's probabilities are independent conditional path
	// likelihoods. They are not required to sum to 1 and, at full case
	// strength, they intentionally do not.
	catalog := Catalog(testDamages(t), 10)

	sum := 0.0
	for _, s := range catalog {
		if s.BaseProbability < 0 || s.BaseProbability > 1 {
			t.Errorf("%s: probability %v outside [0,1]", s.Type, s.BaseProbability)
		}
		sum += s.BaseProbability
	}
	if math.Abs(sum-1) < 1e-9 {
		t.Errorf("probabilities unexpectedly form a partition (sum=%v)", sum)
	}
}
