package gametheory

import (
	"math"
	"testing"

	"litigation-strategy-lab/internal/domain"
)

func TestClassifyOpponent(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want domain.OpponentStrategy
	}{
		{name: "high rate settles quick", rate: 0.9, want: domain.OpponentSettleQuick},
		{name: "boundary 0.7 negotiates", rate: 0.7, want: domain.OpponentNegotiate},
		{name: "mid rate negotiates", rate: 0.5, want: domain.OpponentNegotiate},
		{name: "boundary 0.3 negotiates", rate: 0.3, want: domain.OpponentNegotiate},
		{name: "low rate fights", rate: 0.1, want: domain.OpponentFightToTrial},
		{name: "never settles", rate: 0.0, want: domain.OpponentFightToTrial},
		{name: "always settles", rate: 1.0, want: domain.OpponentSettleQuick},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyOpponent(tt.rate); got != tt.want {
				t.Errorf("rate %v: expected %s, got %s", tt.rate, tt.want, got)
			}
		})
	}
}

func TestBuildPayoffMatrix(t *testing.T) {
	m := BuildPayoffMatrix(10000)

	tests := []struct {
		claimant domain.ClaimantStrategy
		opponent domain.OpponentStrategy
		want     float64
	}{
		{domain.StrategyAggressiveLitigation, domain.OpponentSettleQuick, 12000},
		{domain.StrategyAggressiveLitigation, domain.OpponentNegotiate, 10000},
		{domain.StrategyAggressiveLitigation, domain.OpponentFightToTrial, 10000},
		{domain.StrategySettlementFocused, domain.OpponentSettleQuick, 10000},
		{domain.StrategySettlementFocused, domain.OpponentFightToTrial, 7000},
		{domain.StrategyModerateApproach, domain.OpponentSettleQuick, 9500},
		{domain.StrategyModerateApproach, domain.OpponentNegotiate, 9500},
		{domain.StrategyModerateApproach, domain.OpponentFightToTrial, 9500},
	}

	for _, tt := range tests {
		got := m.At(tt.claimant, tt.opponent)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s vs %s: expected %v, got %v", tt.claimant, tt.opponent, tt.want, got)
		}
	}
}

func TestBestResponse_SettleQuickMeetsAggression(t *testing.T) {
	// Opponent who settles quickly is met with aggressive litigation:
	// the 1.2x multiplier dominates that column.
	got, _ := BestResponse(10000, domain.OpponentSettleQuick)
	if got != domain.StrategyAggressiveLitigation {
		t.Errorf("expected aggressive_litigation, got %s", got)
	}
}

func TestBestResponse_FightColumnAvoidsSettlementFocus(t *testing.T) {
	// Against a fighter, settlement focus is discounted to 0.7x and
	// must not be selected.
	got, m := BestResponse(10000, domain.OpponentFightToTrial)
	if got == domain.StrategySettlementFocused {
		t.Errorf("settlement_focused selected against a fighter (payoff %v)",
			m.At(domain.StrategySettlementFocused, domain.OpponentFightToTrial))
	}
	if got != domain.StrategyAggressiveLitigation {
		t.Errorf("expected aggressive_litigation, got %s", got)
	}
}

func TestBestResponse_TieBreaksToDeclarationOrder(t *testing.T) {
	// In the negotiate column, aggressive and settlement-focused both
	// carry 1.0x; the earliest declared strategy wins the tie.
	got, _ := BestResponse(10000, domain.OpponentNegotiate)
	if got != domain.StrategyAggressiveLitigation {
		t.Errorf("expected tie to resolve to aggressive_litigation, got %s", got)
	}
}

func TestBestResponse_NegativeExpectedValue(t *testing.T) {
	// With a negative seed value the multipliers invert the ordering;
	// the selector still returns the column argmax deterministically.
	got, m := BestResponse(-10000, domain.OpponentSettleQuick)
	if got != domain.StrategyModerateApproach {
		t.Errorf("expected moderate_approach (least negative payoff), got %s", got)
	}
	if m.At(domain.StrategyAggressiveLitigation, domain.OpponentSettleQuick) != -12000 {
		t.Errorf("unexpected matrix seeding: %v",
			m.At(domain.StrategyAggressiveLitigation, domain.OpponentSettleQuick))
	}
}
