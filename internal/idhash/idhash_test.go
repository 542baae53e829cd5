package idhash

import (
	"testing"

	"litigation-strategy-lab/internal/domain"
)

func TestComputeAnalysisID(t *testing.T) {
	d := domain.DamagesRange{Conservative: 30000, Recommended: 50000, Aggressive: 75000}

	a := ComputeAnalysisID(d, 8, 0.5, 10000, 42)
	b := ComputeAnalysisID(d, 8, 0.5, 10000, 42)

	if len(a) != 64 {
		t.Errorf("expected 64-character hash, got %d", len(a))
	}
	if a != b {
		t.Error("identical inputs must produce identical IDs")
	}
}

func TestComputeAnalysisID_InputSensitivity(t *testing.T) {
	d := domain.DamagesRange{Conservative: 30000, Recommended: 50000, Aggressive: 75000}
	base := ComputeAnalysisID(d, 8, 0.5, 10000, 42)

	variants := []string{
		ComputeAnalysisID(d, 7, 0.5, 10000, 42),
		ComputeAnalysisID(d, 8, 0.6, 10000, 42),
		ComputeAnalysisID(d, 8, 0.5, 10001, 42),
		ComputeAnalysisID(d, 8, 0.5, 10000, 43),
		ComputeAnalysisID(domain.DamagesRange{Conservative: 30000, Recommended: 50001, Aggressive: 75000}, 8, 0.5, 10000, 42),
	}

	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d collided with base ID", i)
		}
	}
}
