package idhash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"litigation-strategy-lab/internal/domain"
)

// ComputeAnalysisID computes a deterministic analysis_id using SHA256.
// Formula: SHA256(conservative|recommended|aggressive|case_strength|settlement_rate|trials|seed)
// Returns hex-encoded hash (64 characters). The same inputs and seed
// always map to the same ID, so a Recommendation can be traced back to
// the exact run that produced it.
func ComputeAnalysisID(
	d domain.DamagesRange,
	caseStrength int,
	settlementRate float64,
	trials int,
	seed int64,
) string {
	data := fmt.Sprintf("%.2f|%.2f|%.2f|%d|%.4f|%d|%d",
		d.Conservative,
		d.Recommended,
		d.Aggressive,
		caseStrength,
		settlementRate,
		trials,
		seed,
	)

	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}
