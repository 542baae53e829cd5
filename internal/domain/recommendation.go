package domain

// Recommendation is the engine's sole externally consumed output.
// Produced once per analysis call, never mutated afterwards.
type Recommendation struct {
	AnalysisID string // deterministic hash of the canonical inputs

	PrimaryStrategy ClaimantStrategy
	OpponentProfile OpponentStrategy

	// ExpectedValue is the optimal scenario's probability-weighted net value.
	ExpectedValue float64
	// OptimalScenario names the highest expected-value path.
	OptimalScenario ScenarioType

	// WinProbability is the simulated fraction of trials that resolved
	// with a nonzero recovery.
	WinProbability float64

	// Negotiation anchors from the simulated value distribution.
	DemandAnchor    float64 // 75th percentile
	Target          float64 // median
	AcceptanceFloor float64 // 25th percentile

	// ExpectedDurationDays is the median simulated time to resolution.
	ExpectedDurationDays float64
	Timing               string

	Tactics []string
}
