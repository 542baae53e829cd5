package domain

import "errors"

// Validation errors raised before any computation starts.
// The caller must fix inputs and retry; nothing is retried internally.
var (
	// ErrInvalidDamagesRange is returned when the three-point damages
	// estimate violates conservative <= recommended <= aggressive.
	ErrInvalidDamagesRange = errors.New("invalid damages range: conservative <= recommended <= aggressive required")

	// ErrInvalidProbability is returned when a probability input falls
	// outside [0, 1].
	ErrInvalidProbability = errors.New("invalid probability: must be within [0, 1]")

	// ErrInvalidTrialCount is returned when the requested trial count
	// is not a positive integer.
	ErrInvalidTrialCount = errors.New("invalid trial count: must be positive")
)
