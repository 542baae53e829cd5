package domain

// DamagesRange is the three-point monetary estimate supplied by the
// caller (sourced from an external damages-estimation step).
// Invariant: Conservative <= Recommended <= Aggressive, all non-negative.
type DamagesRange struct {
	Conservative float64
	Recommended  float64
	Aggressive   float64
}

// NewDamagesRange validates ordering and returns the immutable range.
func NewDamagesRange(conservative, recommended, aggressive float64) (DamagesRange, error) {
	d := DamagesRange{
		Conservative: conservative,
		Recommended:  recommended,
		Aggressive:   aggressive,
	}
	if err := d.Validate(); err != nil {
		return DamagesRange{}, err
	}
	return d, nil
}

// Validate checks the ordering invariant.
func (d DamagesRange) Validate() error {
	if d.Conservative < 0 || d.Conservative > d.Recommended || d.Recommended > d.Aggressive {
		return ErrInvalidDamagesRange
	}
	return nil
}

// Case strength bounds. Values outside are clamped, never rejected.
const (
	CaseStrengthMin = 0
	CaseStrengthMax = 10
)

// ClampCaseStrength clamps v to [CaseStrengthMin, CaseStrengthMax].
// The second return reports whether clamping occurred so the caller
// can surface a warning instead of silently absorbing bad input.
func ClampCaseStrength(v int) (int, bool) {
	if v < CaseStrengthMin {
		return CaseStrengthMin, true
	}
	if v > CaseStrengthMax {
		return CaseStrengthMax, true
	}
	return v, false
}
