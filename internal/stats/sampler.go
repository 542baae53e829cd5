package stats

import (
	"math"
	"math/rand"
)

// Sampler draws random variates from an explicit, seedable source.
// Each worker gets its own Sampler; *rand.Rand is not safe for
// concurrent use.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler seeded deterministically. The same seed
// reproduces the same variate sequence bit-for-bit.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Uniform returns a uniformly distributed value in [0, 1).
func (s *Sampler) Uniform() float64 {
	return s.rng.Float64()
}

// Normal returns a normally distributed value via the Box-Muller
// transform, clamped at zero. Monetary values and durations cannot go
// negative. Never fails.
func (s *Sampler) Normal(mean, stdDev float64) float64 {
	u1 := s.rng.Float64()
	for u1 == 0 { // log(0) is undefined
		u1 = s.rng.Float64()
	}
	u2 := s.rng.Float64()

	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	v := mean + stdDev*z
	if v < 0 {
		return 0
	}
	return v
}
