package stats

import (
	"errors"
	"math"
	"sort"
)

// ErrEmptyInput is returned when a statistic is requested over an empty
// sample. Given a positive trial count this indicates a programming
// error upstream, not a recoverable condition.
var ErrEmptyInput = errors.New("empty input: statistic requires at least one sample")

// Mean returns the arithmetic mean of xs.
func Mean(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, ErrEmptyInput
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs)), nil
}

// Median returns the 50th percentile of xs.
func Median(xs []float64) (float64, error) {
	return Percentile(xs, 50)
}

// StdDev returns the sample standard deviation (n-1 denominator).
// A single sample has zero deviation by convention.
func StdDev(xs []float64) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if n < 2 {
		return 0, nil
	}
	mean, _ := Mean(xs)
	sumSq := 0.0
	for _, x := range xs {
		diff := x - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(n-1)), nil
}

// Percentile returns the p-th percentile of xs, p in [0, 100], using
// linear interpolation between the two nearest ranks. The input is
// sorted on a copy; the caller's slice is never mutated.
func Percentile(xs []float64, p float64) (float64, error) {
	n := len(xs)
	if n == 0 {
		return 0, ErrEmptyInput
	}
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}

	sorted := make([]float64, n)
	copy(sorted, xs)
	sort.Float64s(sorted)

	if n == 1 {
		return sorted[0], nil
	}

	idx := (p / 100) * float64(n-1)
	lower := int(idx)
	upper := lower + 1
	if upper >= n {
		return sorted[n-1], nil
	}

	frac := idx - float64(lower)
	return sorted[lower] + frac*(sorted[upper]-sorted[lower]), nil
}
