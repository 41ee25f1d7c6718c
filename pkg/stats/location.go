package stats

import (
	"fmt"
	"math"
)

// Mean returns the arithmetic mean of the sample.
// Returns [ErrEmptySample] for an empty sample.
func Mean(sample []float64) (float64, error) {
	sum, err := Sum(sample)
	if err != nil {
		return 0, err
	}

	return sum / float64(len(sample)), nil
}

// GeometricMean returns the n-th root of the product of the sample.
// Defined over the reals only for all-positive samples; any element <= 0
// yields [ErrDomain] instead of a NaN result.
//
// The root is taken in log space: the raw product overflows or underflows
// long before the root ever would, while the log sum stays finite for any
// finite positive sample.
func GeometricMean(sample []float64) (float64, error) {
	err := validate(sample)
	if err != nil {
		return 0, err
	}

	for i, v := range sample {
		if v <= 0 {
			return 0, fmt.Errorf("stats: geometric mean requires positive elements, got %v at index %d: %w", v, i, ErrDomain)
		}
	}

	logSum, err := SumBy(sample, math.Log)
	if err != nil {
		return 0, err
	}

	return math.Exp(logSum / float64(len(sample))), nil
}

// HarmonicMean returns n divided by the sum of elementwise reciprocals.
// A zero element yields [ErrDivisionByZero].
func HarmonicMean(sample []float64) (float64, error) {
	err := validate(sample)
	if err != nil {
		return 0, err
	}

	for i, v := range sample {
		if v == 0 {
			return 0, fmt.Errorf("stats: harmonic mean of a sample with a zero at index %d: %w", i, ErrDivisionByZero)
		}
	}

	reciprocalSum, err := SumBy(sample, func(x float64) float64 { return 1 / x })
	if err != nil {
		return 0, err
	}

	return float64(len(sample)) / reciprocalSum, nil
}

// Median returns the middle element of the sorted sample for odd sizes, or
// the mean of the two middle elements for even sizes. The caller's slice is
// not modified; sorting happens on a private copy.
func Median(sample []float64) (float64, error) {
	err := validate(sample)
	if err != nil {
		return 0, err
	}

	return medianSorted(sortedCopy(sample)), nil
}

// medianSorted computes the median of an already-sorted non-empty slice.
func medianSorted(sorted []float64) float64 {
	count := len(sorted)
	mid := count / 2

	if count%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
