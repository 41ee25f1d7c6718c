package stats

import (
	"fmt"
	"math"
	"slices"
)

// validate rejects empty samples and non-finite elements. Every exported
// statistic runs it before computing, so NaN and Inf never propagate into a
// result silently.
func validate(sample []float64) error {
	if len(sample) == 0 {
		return ErrEmptySample
	}

	for i, v := range sample {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("stats: non-finite element %v at index %d: %w", v, i, ErrDomain)
		}
	}

	return nil
}

// validateSize runs validate and additionally requires at least minSize
// elements.
func validateSize(sample []float64, minSize int) error {
	err := validate(sample)
	if err != nil {
		return err
	}

	if len(sample) < minSize {
		return fmt.Errorf("stats: need at least %d elements, got %d: %w", minSize, len(sample), ErrInsufficientSample)
	}

	return nil
}

// sortedCopy returns the sample sorted ascending without touching the
// caller's slice. Order statistics sort through this so a shared sample is
// never mutated.
func sortedCopy(sample []float64) []float64 {
	sorted := make([]float64, len(sample))
	copy(sorted, sample)
	slices.Sort(sorted)

	return sorted
}
