package stats

import "math"

// The four standard deviations are thin square-root wrappers over the four
// variance flavors. Callers pick the bias correction (sample vs. population)
// and the numerical path (two-pass vs. Welford) by name.

// StdDev returns the square root of [Variance].
func StdDev(sample []float64) (float64, error) {
	return sqrtOf(Variance, sample)
}

// StdDevPop returns the square root of [VariancePop].
func StdDevPop(sample []float64) (float64, error) {
	return sqrtOf(VariancePop, sample)
}

// StableStdDev returns the square root of [StableVariance].
func StableStdDev(sample []float64) (float64, error) {
	return sqrtOf(StableVariance, sample)
}

// StableStdDevPop returns the square root of [StableVariancePop].
func StableStdDevPop(sample []float64) (float64, error) {
	return sqrtOf(StableVariancePop, sample)
}

func sqrtOf(variance func([]float64) (float64, error), sample []float64) (float64, error) {
	v, err := variance(sample)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}
