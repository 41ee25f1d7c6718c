package stats

import "math"

// CentralMoment returns the k-th central moment: the mean of (x - mean)^k
// over the sample. The zeroth moment is 1 by convention rather than computed
// from the formula. Central moments are always population-style (divide by
// n), whatever bias correction a caller applies downstream.
func CentralMoment(sample []float64, order int) (float64, error) {
	if order < 0 {
		return 0, ErrNegativeOrder
	}

	err := validate(sample)
	if err != nil {
		return 0, err
	}

	if order == 0 {
		return 1, nil
	}

	mean, err := Mean(sample)
	if err != nil {
		return 0, err
	}

	var sum float64

	for _, v := range sample {
		sum += math.Pow(v-mean, float64(order))
	}

	return sum / float64(len(sample)), nil
}

// VariancePop returns the population variance: the mean squared deviation
// from the sample mean (divide by n). Equal to CentralMoment(sample, 2).
func VariancePop(sample []float64) (float64, error) {
	err := validate(sample)
	if err != nil {
		return 0, err
	}

	return sumSquaredDeviations(sample) / float64(len(sample)), nil
}

// Variance returns the unbiased sample variance (divide by n-1).
// Requires at least two elements, else [ErrInsufficientSample].
func Variance(sample []float64) (float64, error) {
	err := validateSize(sample, 2)
	if err != nil {
		return 0, err
	}

	return sumSquaredDeviations(sample) / float64(len(sample)-1), nil
}

// sumSquaredDeviations is the shared two-pass numerator of both variance
// flavors. The sample must already be validated non-empty.
func sumSquaredDeviations(sample []float64) float64 {
	var mean float64

	for _, v := range sample {
		mean += v
	}

	mean /= float64(len(sample))

	var sum float64

	for _, v := range sample {
		diff := v - mean
		sum += diff * diff
	}

	return sum
}
