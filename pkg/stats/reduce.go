// Package stats is a descriptive-statistics engine over finite float64
// samples. It computes central tendency, dispersion, shape, and
// quartile/outlier-fence statistics, offering numerically distinct algorithms
// for the same quantity where the tradeoff matters (two-pass vs. Welford's
// online variance).
//
// Every function is pure: no input slice is ever mutated (order statistics
// sort a private copy), nothing is cached, and each call recomputes from the
// sample. Precondition violations are reported as sentinel errors
// ([ErrEmptySample], [ErrInsufficientSample], [ErrDivisionByZero],
// [ErrDomain], [ErrInvalidBinWidth]) rather than NaN or Inf results.
package stats

// Identity is the default elementwise transform for reductions.
func Identity(x float64) float64 { return x }

// Sum folds the sample left-to-right with addition.
// Returns [ErrEmptySample] for an empty sample.
func Sum(sample []float64) (float64, error) {
	return SumBy(sample, Identity)
}

// SumBy applies transform to each element, then folds left-to-right with
// addition. Returns [ErrEmptySample] for an empty sample.
func SumBy(sample []float64, transform func(float64) float64) (float64, error) {
	err := validate(sample)
	if err != nil {
		return 0, err
	}

	var sum float64

	for _, v := range sample {
		sum += transform(v)
	}

	return sum, nil
}

// Product folds the sample left-to-right with multiplication.
// Returns [ErrEmptySample] for an empty sample.
func Product(sample []float64) (float64, error) {
	return ProductBy(sample, Identity)
}

// ProductBy applies transform to each element, then folds left-to-right with
// multiplication. Returns [ErrEmptySample] for an empty sample.
func ProductBy(sample []float64, transform func(float64) float64) (float64, error) {
	err := validate(sample)
	if err != nil {
		return 0, err
	}

	product := 1.0

	for _, v := range sample {
		product *= transform(v)
	}

	return product, nil
}
