package stats

import (
	"fmt"
	"math"
)

// Minimum sample sizes below which the bias-corrected shape statistics
// divide by zero.
const (
	minSkewnessSize = 3
	minKurtosisSize = 4
)

// normalKurtosis is the kurtosis of the normal distribution, subtracted to
// obtain excess kurtosis.
const normalKurtosis = 3

// SkewnessPop returns the population skewness m3 / m2^(3/2), where m2 and m3
// are the second and third central moments. A zero-variance sample has no
// defined skewness and yields [ErrDivisionByZero].
func SkewnessPop(sample []float64) (float64, error) {
	m2, m3, err := centralMoments23(sample)
	if err != nil {
		return 0, err
	}

	return m3 / math.Pow(m2, 1.5), nil
}

// Skewness returns the bias-corrected sample skewness: [SkewnessPop] scaled
// by sqrt(n(n-1))/(n-2). Requires at least three elements, else
// [ErrInsufficientSample].
func Skewness(sample []float64) (float64, error) {
	err := validateSize(sample, minSkewnessSize)
	if err != nil {
		return 0, err
	}

	pop, err := SkewnessPop(sample)
	if err != nil {
		return 0, err
	}

	count := float64(len(sample))
	correction := math.Sqrt(count*(count-1)) / (count - 2)

	return correction * pop, nil
}

// KurtosisPop returns the population kurtosis m4 / m2^2 (kurtosis proper,
// not excess: the normal distribution scores 3). A zero-variance sample
// yields [ErrDivisionByZero].
func KurtosisPop(sample []float64) (float64, error) {
	err := validate(sample)
	if err != nil {
		return 0, err
	}

	m2, err := CentralMoment(sample, 2)
	if err != nil {
		return 0, err
	}

	if m2 == 0 {
		return 0, fmt.Errorf("stats: kurtosis of a zero-variance sample: %w", ErrDivisionByZero)
	}

	m4, err := CentralMoment(sample, 4)
	if err != nil {
		return 0, err
	}

	return m4 / (m2 * m2), nil
}

// Kurtosis returns the bias-corrected sample excess kurtosis following the
// spreadsheet convention: with g2 the population excess kurtosis and
// c1 = (n-1)/((n-2)(n-3)), the result is c1 * ((n+1)*g2 + 6). Requires at
// least four elements, else [ErrInsufficientSample].
func Kurtosis(sample []float64) (float64, error) {
	err := validateSize(sample, minKurtosisSize)
	if err != nil {
		return 0, err
	}

	pop, err := KurtosisPop(sample)
	if err != nil {
		return 0, err
	}

	count := float64(len(sample))
	excess := pop - normalKurtosis
	correction := (count - 1) / ((count - 2) * (count - 3))

	return correction * ((count+1)*excess + 6), nil
}

// centralMoments23 computes the second and third central moments in one
// validated pass, rejecting zero-variance samples.
func centralMoments23(sample []float64) (m2, m3 float64, err error) {
	err = validate(sample)
	if err != nil {
		return 0, 0, err
	}

	m2, err = CentralMoment(sample, 2)
	if err != nil {
		return 0, 0, err
	}

	if m2 == 0 {
		return 0, 0, fmt.Errorf("stats: skewness of a zero-variance sample: %w", ErrDivisionByZero)
	}

	m3, err = CentralMoment(sample, 3)
	if err != nil {
		return 0, 0, err
	}

	return m2, m3, nil
}
