package stats

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSkewness(t *testing.T) {
	t.Parallel()

	sample := []float64{36, 7, 40, 41, 6, 42, 43, 47, 49, 15, 39}

	pop, err := SkewnessPop(sample)
	require.NoError(t, err)
	assert.InDelta(t, -0.9125338477056573, pop, 1e-9)

	corrected, err := Skewness(sample)
	require.NoError(t, err)
	assert.InDelta(t, -1.0634150819204966, corrected, 1e-9)
}

func TestSkewness_Symmetric(t *testing.T) {
	t.Parallel()

	got, err := Skewness([]float64{1, 2, 3, 4, 5})

	require.NoError(t, err)
	assert.InDelta(t, 0, got, epsilon)
}

func TestSkewness_TooSmall(t *testing.T) {
	t.Parallel()

	_, err := Skewness([]float64{1, 2})

	require.ErrorIs(t, err, ErrInsufficientSample)
}

func TestSkewness_ZeroVariance(t *testing.T) {
	t.Parallel()

	_, err := SkewnessPop([]float64{5, 5, 5})

	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestKurtosis(t *testing.T) {
	t.Parallel()

	sample := []float64{36, 7, 40, 41, 6, 42, 43, 47, 49, 15, 39}

	pop, err := KurtosisPop(sample)
	require.NoError(t, err)
	assert.InDelta(t, 2.1599313530818884, pop, 1e-9)

	corrected, err := Kurtosis(sample)
	require.NoError(t, err)
	assert.InDelta(t, -0.5667810781968526, corrected, 1e-9)
}

func TestKurtosis_TooSmall(t *testing.T) {
	t.Parallel()

	_, err := Kurtosis([]float64{1, 2, 3})

	require.ErrorIs(t, err, ErrInsufficientSample)
}

func TestKurtosisPop_ZeroVariance(t *testing.T) {
	t.Parallel()

	_, err := KurtosisPop([]float64{2, 2})

	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestKurtosisPop_NormalSampleConvergesToThree(t *testing.T) {
	t.Parallel()

	// The kurtosis of the normal distribution is 3. On 200k draws the
	// estimator's standard error is about sqrt(24/n) ~ 0.011, so a 0.1
	// tolerance leaves wide margin while still catching a wrong formula.
	rng := rand.New(rand.NewPCG(42, 1))

	sample := make([]float64, 200_000)
	for i := range sample {
		sample[i] = rng.NormFloat64()
	}

	got, err := KurtosisPop(sample)

	require.NoError(t, err)
	assert.InDelta(t, 3, got, 0.1)
}
