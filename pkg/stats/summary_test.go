package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe(t *testing.T) {
	t.Parallel()

	sample := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	s, err := Describe(sample)

	require.NoError(t, err)
	assert.Equal(t, 8, s.N)
	assert.InDelta(t, 2, s.Min, epsilon)
	assert.InDelta(t, 9, s.Max, epsilon)
	assert.InDelta(t, 7, s.Range, epsilon)
	assert.InDelta(t, 5, s.Mean, epsilon)
	assert.InDelta(t, 4.5, s.Median, epsilon)
	assert.InDelta(t, 4, s.VariancePop, epsilon)
	assert.InDelta(t, 4.571428571428571, s.Variance, epsilon)
	assert.InDelta(t, 2, s.StdDevPop, epsilon)
	assert.InDelta(t, 0.65625, s.SkewnessPop, 1e-9)
	assert.InDelta(t, 0.8184875533567996, s.Skewness, 1e-9)
	assert.InDelta(t, 2.78125, s.KurtosisPop, 1e-9)
	assert.InDelta(t, 0.940625, s.Kurtosis, 1e-9)

	require.NotNil(t, s.GeometricMean)
	assert.InDelta(t, 4.603215596046737, *s.GeometricMean, 1e-9)

	require.NotNil(t, s.HarmonicMean)
	assert.InDelta(t, 4.201750729470613, *s.HarmonicMean, 1e-9)
}

func TestDescribe_ConsistentWithIndividualFunctions(t *testing.T) {
	t.Parallel()

	sample := []float64{36, 7, 40, 41, 6, 42, 43, 47, 49, 15, 39}

	s, err := Describe(sample)
	require.NoError(t, err)

	mean, err := Mean(sample)
	require.NoError(t, err)
	assert.InDelta(t, mean, s.Mean, epsilon)

	variance, err := Variance(sample)
	require.NoError(t, err)
	assert.InDelta(t, variance, s.Variance, epsilon)

	q, err := ComputeQuartiles(sample)
	require.NoError(t, err)
	assert.Equal(t, q, s.Quartiles)

	kurt, err := Kurtosis(sample)
	require.NoError(t, err)
	assert.InDelta(t, kurt, s.Kurtosis, epsilon)
}

func TestDescribe_TooSmall(t *testing.T) {
	t.Parallel()

	_, err := Describe([]float64{1, 2, 3})

	require.ErrorIs(t, err, ErrInsufficientSample)
}

func TestDescribe_NonPositiveSampleOmitsMeans(t *testing.T) {
	t.Parallel()

	s, err := Describe([]float64{-2, -1, 1, 2, 3})

	require.NoError(t, err)
	assert.Nil(t, s.GeometricMean)
	assert.NotNil(t, s.HarmonicMean)
}

func TestDescribe_ZeroElementOmitsHarmonicMean(t *testing.T) {
	t.Parallel()

	s, err := Describe([]float64{0, 1, 2, 3, 4})

	require.NoError(t, err)
	assert.Nil(t, s.GeometricMean)
	assert.Nil(t, s.HarmonicMean)
}

func TestDescribe_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	sample := []float64{9, 1, 7, 3, 5}

	_, err := Describe(sample)

	require.NoError(t, err)
	assert.Equal(t, []float64{9, 1, 7, 3, 5}, sample)
}
