package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHistogram(t *testing.T) {
	t.Parallel()

	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	// Sturges on this sample suggests 4 bins of width 1.75 starting at 1.
	hist, err := ComputeHistogram(sample, RuleSturges)

	require.NoError(t, err)
	assert.Equal(t, 4, hist.Bins())
	assert.InDelta(t, 1, hist.Min, epsilon)
	assert.InDelta(t, 1.75, hist.Width, epsilon)
	assert.Len(t, hist.Edges, 5)
	assert.Equal(t, []int{2, 2, 2, 2}, hist.Counts)
}

func TestComputeHistogram_CountsSumToSampleSize(t *testing.T) {
	t.Parallel()

	sample := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9}

	for _, rule := range []Rule{RuleSturges, RuleScott, RuleSquareRoot, RuleFreedmanDiaconis} {
		hist, err := ComputeHistogram(sample, rule)
		require.NoError(t, err)

		var total int
		for _, c := range hist.Counts {
			total += c
		}

		assert.Equal(t, len(sample), total, "rule %s", rule)
	}
}

func TestComputeHistogram_MaxFallsInLastBin(t *testing.T) {
	t.Parallel()

	hist, err := ComputeHistogram([]float64{0, 1, 2, 3, 4, 5, 6, 7}, RuleSquareRoot)

	require.NoError(t, err)
	assert.Positive(t, hist.Counts[hist.Bins()-1])
}

func TestComputeHistogram_UnknownRule(t *testing.T) {
	t.Parallel()

	_, err := ComputeHistogram([]float64{1, 2, 3}, Rule("banana"))

	require.ErrorIs(t, err, ErrUnknownRule)
}

func TestBinWidthByRule_Dispatch(t *testing.T) {
	t.Parallel()

	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8}

	direct, err := FreedmanDiaconisRule(sample)
	require.NoError(t, err)

	dispatched, err := BinWidthByRule(sample, RuleFreedmanDiaconis)
	require.NoError(t, err)

	assert.Equal(t, direct, dispatched)
}
