package plot_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcollina/atoll/internal/plot"
	"github.com/mcollina/atoll/pkg/stats"
)

func TestHistogram_RendersHTML(t *testing.T) {
	t.Parallel()

	sample := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 11, 15}

	hist, err := stats.ComputeHistogram(sample, stats.RuleSturges)
	require.NoError(t, err)

	q, err := stats.ComputeQuartiles(sample)
	require.NoError(t, err)

	var buf bytes.Buffer

	require.NoError(t, plot.Histogram(&buf, hist, q))

	out := buf.String()
	assert.Contains(t, out, "<html>")
	assert.Contains(t, out, "echarts")
	assert.Contains(t, out, "Histogram (sturges rule")
}
