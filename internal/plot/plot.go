// Package plot renders a sample histogram as a self-contained HTML page
// using go-echarts.
package plot

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mcollina/atoll/pkg/stats"
)

const (
	chartWidth  = "100%"
	chartHeight = "500px"

	// labelPrecision is the display precision for bin edge labels.
	labelPrecision = 4
)

// Histogram builds a bar chart from the binned sample and writes it as an
// HTML page. The subtitle carries the quartile and fence context so an
// outlier-heavy histogram can be read at a glance.
func Histogram(w io.Writer, hist stats.Histogram, q stats.Quartiles) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Width:  chartWidth,
			Height: chartHeight,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Histogram (%s rule, %d bins)", hist.Rule, hist.Bins()),
			Subtitle: fmt.Sprintf("q1=%.*g  median=%.*g  q3=%.*g  fences=[%.*g, %.*g]", labelPrecision, q.Q1, labelPrecision, q.Q2, labelPrecision, q.Q3, labelPrecision, q.LowerFence, labelPrecision, q.UpperFence),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "bin"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "count"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider"}),
	)

	labels := make([]string, len(hist.Counts))
	data := make([]opts.BarData, len(hist.Counts))

	for i, c := range hist.Counts {
		labels[i] = fmt.Sprintf("%.*g", labelPrecision, hist.Edges[i])
		data[i] = opts.BarData{Value: c}
	}

	bar.SetXAxis(labels)
	bar.AddSeries("count", data)

	err := bar.Render(w)
	if err != nil {
		return fmt.Errorf("render histogram plot: %w", err)
	}

	return nil
}
