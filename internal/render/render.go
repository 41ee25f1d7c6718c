// Package render formats summaries, bin suggestions, and histograms for the
// terminal (go-pretty tables) or for machine consumption (JSON, YAML).
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/mcollina/atoll/pkg/stats"
)

// jsonIndent is the indentation used for JSON output.
const jsonIndent = "  "

// Options controls terminal rendering.
type Options struct {
	Precision int
	Color     bool
}

// Renderer writes statistics to a writer with the configured options.
type Renderer struct {
	opts Options
}

// New creates a Renderer.
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// Summary writes the descriptive summary as grouped tables.
func (r *Renderer) Summary(w io.Writer, s stats.Summary) error {
	location := [][2]string{
		{"mean", r.float(s.Mean)},
		{"median", r.float(s.Median)},
	}

	if s.GeometricMean != nil {
		location = append(location, [2]string{"geometric mean", r.float(*s.GeometricMean)})
	}

	if s.HarmonicMean != nil {
		location = append(location, [2]string{"harmonic mean", r.float(*s.HarmonicMean)})
	}

	sections := []struct {
		title string
		rows  [][2]string
	}{
		{title: "Sample", rows: [][2]string{
			{"n", humanize.Comma(int64(s.N))},
			{"min", r.float(s.Min)},
			{"max", r.float(s.Max)},
			{"range", r.float(s.Range)},
		}},
		{title: "Location", rows: location},
		{title: "Dispersion", rows: [][2]string{
			{"variance", r.float(s.Variance)},
			{"variance (pop)", r.float(s.VariancePop)},
			{"std dev", r.float(s.StdDev)},
			{"std dev (pop)", r.float(s.StdDevPop)},
		}},
		{title: "Quartiles", rows: [][2]string{
			{"q1", r.float(s.Quartiles.Q1)},
			{"q2", r.float(s.Quartiles.Q2)},
			{"q3", r.float(s.Quartiles.Q3)},
			{"iqr", r.float(s.Quartiles.IQR)},
			{"lower fence", r.float(s.Quartiles.LowerFence)},
			{"upper fence", r.float(s.Quartiles.UpperFence)},
		}},
		{title: "Shape", rows: [][2]string{
			{"skewness", r.float(s.Skewness)},
			{"skewness (pop)", r.float(s.SkewnessPop)},
			{"kurtosis (excess)", r.float(s.Kurtosis)},
			{"kurtosis (pop)", r.float(s.KurtosisPop)},
		}},
	}

	for _, section := range sections {
		err := r.header(w, section.title)
		if err != nil {
			return err
		}

		err = r.table(w, section.rows)
		if err != nil {
			return err
		}
	}

	return nil
}

// BinWidths writes one row per bin rule suggestion, marking the selected
// rule.
func (r *Renderer) BinWidths(w io.Writer, suggestions map[stats.Rule]stats.BinWidth, selected stats.Rule) error {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"rule", "bins", "width", ""})

	for _, rule := range []stats.Rule{stats.RuleSturges, stats.RuleScott, stats.RuleSquareRoot, stats.RuleFreedmanDiaconis} {
		bw, ok := suggestions[rule]
		if !ok {
			continue
		}

		mark := ""
		if rule == selected {
			mark = "*"
		}

		tbl.AppendRow(table.Row{string(rule), bw.K, r.float(bw.H), mark})
	}

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("render bin widths: %w", err)
	}

	return nil
}

// Histogram writes the binned counts with proportional hash bars.
func (r *Renderer) Histogram(w io.Writer, h stats.Histogram) error {
	const barWidth = 40

	peak := 0
	for _, c := range h.Counts {
		if c > peak {
			peak = c
		}
	}

	tbl := newTable()
	tbl.AppendHeader(table.Row{"bin", "count", ""})

	for i, c := range h.Counts {
		lo := h.Edges[i]
		hi := h.Edges[i+1]

		bar := ""
		if peak > 0 {
			bar = barOf(c * barWidth / peak)
		}

		label := fmt.Sprintf("[%s, %s)", r.float(lo), r.float(hi))
		if i == len(h.Counts)-1 {
			label = fmt.Sprintf("[%s, %s]", r.float(lo), r.float(hi))
		}

		tbl.AppendRow(table.Row{label, c, bar})
	}

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}

	return nil
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("render json: %w", err)
	}

	return nil
}

// YAML writes v as YAML.
func (r *Renderer) YAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)

	err := enc.Encode(v)
	if err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}

	err = enc.Close()
	if err != nil {
		return fmt.Errorf("render yaml: %w", err)
	}

	return nil
}

// header writes a section header, colored when enabled.
func (r *Renderer) header(w io.Writer, title string) error {
	text := title
	if r.opts.Color {
		text = color.New(color.FgCyan, color.Bold).Sprint(title)
	}

	_, err := fmt.Fprintln(w, text)
	if err != nil {
		return fmt.Errorf("render header: %w", err)
	}

	return nil
}

// table writes two-column name/value rows in the house borderless style.
func (r *Renderer) table(w io.Writer, rows [][2]string) error {
	tbl := newTable()

	for _, row := range rows {
		tbl.AppendRow(table.Row{row[0], row[1]})
	}

	_, err := fmt.Fprintln(w, tbl.Render())
	if err != nil {
		return fmt.Errorf("render table: %w", err)
	}

	return nil
}

// float formats a float at the configured precision.
func (r *Renderer) float(v float64) string {
	return strconv.FormatFloat(v, 'g', r.opts.Precision, 64)
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false
	tbl.Style().Options.SeparateHeader = false

	return tbl
}

func barOf(n int) string {
	bar := make([]byte, n)
	for i := range bar {
		bar[i] = '#'
	}

	return string(bar)
}
