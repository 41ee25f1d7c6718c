package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcollina/atoll/internal/plot"
	"github.com/mcollina/atoll/internal/render"
	"github.com/mcollina/atoll/pkg/stats"
)

// HistCommand holds the flags for the hist command.
type HistCommand struct {
	configPath string
	format     string
	output     string
	rule       string
	plotPath   string
	precision  int
	noColor    bool
	verbose    bool
}

// histRecord is the machine-readable output of the hist command.
type histRecord struct {
	Suggestions map[string]stats.BinWidth `json:"suggestions" yaml:"suggestions"`
	Histogram   stats.Histogram           `json:"histogram" yaml:"histogram"`
}

// NewHistCommand creates and configures the hist command.
func NewHistCommand() *cobra.Command {
	cmd := &HistCommand{}

	cobraCmd := &cobra.Command{
		Use:   "hist [file]",
		Short: "Suggest histogram bin widths and bin a sample",
		Long: `Hist reads a sample and prints the bin-count/bin-width suggestions of the
Sturges, Scott, square-root, and Freedman-Diaconis rules, then bins the sample
with the selected rule. With --plot it also writes an HTML chart.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.configPath, "config", "c", "", "Config file (default: .atoll.yaml in CWD or $HOME)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", "", "Output format: table, json, or yaml")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Output file (default: stdout)")
	cobraCmd.Flags().StringVarP(&cmd.rule, "rule", "r", "", "Bin rule: sturges, scott, sqrt, or fd")
	cobraCmd.Flags().StringVar(&cmd.plotPath, "plot", "", "Write an HTML histogram chart to this path")
	cobraCmd.Flags().IntVarP(&cmd.precision, "precision", "p", 0, "Significant digits for table output")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")
	cobraCmd.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "Verbose diagnostics")

	return cobraCmd
}

// Run executes the hist command.
func (c *HistCommand) Run(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(c.configPath, c.format, c.precision, c.noColor)
	if err != nil {
		return err
	}

	if c.rule != "" {
		cfg.Hist.Rule = c.rule
	}

	if c.plotPath != "" {
		cfg.Hist.Plot = c.plotPath
	}

	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	sample, err := readSample(in)
	if err != nil {
		return err
	}

	selected := stats.Rule(cfg.Hist.Rule)

	hist, err := stats.ComputeHistogram(sample, selected)
	if err != nil {
		return fmt.Errorf("hist: %w", err)
	}

	suggestions := binSuggestions(sample, c.verbose)

	if cfg.Hist.Plot != "" {
		err = c.writePlot(cfg.Hist.Plot, sample, hist)
		if err != nil {
			return err
		}
	}

	out, closeOut, err := openOutput(c.output)
	if err != nil {
		return err
	}

	record := histRecord{Suggestions: make(map[string]stats.BinWidth, len(suggestions)), Histogram: hist}
	for rule, bw := range suggestions {
		record.Suggestions[string(rule)] = bw
	}

	writeErr := writeFormatted(out, cfg, record, func(r *render.Renderer, w io.Writer) error {
		err := r.BinWidths(w, suggestions, selected)
		if err != nil {
			return err
		}

		return r.Histogram(w, hist)
	})

	closeErr := closeOut()
	if writeErr != nil {
		return writeErr
	}

	return closeErr
}

// binSuggestions runs every rule, keeping the ones defined for this sample.
// A rule that fails (zero IQR, say) is skipped rather than aborting the
// command, since the others may still apply.
func binSuggestions(sample []float64, verbose bool) map[stats.Rule]stats.BinWidth {
	rules := []stats.Rule{stats.RuleSturges, stats.RuleScott, stats.RuleSquareRoot, stats.RuleFreedmanDiaconis}

	suggestions := make(map[stats.Rule]stats.BinWidth, len(rules))

	for _, rule := range rules {
		bw, err := stats.BinWidthByRule(sample, rule)
		if err != nil {
			if verbose {
				slog.Warn("bin rule not applicable", "rule", rule, "error", err)
			}

			continue
		}

		suggestions[rule] = bw
	}

	return suggestions
}

func (c *HistCommand) writePlot(path string, sample []float64, hist stats.Histogram) error {
	q, err := stats.ComputeQuartiles(sample)
	if err != nil {
		return fmt.Errorf("hist plot: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create plot file: %w", err)
	}
	defer file.Close()

	return plot.Histogram(file, hist, q)
}
