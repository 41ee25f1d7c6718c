package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcollina/atoll/internal/config"
	"github.com/mcollina/atoll/internal/render"
	"github.com/mcollina/atoll/pkg/stats"
)

// DescribeCommand holds the flags for the describe command.
type DescribeCommand struct {
	configPath string
	format     string
	output     string
	precision  int
	noColor    bool
	verbose    bool
}

// NewDescribeCommand creates and configures the describe command.
func NewDescribeCommand() *cobra.Command {
	cmd := &DescribeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "describe [file]",
		Short: "Compute the full descriptive summary of a sample",
		Long: `Describe reads one floating-point observation per whitespace-separated
token from a file (or stdin) and prints location, dispersion, quartile, and
shape statistics.`,
		Args: cobra.MaximumNArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVarP(&cmd.configPath, "config", "c", "", "Config file (default: .atoll.yaml in CWD or $HOME)")
	cobraCmd.Flags().StringVarP(&cmd.format, "format", "f", "", "Output format: table, json, or yaml")
	cobraCmd.Flags().StringVarP(&cmd.output, "output", "o", "", "Output file (default: stdout)")
	cobraCmd.Flags().IntVarP(&cmd.precision, "precision", "p", 0, "Significant digits for table output")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")
	cobraCmd.Flags().BoolVarP(&cmd.verbose, "verbose", "v", false, "Verbose diagnostics")

	return cobraCmd
}

// Run executes the describe command.
func (c *DescribeCommand) Run(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(c.configPath, c.format, c.precision, c.noColor)
	if err != nil {
		return err
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

	if c.verbose {
		slog.Info("sample read", "n", len(sample))
	}

	summary, err := stats.Describe(sample)
	if err != nil {
		return fmt.Errorf("describe: %w", err)
	}

	out, closeOut, err := openOutput(c.output)
	if err != nil {
		return err
	}

	writeErr := writeFormatted(out, cfg, summary, func(r *render.Renderer, w io.Writer) error {
		return r.Summary(w, summary)
	})

	closeErr := closeOut()
	if writeErr != nil {
		return writeErr
	}

	return closeErr
}

// loadConfig loads the file/env configuration and overlays the command-line
// flags that were explicitly set.
func loadConfig(path, format string, precision int, noColor bool) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if format != "" {
		cfg.Output.Format = format
	}

	if precision > 0 {
		cfg.Output.Precision = precision
	}

	if noColor {
		cfg.Output.Color = false
	}

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// openOutput returns the destination writer and a close function. Stdout is
// returned with a no-op close. The close error matters: a buffered short
// write only surfaces there.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}

	closeFn := func() error {
		closeErr := file.Close()
		if closeErr != nil {
			return fmt.Errorf("close output: %w", closeErr)
		}

		return nil
	}

	return file, closeFn, nil
}

// writeFormatted dispatches on the configured output format: the table
// callback for terminal output, or the record marshalled as JSON/YAML.
func writeFormatted(w io.Writer, cfg *config.Config, record any, tableFn func(*render.Renderer, io.Writer) error) error {
	r := render.New(render.Options{
		Precision: cfg.Output.Precision,
		Color:     cfg.Output.Color,
	})

	switch cfg.Output.Format {
	case config.FormatJSON:
		return r.JSON(w, record)
	case config.FormatYAML:
		return r.YAML(w, record)
	default:
		return tableFn(r, w)
	}
}
