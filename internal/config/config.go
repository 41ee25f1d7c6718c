// Package config provides configuration loading and validation for the atoll
// CLI. Settings come from defaults, an optional YAML file, and ATOLL_*
// environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/mcollina/atoll/pkg/stats"
)

// Sentinel validation errors.
var (
	ErrInvalidFormat    = errors.New("config: output format must be table, json, or yaml")
	ErrInvalidPrecision = errors.New("config: output precision must be positive")
	ErrInvalidRule      = errors.New("config: unknown histogram bin rule")
)

// Output format names.
const (
	FormatTable = "table"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Default configuration values.
const (
	DefaultFormat    = FormatTable
	DefaultPrecision = 6
	DefaultRule      = string(stats.RuleFreedmanDiaconis)
)

// Config holds all configuration for the atoll CLI.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Hist   HistConfig   `mapstructure:"hist"`
}

// OutputConfig holds rendering settings.
type OutputConfig struct {
	Format    string `mapstructure:"format"`
	Precision int    `mapstructure:"precision"`
	Color     bool   `mapstructure:"color"`
}

// HistConfig holds histogram settings.
type HistConfig struct {
	Rule string `mapstructure:"rule"`
	Plot string `mapstructure:"plot"`
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	switch c.Output.Format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Output.Format)
	}

	if c.Output.Precision <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidPrecision, c.Output.Precision)
	}

	switch stats.Rule(c.Hist.Rule) {
	case stats.RuleSturges, stats.RuleScott, stats.RuleSquareRoot, stats.RuleFreedmanDiaconis:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidRule, c.Hist.Rule)
	}

	return nil
}
