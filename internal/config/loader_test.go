package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcollina/atoll/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, config.FormatTable, cfg.Output.Format)
	assert.Equal(t, config.DefaultPrecision, cfg.Output.Precision)
	assert.True(t, cfg.Output.Color)
	assert.Equal(t, config.DefaultRule, cfg.Hist.Rule)
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atoll.yaml")

	content := []byte("output:\n  format: json\n  precision: 3\nhist:\n  rule: sturges\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := config.LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, config.FormatJSON, cfg.Output.Format)
	assert.Equal(t, 3, cfg.Output.Precision)
	assert.Equal(t, "sturges", cfg.Hist.Rule)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("ATOLL_OUTPUT_FORMAT", "yaml")

	cfg, err := config.LoadConfig("")

	require.NoError(t, err)
	assert.Equal(t, config.FormatYAML, cfg.Output.Format)
}

func TestLoadConfig_InvalidFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atoll.yaml")

	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: csv\n"), 0o600))

	_, err := config.LoadConfig(path)

	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestLoadConfig_InvalidRule(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atoll.yaml")

	require.NoError(t, os.WriteFile(path, []byte("hist:\n  rule: banana\n"), 0o600))

	_, err := config.LoadConfig(path)

	require.ErrorIs(t, err, config.ErrInvalidRule)
}

func TestValidate_InvalidPrecision(t *testing.T) {
	cfg := config.Config{
		Output: config.OutputConfig{Format: config.FormatTable, Precision: 0},
		Hist:   config.HistConfig{Rule: config.DefaultRule},
	}

	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidPrecision)
}
