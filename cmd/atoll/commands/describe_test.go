package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcollina/atoll/pkg/stats"
)

func writeSampleFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDescribeCommand_JSON(t *testing.T) {
	input := writeSampleFile(t, "2 4 4 4 5 5 7 9\n")
	output := filepath.Join(t.TempDir(), "out.json")

	cmd := NewDescribeCommand()
	cmd.SetArgs([]string{input, "--format", "json", "--output", output})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var summary stats.Summary

	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, 8, summary.N)
	assert.InDelta(t, 5, summary.Mean, 1e-9)
	assert.InDelta(t, 4.5, summary.Median, 1e-9)
}

func TestDescribeCommand_Table(t *testing.T) {
	input := writeSampleFile(t, "2 4 4 4 5 5 7 9\n")
	output := filepath.Join(t.TempDir(), "out.txt")

	cmd := NewDescribeCommand()
	cmd.SetArgs([]string{input, "--output", output, "--no-color"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Contains(t, string(data), "Dispersion")
	assert.Contains(t, string(data), "median")
}

func TestDescribeCommand_TooSmallSample(t *testing.T) {
	input := writeSampleFile(t, "1 2 3\n")

	cmd := NewDescribeCommand()
	cmd.SetArgs([]string{input})

	err := cmd.Execute()

	require.ErrorIs(t, err, stats.ErrInsufficientSample)
}

func TestOpenOutput_SurfacesCloseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	out, closeOut, err := openOutput(path)
	require.NoError(t, err)

	_, err = fmt.Fprintln(out, "42")
	require.NoError(t, err)
	require.NoError(t, closeOut())

	// A second close fails on the underlying file, and the close func
	// must report it instead of discarding it.
	require.Error(t, closeOut())
}

func TestOpenOutput_StdoutNeedsNoClose(t *testing.T) {
	out, closeOut, err := openOutput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, out)
	require.NoError(t, closeOut())
}

func TestDescribeCommand_BadInput(t *testing.T) {
	input := writeSampleFile(t, "1 2 banana\n")

	cmd := NewDescribeCommand()
	cmd.SetArgs([]string{input})

	require.Error(t, cmd.Execute())
}
