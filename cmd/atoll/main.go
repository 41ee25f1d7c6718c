// Package main provides the entry point for the atoll CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcollina/atoll/cmd/atoll/commands"
	"github.com/mcollina/atoll/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atoll",
		Short: "atoll - descriptive statistics for numeric samples",
		Long: `atoll computes descriptive statistics over a numeric sample.

Commands:
  describe  Full descriptive summary (location, dispersion, quartiles, shape)
  hist      Histogram bin-width suggestions and binned counts`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewDescribeCommand())
	rootCmd.AddCommand(commands.NewHistCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "atoll %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
