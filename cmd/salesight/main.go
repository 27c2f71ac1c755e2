// Package main provides the entry point for the salesight CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monieshop/salesight/cmd/salesight/commands"
	"github.com/monieshop/salesight/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "salesight",
		Short: "Salesight - Monieshop retail sales analytics",
		Long: `Salesight computes aggregate sales metrics from transaction exports.

Commands:
  report    Generate the five-metric sales report from a CSV export`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewReportCommand())
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
			fmt.Fprintf(os.Stdout, "salesight %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
