// Package commands implements CLI command handlers for salesight.
package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/monieshop/salesight/internal/aggregator"
	"github.com/monieshop/salesight/internal/config"
	"github.com/monieshop/salesight/internal/logging"
	"github.com/monieshop/salesight/internal/parser"
	"github.com/monieshop/salesight/internal/report"
)

// ReportCommand holds configuration and dependencies for the report command.
type ReportCommand struct {
	configPath string
	format     string
	outputPath string
	plotPath   string
	noColor    bool
	verbose    bool
	quiet      bool

	// stdout and logOutput are injectable for tests.
	stdout    io.Writer
	logOutput io.Writer
}

// NewReportCommand creates the report command.
func NewReportCommand() *cobra.Command {
	rc := &ReportCommand{
		stdout:    os.Stdout,
		logOutput: os.Stderr,
	}

	return rc.Command()
}

// Command builds the cobra command around the receiver.
func (rc *ReportCommand) Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <input.csv>",
		Short: "Generate the five-metric sales report from a CSV export",
		Long: `Report reads a transaction CSV export with the header row

  date,hour,product_id,staff_id,volume,value

and prints five aggregate metrics: highest sales volume in a day, highest
sales value in a day, most sold product by volume, top staff per month,
and the hour with the highest average transaction volume.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return rc.run(args[0])
		},
	}

	cmd.Flags().StringVarP(&rc.format, "format", "f", "", "output format: text, json or yaml (default from config)")
	cmd.Flags().StringVarP(&rc.outputPath, "output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().StringVar(&rc.plotPath, "plot", "", "also write an interactive HTML chart page to this path")
	cmd.Flags().StringVar(&rc.configPath, "config", "", "config file path (default .salesight.yaml in CWD or $HOME)")
	cmd.Flags().BoolVar(&rc.noColor, "no-color", false, "disable colored output")
	cmd.Flags().BoolVarP(&rc.verbose, "verbose", "v", false, "verbose output")
	cmd.Flags().BoolVarP(&rc.quiet, "quiet", "q", false, "suppress non-error output")

	return cmd
}

func (rc *ReportCommand) run(inputPath string) error {
	start := time.Now()

	logger := logging.Setup(rc.logOutput, rc.verbose, rc.quiet)

	cfg, err := config.Load(rc.configPath)
	if err != nil {
		return err
	}

	// Flags override config.
	format := report.Format(cfg.Report.Format)
	if rc.format != "" {
		format = report.Format(rc.format)
	}

	noColor := cfg.Report.NoColor || rc.noColor

	parsed, err := parser.New(parser.MalformedPolicy(cfg.Parser.OnMalformed), logger).ParseFile(inputPath)
	if err != nil {
		return err
	}

	agg := aggregator.New()
	agg.AddAll(parsed.Transactions)

	results := agg.Results()

	out := rc.stdout

	if rc.outputPath != "" {
		file, createErr := os.Create(rc.outputPath)
		if createErr != nil {
			return fmt.Errorf("create output: %w", createErr)
		}
		defer file.Close()

		out = file
	}

	err = report.NewRenderer(noColor).Render(out, format, results, parsed.Skipped)
	if err != nil {
		return err
	}

	if rc.plotPath != "" {
		err = rc.writePlot(agg)
		if err != nil {
			return err
		}
	}

	logger.Info("report complete",
		"records", results.Records,
		"skipped", parsed.Skipped,
		"duration", time.Since(start).Round(time.Millisecond).String(),
	)

	return nil
}

func (rc *ReportCommand) writePlot(agg *aggregator.Aggregator) error {
	file, err := os.Create(rc.plotPath)
	if err != nil {
		return fmt.Errorf("create plot: %w", err)
	}
	defer file.Close()

	err = report.GeneratePlot(agg.DailyVolumes(), agg.HourlyAverages(), file)
	if err != nil {
		return err
	}

	return nil
}
