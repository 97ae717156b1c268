// =============================================================================
// Invoice Grouping - Report Command
// =============================================================================
//
// This file defines the 'report' command, the main command of the tool. It
// runs the whole pipeline for one dataset.
//
// COMMAND USAGE:
//   invoice report [flags]
//
// FLAGS:
//   --source      : Dataset to report on (sample, *.yaml, *.xlsx, *.db, CSV dir)
//   --format      : Report format; repeat for several (text, xlsx, yaml)
//   --output-dir  : Directory for file reports
//   --summary     : Append the per-category summary
//
// PROCESSING PIPELINE:
//   1. Load configuration and apply flag overrides
//   2. Load the dataset
//   3. Join and group
//   4. Print the text report to stdout
//   5. Write file reports and print their paths (text too with --output-dir)
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/kowusu01/LinqGrouping/internal/config"
	"github.com/kowusu01/LinqGrouping/internal/dataset"
	"github.com/kowusu01/LinqGrouping/internal/invoice"
	"github.com/kowusu01/LinqGrouping/internal/report"
	"github.com/kowusu01/LinqGrouping/internal/types"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	sourceFlag    string
	formatFlags   []string
	outputDirFlag string
	summaryFlag   bool
)

// =============================================================================
// REPORT COMMAND DEFINITION
// =============================================================================

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print line items grouped by product category",
	Long: `The report command loads a dataset, joins each line item to its order
and customer, and groups the resulting rows by product category.

The text report always goes to stdout when "text" is among the formats.
The xlsx and yaml formats are written to files in the output directory, and
the path of each file is printed. When --output-dir is given on the command
line, the text report is also saved there as a .txt file.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		applyReportFlags(cmd, cfg)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return runReport(cmd, cfg, cmd.Flags().Changed("output-dir"))
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVar(
		&sourceFlag,
		"source",
		"",
		"Dataset source: sample, a .yaml/.xlsx/.db file or a CSV directory",
	)
	reportCmd.Flags().StringSliceVar(
		&formatFlags,
		"format",
		nil,
		"Report format (text, xlsx, yaml); may be repeated",
	)
	reportCmd.Flags().StringVar(
		&outputDirFlag,
		"output-dir",
		"",
		"Directory for file reports",
	)
	reportCmd.Flags().BoolVar(
		&summaryFlag,
		"summary",
		false,
		"Append the per-category summary",
	)
}

// applyReportFlags copies flags the user set over the file configuration.
func applyReportFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = sourceFlag
	}
	if flags.Changed("format") {
		cfg.Formats = cfg.Formats[:0]
		for _, f := range formatFlags {
			cfg.Formats = append(cfg.Formats, strings.ToLower(strings.TrimSpace(f)))
		}
	}
	if flags.Changed("output-dir") {
		cfg.OutputDir = outputDirFlag
	}
	if flags.Changed("summary") {
		cfg.Summary = summaryFlag
	}
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runReport runs the pipeline with cfg. saveText also writes the text report
// to the output directory.
func runReport(cmd *cobra.Command, cfg *config.Config, saveText bool) error {
	startTime := time.Now()
	log := newLogger(cmd, cfg)
	out := cmd.OutOrStdout()

	// STEP 1: LOAD DATASET
	ds, err := dataset.Load(cfg.Source)
	if err != nil {
		return err
	}
	log.Info("Loaded %d customers, %d orders, %d line items from %s",
		len(ds.Customers), len(ds.Orders), len(ds.LineItems), ds.Source)

	// STEP 2: JOIN AND GROUP
	groups, stats := invoice.New(invoice.WithLogger(log)).EvaluateDataset(ds)
	if stats.UnmatchedLineItems > 0 || stats.UnmatchedOrderMatches > 0 {
		log.Warn("Excluded %d line item(s) with no order and %d with no customer",
			stats.UnmatchedLineItems, stats.UnmatchedOrderMatches)
	}

	// STEP 3: TEXT REPORT
	if cfg.HasFormat("text") {
		if err := writeTextReport(out, groups, cfg.Summary); err != nil {
			return fmt.Errorf("failed to print report: %w", err)
		}
	}

	// STEP 4: FILE REPORTS
	writer := report.NewWriter(cfg.OutputDir, cfg.OutputNameFormat, ds.Source, log)
	writer.Summary = cfg.Summary
	for _, format := range cfg.Formats {
		if format == "text" && !saveText {
			continue
		}
		path, err := writer.Write(format, groups)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s report: %s\n", format, path)
	}

	log.Info("Reported %d rows in %d groups in %s", stats.DetailRows, stats.Groups, time.Since(startTime))
	return nil
}

func writeTextReport(w io.Writer, groups []types.Group, summary bool) error {
	if err := report.WriteText(w, groups); err != nil {
		return err
	}
	if !summary {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return report.WriteSummaryText(w, report.Summarize(groups))
}
