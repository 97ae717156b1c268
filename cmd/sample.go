// =============================================================================
// Invoice Grouping - Sample Command
// =============================================================================
//
// This file defines the 'sample' command, which exports the built-in dataset
// so it can be edited and fed back to 'invoice report --source'.
//
// COMMAND USAGE:
//   invoice sample --out PATH
//
// The format follows the extension of PATH (.yaml, .xlsx, .db). A path with
// no extension is written as a directory of CSV files.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kowusu01/LinqGrouping/internal/dataset"
)

// outPath is the export destination.
var outPath string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Export the built-in sample dataset",
	Long: `Write the built-in dataset (nine customers, three orders, eleven line
items) to a YAML, XLSX or SQLite file, or to a directory of CSV files.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		log := newLogger(cmd, cfg)

		if err := dataset.Write(dataset.Sample(), outPath); err != nil {
			return err
		}
		log.Debug("Exported sample dataset to %s", outPath)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample dataset: %s\n", outPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVar(
		&outPath,
		"out",
		"",
		"Destination file (.yaml, .xlsx, .db) or CSV directory",
	)
	sampleCmd.MarkFlagRequired("out")
}
