// =============================================================================
// Invoice Grouping - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Invoice Grouping CLI application.
// It delegates command execution to the cmd package.
//
// USAGE:
//   invoice report          - Print line items grouped by product category
//   invoice sample          - Export the built-in sample dataset
//   invoice version         - Display the application version
//
// ARCHITECTURE:
//   - cmd/                : CLI command definitions (Cobra)
//   - internal/query      : generic inner join and group-by
//   - internal/invoice    : the line item -> order -> customer evaluator
//   - internal/dataset    : dataset loaders and writers
//   - internal/report     : text, XLSX and YAML reports
//   - internal/config     : YAML configuration
//   - internal/logger     : levelled logging
//   - pkg/utils           : output file naming
//
// =============================================================================

package main

import (
	"github.com/kowusu01/LinqGrouping/cmd"
)

func main() {
	cmd.Execute()
}
