// =============================================================================
// Invoice Grouping - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that all other commands are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (invoice)
//   ├── reportCmd (invoice report)
//   ├── sampleCmd (invoice sample)
//   └── versionCmd (invoice version)
//
// The root command owns the global flags (--config, --verbose) and the
// helpers that turn them into a Config and a Logger.
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kowusu01/LinqGrouping/internal/config"
	"github.com/kowusu01/LinqGrouping/internal/logger"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose forces debug logging when set to true.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "invoice",
	Short: "Invoice Grouping - Group order line items by product category",

	Long: `Invoice Grouping joins line items to their orders and customers and
prints the resulting detail rows grouped by product category.

Groups appear in the order their category is first seen, and rows keep the
order of the line items. Line items whose order or customer cannot be found
are left out.

Example Usage:
  invoice report                          # Report on the built-in sample
  invoice report --source ./data.xlsx     # Report on a workbook
  invoice report --format text --format xlsx
  invoice sample --out ./sample.db        # Export the sample as SQLite`,

	// Errors are printed once by Execute.
	SilenceErrors: true,
	SilenceUsage:  true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: a missing file is only an error when the flag is given.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file",
	)

	// --verbose flag: Enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// =============================================================================
// SHARED HELPERS
// =============================================================================

// loadConfig reads the configuration named by --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit := cmd.Flags().Changed("config")
	cfg, err := config.LoadOrDefault(cfgFile, explicit)
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	return cfg, nil
}

// newLogger creates the stderr logger for cfg.
func newLogger(cmd *cobra.Command, cfg *config.Config) logger.Logger {
	return logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
}
