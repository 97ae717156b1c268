// =============================================================================
// Invoice Grouping - Configuration Module
// =============================================================================
//
// This module loads the application configuration from a YAML file and
// applies defaults and validation.
//
// EXAMPLE (config.yaml):
//   source: sample
//   output_dir: ./output
//   output_name_format: "invoice_{timestamp}_{uuid}"
//   formats: [text, xlsx]
//   log_level: info
//   summary: false
//
// Command-line flags override values from the file; see cmd/report.go.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// Source is the dataset to report on.
	// "sample" (or empty) uses the built-in dataset; otherwise a YAML, XLSX
	// or SQLite file, or a directory of CSV files.
	// Default: "sample"
	Source string `yaml:"source"`

	// OutputDir is the directory where file reports (xlsx, yaml) are placed.
	// Default: "./output"
	OutputDir string `yaml:"output_dir"`

	// OutputNameFormat is the file name pattern for file reports, without
	// extension.
	// Placeholders:
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	//   {source}    - Base name of the dataset source
	// Default: "invoice_{timestamp}_{uuid}"
	OutputNameFormat string `yaml:"output_name_format"`

	// Formats lists the report formats to produce.
	// Valid values: "text", "xlsx", "yaml"
	// Default: ["text"]
	Formats []string `yaml:"formats"`

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// Summary adds the per-category summary to the text report.
	Summary bool `yaml:"summary"`
}

// SupportedFormats are the report formats the application can write.
var SupportedFormats = []string{"text", "xlsx", "yaml"}

var validLogLevels = []string{"debug", "info", "warn", "error"}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load loads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The path to the configuration file.
//
// RETURNS:
//   - A pointer to the Config struct with defaults applied.
//   - An error if the file cannot be read, parsed or validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path if it exists. When the file is missing and
// required is false, the defaults are returned instead.
func LoadOrDefault(path string, required bool) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) && !required {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes, defaults and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.Source == "" {
		cfg.Source = "sample"
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "./output"
	}
	if cfg.OutputNameFormat == "" {
		cfg.OutputNameFormat = "invoice_{timestamp}_{uuid}"
	}
	if len(cfg.Formats) == 0 {
		cfg.Formats = []string{"text"}
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	for i, f := range cfg.Formats {
		cfg.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
}

// Validate checks option values. It does not touch the filesystem; the
// output directory is created only when a file report is written.
func (c *Config) Validate() error {
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("log_level must be one of %s, got %q",
			strings.Join(validLogLevels, ", "), c.LogLevel)
	}
	for _, f := range c.Formats {
		if !contains(SupportedFormats, f) {
			return fmt.Errorf("unsupported format %q (supported: %s)",
				f, strings.Join(SupportedFormats, ", "))
		}
	}
	if strings.ContainsAny(c.OutputNameFormat, `/\`) {
		return fmt.Errorf("output_name_format must be a file name, got %q", c.OutputNameFormat)
	}
	return nil
}

// HasFormat reports whether format is among the configured formats.
func (c *Config) HasFormat(format string) bool {
	return contains(c.Formats, format)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
