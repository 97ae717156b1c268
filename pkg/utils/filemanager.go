// =============================================================================
// Invoice Grouping - File Manager Utility
// =============================================================================
//
// This module provides file management utilities for report output:
//   - Output directory management
//   - Output file naming with placeholders
//
// =============================================================================

package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager places report files in an output directory.
type FileManager struct {
	// OutputDir is the directory where output files are placed.
	OutputDir string

	// NameFormat is the output file name pattern; see GenerateOutputFileName.
	NameFormat string
}

// NewFileManager creates a new FileManager.
func NewFileManager(outputDir, nameFormat string) *FileManager {
	return &FileManager{
		OutputDir:  outputDir,
		NameFormat: nameFormat,
	}
}

// EnsureDirectories creates the output directory if it doesn't exist.
func (fm *FileManager) EnsureDirectories() error {
	if err := os.MkdirAll(fm.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", fm.OutputDir, err)
	}
	return nil
}

// OutputPath returns a new path in the output directory.
//
// PARAMETERS:
//   - ext: The file extension, with or without the leading dot.
//   - params: Extra placeholder values, keyed without braces.
//
// RETURNS:
//   - The full path of the output file. The file is not created.
func (fm *FileManager) OutputPath(ext string, params map[string]string) string {
	return filepath.Join(fm.OutputDir, GenerateOutputFileName(fm.NameFormat, ext, params))
}

// =============================================================================
// FILE NAMING
// =============================================================================

// GenerateOutputFileName generates an output file name from a format.
//
// PARAMETERS:
//   - format: The format string for the file name.
//             Placeholders:
//               {uuid}      - A random UUID
//               {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
//               {date}      - Current date (YYYYMMDD)
//               {time}      - Current time (HHMMSS)
//   - ext: The extension to ensure, such as ".xlsx".
//   - params: A map of additional placeholder values.
//
// EXAMPLE:
//   format: "invoice_{source}_{date}"
//   params: {"source": "sample"}
//   output: "invoice_sample_20240115.xlsx"
func GenerateOutputFileName(format, ext string, params map[string]string) string {
	return generateOutputFileName(format, ext, params, time.Now(), uuid.New().String())
}

func generateOutputFileName(format, ext string, params map[string]string, now time.Time, id string) string {
	replacements := map[string]string{
		"{uuid}":      id,
		"{timestamp}": now.Format("20060102_150405"),
		"{date}":      now.Format("20060102"),
		"{time}":      now.Format("150405"),
	}
	for key, value := range params {
		replacements["{"+key+"}"] = value
	}

	result := format
	for placeholder, value := range replacements {
		result = strings.ReplaceAll(result, placeholder, value)
	}

	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if ext != "" && !strings.HasSuffix(strings.ToLower(result), strings.ToLower(ext)) {
		result += ext
	}
	return result
}
