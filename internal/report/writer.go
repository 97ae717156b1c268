package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/kowusu01/LinqGrouping/internal/logger"
	"github.com/kowusu01/LinqGrouping/internal/types"
	"github.com/kowusu01/LinqGrouping/pkg/utils"
)

// =============================================================================
// REPORT FILE WRITER
// =============================================================================

// ErrUnsupportedFormat is returned for a format with no writer.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// extensions maps each report format to its file extension.
var extensions = map[string]string{
	"text": ".txt",
	"xlsx": ".xlsx",
	"yaml": ".yaml",
}

// Writer writes reports into an output directory. All files written by one
// Writer share its RunID, which fills the {uuid} placeholder.
type Writer struct {
	files  *utils.FileManager
	source string
	logger logger.Logger

	// RunID identifies the run in file names.
	RunID string

	// Summary appends the summary block to text reports.
	Summary bool
}

// NewWriter creates a Writer for the given output directory and file name
// format. source fills the {source} placeholder with its base name.
func NewWriter(outputDir, nameFormat, source string, log logger.Logger) *Writer {
	if log == nil {
		log = logger.Nop()
	}
	return &Writer{
		files:  utils.NewFileManager(outputDir, nameFormat),
		source: source,
		logger: log,
		RunID:  uuid.New().String(),
	}
}

// Write renders groups in format to a new file.
//
// RETURNS:
//   - The path of the written file.
//   - ErrUnsupportedFormat (wrapped) for an unknown format, or the I/O error.
func (w *Writer) Write(format string, groups []types.Group) (string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	ext, ok := extensions[format]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if err := w.files.EnsureDirectories(); err != nil {
		return "", err
	}
	path := w.files.OutputPath(ext, map[string]string{
		"uuid":   w.RunID,
		"source": sourceName(w.source),
	})
	w.logger.Debug("Writing %s report to %s", format, path)

	var err error
	switch format {
	case "xlsx":
		err = WriteXLSX(path, groups)
	case "yaml", "text":
		err = w.writeStream(format, path, groups)
	}
	if err != nil {
		return "", fmt.Errorf("failed to write %s report: %w", format, err)
	}
	return path, nil
}

// writeStream writes the formats that render to an io.Writer.
func (w *Writer) writeStream(format, path string, groups []types.Group) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if format == "yaml" {
		return WriteYAML(f, groups)
	}
	if err := WriteText(f, groups); err != nil {
		return err
	}
	if w.Summary {
		if _, err := fmt.Fprintln(f); err != nil {
			return err
		}
		return WriteSummaryText(f, Summarize(groups))
	}
	return nil
}

// sourceName turns a dataset source into a file name fragment.
func sourceName(source string) string {
	if source == "" {
		return "sample"
	}
	base := filepath.Base(strings.TrimRight(source, `/\`))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
