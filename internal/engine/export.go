package engine

import (
	"errors"
	"fmt"
	"path/filepath"
	"time"
)

var ErrExport = errors.New("export failed")

type ExportFormat string

const (
	FormatText ExportFormat = "txt"
	FormatCSV  ExportFormat = "csv"
)

const filenamePrefix = "portfolio_summary"

// exportFilename embeds the valuation time so successive exports do not collide
// unless they happen within the same second.
func exportFilename(dir string, format ExportFormat, at time.Time) string {
	name := fmt.Sprintf("%s_%s.%s", filenamePrefix, at.Format("20060102_150405"), format)
	return filepath.Join(dir, name)
}

func wrapExportErr(path string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrExport, path, err)
}
