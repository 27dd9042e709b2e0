// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"

	"ltrgraph/internal/stats"
	"ltrgraph/pkg/api"
)

// Output formats understood by both tools.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Writer registries (format → handler).
// Register in init() blocks from report/calibration writer files.
var (
	ReportWriters      = map[string]func(w io.Writer, r stats.Report) error{}
	CalibrationWriters = map[string]func(w io.Writer, c api.CalibrationV1) error{}
)

// Register helpers (idempotent last-wins)
func RegisterReport(format string, fn func(io.Writer, stats.Report) error) {
	ReportWriters[format] = fn
}
func RegisterCalibration(format string, fn func(io.Writer, api.CalibrationV1) error) {
	CalibrationWriters[format] = fn
}

// WriteReport dispatches to the writer registered for format.
func WriteReport(format string, w io.Writer, r stats.Report) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r)
}

// WriteCalibration dispatches to the writer registered for format.
func WriteCalibration(format string, w io.Writer, c api.CalibrationV1) error {
	fn, ok := CalibrationWriters[format]
	if !ok {
		return fmt.Errorf("unknown calibration format %q (no writer registered)", format)
	}
	return fn(w, c)
}
