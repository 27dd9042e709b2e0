// internal/writers/report.go
package writers

import (
	"fmt"
	"io"

	"ltrgraph/internal/jsonutil"
	"ltrgraph/internal/stats"
	"ltrgraph/pkg/api"
)

func init() {
	RegisterReport(FormatText, WriteReportText)
	RegisterReport(FormatJSON, func(w io.Writer, r stats.Report) error {
		return jsonutil.EncodePretty(w, ToAPISummary(r))
	})
	RegisterCalibration(FormatText, WriteCalibrationText)
	RegisterCalibration(FormatJSON, func(w io.Writer, c api.CalibrationV1) error {
		return jsonutil.EncodePretty(w, c)
	})
}

// WriteConStat prints one series block.
func WriteConStat(w io.Writer, title string, c stats.ConStat) error {
	_, err := fmt.Fprintf(w, "\n%s\nMin   : %s\nMax   : %s\nMedian: %s\nMean  : %s\nSTD   : %s\n",
		title, FormatWeight(c.Min), FormatWeight(c.Max), FormatWeight(c.Median),
		FormatWeight(c.Mean), FormatWeight(c.StdDev))
	return err
}

// WriteReportText prints the four series blocks and the one-way and
// missed fractions.
func WriteReportText(w io.Writer, r stats.Report) error {
	blocks := []struct {
		title string
		c     stats.ConStat
	}{
		{"Left to Right", r.LeftToRight},
		{"Right to Left", r.RightToLeft},
		{"Average of Weights", r.Average},
		{"Ratio of Weights", r.Ratio},
	}
	for _, b := range blocks {
		if err := WriteConStat(w, b.title, b.c); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "\nPercentage of One-way Connections: %s\n\nPercentage of Missed Connections: %s\n",
		FormatWeight(r.OneWay()), FormatWeight(r.Missed()))
	return err
}

// WriteCalibrationText prints the lines appended to a detector config.
func WriteCalibrationText(w io.Writer, c api.CalibrationV1) error {
	_, err := fmt.Fprintf(w, "red: %s\nconnection: %s\n", FormatWeight(c.Red), FormatWeight(c.Connection))
	return err
}

// ToAPISummary converts a report to the v1 wire type.
func ToAPISummary(r stats.Report) api.SummaryV1 {
	return api.SummaryV1{
		LeftToRight:    toAPIConStat(r.LeftToRight),
		RightToLeft:    toAPIConStat(r.RightToLeft),
		Average:        toAPIConStat(r.Average),
		Ratio:          toAPIConStat(r.Ratio),
		RTs:            r.RTs,
		Skipped:        r.Skipped,
		TwoWay:         r.TwoWay,
		LeftOnly:       r.LeftOnly,
		RightOnly:      r.RightOnly,
		Unconnected:    r.Unconnected,
		Ambiguous:      r.Ambiguous,
		OneWayFraction: r.OneWay(),
		MissedFraction: r.Missed(),
	}
}

func toAPIConStat(c stats.ConStat) api.ConStatV1 {
	return api.ConStatV1{N: c.N, Min: c.Min, Max: c.Max, Mean: c.Mean, Median: c.Median, StdDev: c.StdDev}
}
