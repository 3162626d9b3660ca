package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	apperrors "energycli/internal/errors"
	"energycli/pkg/contracts/domain"
)

// ExecutiveSummary captures the headline numbers quoted in summary.txt.
type ExecutiveSummary struct {
	TotalKWH        float64
	HighestBuilding string
	PeakTimestamp   string
	PeakKWH         float64
	DailySample     []domain.DailyTotal
	WeeklySample    []domain.WeeklyTotal
}

// BuildExecutiveSummary derives the headline numbers from the dataset and
// the aggregate tables. sampleSize bounds how many leading daily and weekly
// buckets the summary quotes.
func BuildExecutiveSummary(dataset domain.Dataset, daily []domain.DailyTotal, weekly []domain.WeeklyTotal, summaries []domain.BuildingSummary, sampleSize int) ExecutiveSummary {
	peak := dataset.PeakRecord()

	summary := ExecutiveSummary{
		TotalKWH:      dataset.TotalKWH(),
		PeakTimestamp: formatTimestamp(peak.Timestamp),
		PeakKWH:       peak.EnergyKWH,
	}

	var highest float64
	for _, s := range summaries {
		if summary.HighestBuilding == "" || s.TotalKWH > highest {
			summary.HighestBuilding = s.BuildingID
			highest = s.TotalKWH
		}
	}

	summary.DailySample = daily
	if len(summary.DailySample) > sampleSize {
		summary.DailySample = summary.DailySample[:sampleSize]
	}
	summary.WeeklySample = weekly
	if len(summary.WeeklySample) > sampleSize {
		summary.WeeklySample = summary.WeeklySample[:sampleSize]
	}

	return summary
}

// WriteExecutiveSummary renders the summary to the well-known summary.txt
// path.
func (e *ReportExporter) WriteExecutiveSummary(summary ExecutiveSummary) error {
	if err := os.MkdirAll(filepath.Dir(e.paths.SummaryTXT), 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory for summary", err)
	}

	var b strings.Builder
	b.WriteString("Campus Energy Dashboard Summary\n")
	b.WriteString("---------------------------------\n")
	fmt.Fprintf(&b, "Total Campus Consumption: %s kWh\n", formatFloat(summary.TotalKWH))
	fmt.Fprintf(&b, "Highest Consuming Building: %s\n", summary.HighestBuilding)
	fmt.Fprintf(&b, "Peak Load Time: %s (%s kWh)\n", summary.PeakTimestamp, formatFloat(summary.PeakKWH))

	b.WriteString("Daily Trend Sample:\n")
	for _, d := range summary.DailySample {
		fmt.Fprintf(&b, "  %s  %s\n", formatDate(d.Date), formatFloat(d.TotalKWH))
	}

	b.WriteString("Weekly Trend Sample:\n")
	for _, w := range summary.WeeklySample {
		fmt.Fprintf(&b, "  %s  %s\n", formatDate(w.WeekStart), formatFloat(w.TotalKWH))
	}

	if err := os.WriteFile(e.paths.SummaryTXT, []byte(b.String()), 0644); err != nil {
		return apperrors.NewStorageError("failed to write executive summary", err)
	}

	return nil
}
