package exporter

import (
	"fmt"
	"path/filepath"
	"sort"

	"energycli/internal/config"
	apperrors "energycli/internal/errors"
	"energycli/pkg/contracts/domain"
)

// ReportExporter writes the cleaned dataset and the derived aggregate tables
// to the output directory.
type ReportExporter struct {
	paths     *config.Paths
	csvWriter *CSVWriter
}

// NewReportExporter creates a new report exporter
func NewReportExporter(paths *config.Paths) *ReportExporter {
	return &ReportExporter{
		paths:     paths,
		csvWriter: NewCSVWriter(),
	}
}

// ExportCleanedData writes the full merged dataset, one row per meter
// record, in its time-sorted order.
func (e *ReportExporter) ExportCleanedData(dataset domain.Dataset) error {
	records := make([][]string, 0, len(dataset))
	for _, r := range dataset {
		records = append(records, []string{
			r.BuildingID,
			formatTimestamp(r.Timestamp),
			formatFloat(r.EnergyKWH),
		})
	}

	headers := []string{"Building", "Timestamp", "KWH"}
	if err := e.csvWriter.WriteSimpleCSV(e.paths.CleanedDataCSV, headers, records); err != nil {
		return apperrors.NewStorageError("failed to export cleaned dataset", err)
	}

	return nil
}

// ExportBuildingSummary writes the per-building statistics table.
func (e *ReportExporter) ExportBuildingSummary(summaries []domain.BuildingSummary) error {
	records := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		records = append(records, []string{
			s.BuildingID,
			formatFloat(s.Mean),
			formatFloat(s.Min),
			formatFloat(s.Max),
			formatFloat(s.TotalKWH),
			formatInt(s.Records),
		})
	}

	headers := []string{"Building", "Mean", "Min", "Max", "Total", "Records"}
	if err := e.csvWriter.WriteSimpleCSV(e.paths.BuildingSummaryCSV, headers, records); err != nil {
		return apperrors.NewStorageError("failed to export building summary", err)
	}

	return nil
}

// ExportDailyTotals writes the daily totals table, one row per calendar day.
func (e *ReportExporter) ExportDailyTotals(totals []domain.DailyTotal) error {
	records := make([][]string, 0, len(totals))
	for _, t := range totals {
		records = append(records, []string{formatDate(t.Date), formatFloat(t.TotalKWH)})
	}

	headers := []string{"Date", "TotalKWH"}
	if err := e.csvWriter.WriteSimpleCSV(e.paths.DailyTotalsCSV, headers, records); err != nil {
		return apperrors.NewStorageError("failed to export daily totals", err)
	}

	return nil
}

// ExportWeeklyTotals writes the weekly totals table, one row per calendar
// week keyed by the Monday that opens it.
func (e *ReportExporter) ExportWeeklyTotals(totals []domain.WeeklyTotal) error {
	records := make([][]string, 0, len(totals))
	for _, t := range totals {
		records = append(records, []string{formatDate(t.WeekStart), formatFloat(t.TotalKWH)})
	}

	headers := []string{"WeekStart", "TotalKWH"}
	if err := e.csvWriter.WriteSimpleCSV(e.paths.WeeklyTotalsCSV, headers, records); err != nil {
		return apperrors.NewStorageError("failed to export weekly totals", err)
	}

	return nil
}

// ExportBuildingHistories generates one CSV per building with that
// building's complete meter history in time order.
func (e *ReportExporter) ExportBuildingHistories(dataset domain.Dataset) error {
	recordsByBuilding := make(map[string]domain.Dataset)
	for _, r := range dataset {
		recordsByBuilding[r.BuildingID] = append(recordsByBuilding[r.BuildingID], r)
	}

	headers := []string{"Timestamp", "KWH"}
	for _, building := range sortedBuildingIDs(recordsByBuilding) {
		records := recordsByBuilding[building]
		filename := fmt.Sprintf("%s_meter_history.csv", building)
		fullPath := filepath.Join(e.paths.OutputDir, filename)

		stream, err := e.csvWriter.CreateStreamWriter(fullPath, headers)
		if err != nil {
			return apperrors.NewStorageError("failed to create building history writer", err).
				WithContext("building", building)
		}

		for _, r := range records {
			if err := stream.WriteRecord([]string{formatTimestamp(r.Timestamp), formatFloat(r.EnergyKWH)}); err != nil {
				stream.Close()
				return apperrors.NewStorageError("failed to write building history record", err).
					WithContext("building", building)
			}
		}

		if err := stream.Close(); err != nil {
			return apperrors.NewStorageError("failed to close building history writer", err).
				WithContext("building", building)
		}
	}

	return nil
}

// sortedBuildingIDs returns the building keys of a grouped map in stable order.
func sortedBuildingIDs(grouped map[string]domain.Dataset) []string {
	ids := make([]string, 0, len(grouped))
	for id := range grouped {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
