package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"energycli/internal/config"
	"energycli/pkg/contracts/domain"
)

func testPaths(t *testing.T) *config.Paths {
	t.Helper()
	return config.PathsFor(t.TempDir())
}

func testDataset() domain.Dataset {
	return domain.Dataset{
		{BuildingID: "gym", Timestamp: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), EnergyKWH: 5},
		{BuildingID: "library", Timestamp: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC), EnergyKWH: 12.5},
		{BuildingID: "gym", Timestamp: time.Date(2024, 3, 2, 8, 0, 0, 0, time.UTC), EnergyKWH: 7},
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Strip the UTF-8 BOM some writers add for Excel.
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}

	reader := csv.NewReader(bytes.NewReader(data))
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportCleanedData_RoundTrip(t *testing.T) {
	paths := testPaths(t)
	exp := NewReportExporter(paths)
	dataset := testDataset()

	require.NoError(t, exp.ExportCleanedData(dataset))

	rows := readCSV(t, paths.CleanedDataCSV)
	require.Len(t, rows, len(dataset)+1) // header + one row per record
	assert.Equal(t, []string{"Building", "Timestamp", "KWH"}, rows[0])
	assert.Equal(t, []string{"gym", "2024-03-01 08:00:00", "5.00"}, rows[1])
	assert.Equal(t, []string{"library", "2024-03-01 09:00:00", "12.50"}, rows[2])

	// Carries the BOM like every other exported table.
	raw, err := os.ReadFile(paths.CleanedDataCSV)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(raw), 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, raw[:3])
}

func TestExportBuildingSummary(t *testing.T) {
	paths := testPaths(t)
	exp := NewReportExporter(paths)

	summaries := []domain.BuildingSummary{
		{BuildingID: "gym", Mean: 6, Min: 5, Max: 7, TotalKWH: 12, Records: 2},
		{BuildingID: "library", Mean: 12.5, Min: 12.5, Max: 12.5, TotalKWH: 12.5, Records: 1},
	}
	require.NoError(t, exp.ExportBuildingSummary(summaries))

	rows := readCSV(t, paths.BuildingSummaryCSV)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Building", "Mean", "Min", "Max", "Total", "Records"}, rows[0])
	assert.Equal(t, []string{"gym", "6.00", "5.00", "7.00", "12.00", "2"}, rows[1])
}

func TestExportTotalsTables(t *testing.T) {
	paths := testPaths(t)
	exp := NewReportExporter(paths)

	daily := []domain.DailyTotal{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), TotalKWH: 17.5},
		{Date: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), TotalKWH: 0},
	}
	weekly := []domain.WeeklyTotal{
		{WeekStart: time.Date(2024, 2, 26, 0, 0, 0, 0, time.UTC), TotalKWH: 17.5},
	}

	require.NoError(t, exp.ExportDailyTotals(daily))
	require.NoError(t, exp.ExportWeeklyTotals(weekly))

	dailyRows := readCSV(t, paths.DailyTotalsCSV)
	require.Len(t, dailyRows, 3)
	assert.Equal(t, []string{"2024-03-01", "17.50"}, dailyRows[1])
	assert.Equal(t, []string{"2024-03-02", "0.00"}, dailyRows[2])

	weeklyRows := readCSV(t, paths.WeeklyTotalsCSV)
	require.Len(t, weeklyRows, 2)
	assert.Equal(t, []string{"2024-02-26", "17.50"}, weeklyRows[1])
}

func TestExportBuildingHistories(t *testing.T) {
	paths := testPaths(t)
	exp := NewReportExporter(paths)

	require.NoError(t, exp.ExportBuildingHistories(testDataset()))

	gymRows := readCSV(t, filepath.Join(paths.OutputDir, "gym_meter_history.csv"))
	require.Len(t, gymRows, 3)
	assert.Equal(t, []string{"Timestamp", "KWH"}, gymRows[0])

	libraryRows := readCSV(t, filepath.Join(paths.OutputDir, "library_meter_history.csv"))
	require.Len(t, libraryRows, 2)
}

func TestSimpleCSVCarriesBOM(t *testing.T) {
	paths := testPaths(t)
	writer := NewCSVWriter()

	path := paths.GetOutputPath("bom_check.csv")
	require.NoError(t, writer.WriteSimpleCSV(path, []string{"A"}, [][]string{{"1"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 3)
	assert.Equal(t, []byte{0xEF, 0xBB, 0xBF}, data[:3])
}
