package dataprocessing

import (
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	apperrors "energycli/internal/errors"
	"energycli/pkg/contracts/domain"
)

// Required columns every meter source must expose. Matching is
// case-insensitive with surrounding whitespace trimmed; extra columns are
// ignored.
const (
	timestampColumn = "timestamp"
	energyColumn    = "kwh"
)

// timestampLayouts are the accepted timestamp formats, tried in order.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006/01/02 15:04:05",
	"2006-01-02",
}

// ParseSource validates one meter source file and extracts its clean rows.
// Every returned record carries buildingID regardless of anything embedded
// in the file.
//
// The whole source is rejected (typed error, zero rows) when the file cannot
// be opened, cannot be read as tabular data, or is missing a required
// column. Individual rows whose timestamp or energy value fails coercion are
// dropped without failing the source.
func ParseSource(path, buildingID string) ([]domain.MeterRecord, error) {
	rows, err := readRawRows(path)
	if err != nil {
		return nil, err
	}

	header, dataRows := splitHeader(rows)
	if header == nil {
		return nil, apperrors.NewSourceUnreadableError(filepath.Base(path), nil)
	}

	tsCol, ok := findColumn(header, timestampColumn)
	if !ok {
		return nil, apperrors.NewMissingColumnError(filepath.Base(path), timestampColumn)
	}
	kwhCol, ok := findColumn(header, energyColumn)
	if !ok {
		return nil, apperrors.NewMissingColumnError(filepath.Base(path), energyColumn)
	}

	var records []domain.MeterRecord
	var droppedRows int

	for _, row := range dataRows {
		if tsCol >= len(row) || kwhCol >= len(row) {
			continue // structurally short row, skip silently
		}

		ts, ok := parseTimestamp(row[tsCol])
		if !ok {
			droppedRows++
			continue
		}

		kwh, ok := parseEnergy(row[kwhCol])
		if !ok {
			droppedRows++
			continue
		}

		records = append(records, domain.MeterRecord{
			BuildingID: buildingID,
			Timestamp:  ts,
			EnergyKWH:  kwh,
		})
	}

	slog.Debug("parsed meter source",
		slog.String("source", filepath.Base(path)),
		slog.String("building", buildingID),
		slog.Int("rows_kept", len(records)),
		slog.Int("rows_dropped", droppedRows))

	return records, nil
}

// readRawRows loads the raw tabular content of a source, dispatching on the
// file extension. The file handle is closed before returning on every path.
func readRawRows(path string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return readExcelRows(path)
	default:
		return readCSVRows(path)
	}
}

func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewSourceNotFoundError(filepath.Base(path), err)
		}
		return nil, apperrors.NewSourceUnreadableError(filepath.Base(path), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			if _, ok := err.(*csv.ParseError); ok {
				continue // malformed raw row, quietly recoverable
			}
			return nil, apperrors.NewSourceUnreadableError(filepath.Base(path), err)
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func readExcelRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewSourceNotFoundError(filepath.Base(path), err)
		}
		return nil, apperrors.NewSourceUnreadableError(filepath.Base(path), err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewSourceUnreadableError(filepath.Base(path), nil)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewSourceUnreadableError(filepath.Base(path), err)
	}

	return rows, nil
}

// splitHeader returns the first non-empty row as the header and everything
// after it as data rows.
func splitHeader(rows [][]string) ([]string, [][]string) {
	for i, row := range rows {
		if !isEmptyRow(row) {
			return row, rows[i+1:]
		}
	}
	return nil, nil
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// findColumn locates a named column in the header row.
func findColumn(header []string, name string) (int, bool) {
	for i, cell := range header {
		if strings.EqualFold(strings.TrimSpace(cell), name) {
			return i, true
		}
	}
	return 0, false
}

// parseTimestamp coerces a cell value to a calendar datetime.
func parseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, value); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// parseEnergy coerces a cell value to a float64. Negative and zero values
// pass through; the pipeline imposes no domain-range check on energy.
func parseEnergy(value string) (float64, bool) {
	value = strings.ReplaceAll(strings.TrimSpace(value), ",", "")
	if value == "" {
		return 0, false
	}
	kwh, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, false
	}
	return kwh, true
}
