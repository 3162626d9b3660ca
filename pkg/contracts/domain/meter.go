package domain

import (
	"sort"
	"time"
)

// MeterRecord is a single energy meter reading attributed to a building.
// BuildingID always comes from the source file name, never from file content.
type MeterRecord struct {
	BuildingID string    `json:"building_id" csv:"Building"`
	Timestamp  time.Time `json:"timestamp" csv:"Timestamp"`
	EnergyKWH  float64   `json:"energy_kwh" csv:"KWH"`
}

// Dataset is the merged, time-ordered collection of meter records from all
// validated sources. It is built once per run by the ingestion merger and
// treated as immutable afterwards. Ordering is ascending by Timestamp with
// ties keeping ingestion order (stable sort).
type Dataset []MeterRecord

// Buildings returns the distinct building IDs present in the dataset,
// sorted ascending.
func (d Dataset) Buildings() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range d {
		if !seen[r.BuildingID] {
			seen[r.BuildingID] = true
			ids = append(ids, r.BuildingID)
		}
	}
	sort.Strings(ids)
	return ids
}

// Span returns the earliest and latest timestamps in the dataset.
// The dataset must not be empty; ingestion guarantees that.
func (d Dataset) Span() (time.Time, time.Time) {
	return d[0].Timestamp, d[len(d)-1].Timestamp
}

// TotalKWH sums energy across every record in the dataset.
func (d Dataset) TotalKWH() float64 {
	var total float64
	for _, r := range d {
		total += r.EnergyKWH
	}
	return total
}

// PeakRecord returns the record with the highest energy value. When several
// records share the peak value the earliest ingested one wins.
func (d Dataset) PeakRecord() MeterRecord {
	peak := d[0]
	for _, r := range d[1:] {
		if r.EnergyKWH > peak.EnergyKWH {
			peak = r
		}
	}
	return peak
}

// DailyTotal is the campus-wide energy total for one calendar day.
// Date is midnight-aligned in the records' own clock; days without records
// appear with TotalKWH zero so the series is contiguous.
type DailyTotal struct {
	Date     time.Time `json:"date"`
	TotalKWH float64   `json:"total_kwh"`
}

// WeeklyTotal is the campus-wide energy total for one calendar week.
// WeekStart is the Monday that opens the week; gap weeks appear with zero.
type WeeklyTotal struct {
	WeekStart time.Time `json:"week_start"`
	TotalKWH  float64   `json:"total_kwh"`
}

// BuildingSummary holds per-building statistics over all of that building's
// records in the dataset.
type BuildingSummary struct {
	BuildingID string  `json:"building_id"`
	Mean       float64 `json:"mean"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	TotalKWH   float64 `json:"total_kwh"`
	Records    int     `json:"records"`
}
