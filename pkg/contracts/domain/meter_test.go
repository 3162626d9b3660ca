package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ts(d int, h int) time.Time {
	return time.Date(2024, 3, d, h, 0, 0, 0, time.UTC)
}

func TestDataset_Buildings(t *testing.T) {
	ds := Dataset{
		{BuildingID: "gym", Timestamp: ts(1, 0)},
		{BuildingID: "annex", Timestamp: ts(1, 1)},
		{BuildingID: "gym", Timestamp: ts(1, 2)},
	}
	assert.Equal(t, []string{"annex", "gym"}, ds.Buildings())
}

func TestDataset_Span(t *testing.T) {
	ds := Dataset{
		{Timestamp: ts(1, 0)},
		{Timestamp: ts(2, 0)},
		{Timestamp: ts(5, 0)},
	}
	first, last := ds.Span()
	assert.Equal(t, ts(1, 0), first)
	assert.Equal(t, ts(5, 0), last)
}

func TestDataset_TotalKWH(t *testing.T) {
	ds := Dataset{
		{EnergyKWH: 1.5},
		{EnergyKWH: -0.5},
		{EnergyKWH: 2},
	}
	assert.Equal(t, 3.0, ds.TotalKWH())
}

func TestDataset_PeakRecord(t *testing.T) {
	ds := Dataset{
		{BuildingID: "a", Timestamp: ts(1, 0), EnergyKWH: 5},
		{BuildingID: "b", Timestamp: ts(1, 1), EnergyKWH: 9},
		{BuildingID: "c", Timestamp: ts(1, 2), EnergyKWH: 9},
	}
	peak := ds.PeakRecord()
	// Ties keep the earliest ingested record.
	assert.Equal(t, "b", peak.BuildingID)
	assert.Equal(t, 9.0, peak.EnergyKWH)
}
