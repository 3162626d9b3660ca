package dataprocessing

import (
	"sort"
	"time"

	"energycli/pkg/contracts/domain"
)

// The aggregation functions are pure: each derives its table from the merged
// dataset alone and keeps no state between calls. They expect a non-empty
// dataset; ingestion short-circuits with ErrNoData before anything reaches
// them.
//
// Bucketing uses each record's own timestamp with no timezone conversion.
// Day buckets run midnight to midnight; week buckets start on Monday, the
// canonical convention for the whole pipeline.

// DailyTotals sums energy across all buildings per calendar day. The series
// is contiguous from the earliest to the latest observed day; days without
// records carry a zero total.
func DailyTotals(dataset domain.Dataset) []domain.DailyTotal {
	sums := make(map[time.Time]float64)
	for _, r := range dataset {
		sums[dayOf(r.Timestamp)] += r.EnergyKWH
	}
	if len(sums) == 0 {
		return nil
	}

	// The range must come from the wall-clock buckets themselves: with mixed
	// zone offsets the instant-sorted dataset endpoints can land on inverted
	// wall-clock days.
	start, end := bucketRange(sums)

	totals := make([]domain.DailyTotal, 0, int(end.Sub(start).Hours()/24)+1)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		totals = append(totals, domain.DailyTotal{Date: day, TotalKWH: sums[day]})
	}

	return totals
}

// WeeklyTotals sums energy across all buildings per calendar week, gap
// weeks zero-filled across the observed range.
func WeeklyTotals(dataset domain.Dataset) []domain.WeeklyTotal {
	sums := make(map[time.Time]float64)
	for _, r := range dataset {
		sums[weekStartOf(r.Timestamp)] += r.EnergyKWH
	}
	if len(sums) == 0 {
		return nil
	}

	start, end := bucketRange(sums)

	var totals []domain.WeeklyTotal
	for week := start; !week.After(end); week = week.AddDate(0, 0, 7) {
		totals = append(totals, domain.WeeklyTotal{WeekStart: week, TotalKWH: sums[week]})
	}

	return totals
}

// SummarizeBuildings computes mean, min, max and total energy per building.
// Only buildings with at least one record in the dataset appear; the result
// is sorted by building ID for consistent output.
func SummarizeBuildings(dataset domain.Dataset) []domain.BuildingSummary {
	grouped := make(map[string][]float64)
	for _, r := range dataset {
		grouped[r.BuildingID] = append(grouped[r.BuildingID], r.EnergyKWH)
	}

	summaries := make([]domain.BuildingSummary, 0, len(grouped))
	for id, values := range grouped {
		summary := domain.BuildingSummary{
			BuildingID: id,
			Min:        values[0],
			Max:        values[0],
			Records:    len(values),
		}
		for _, v := range values {
			summary.TotalKWH += v
			if v < summary.Min {
				summary.Min = v
			}
			if v > summary.Max {
				summary.Max = v
			}
		}
		summary.Mean = summary.TotalKWH / float64(len(values))
		summaries = append(summaries, summary)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].BuildingID < summaries[j].BuildingID
	})

	return summaries
}

// bucketRange returns the earliest and latest bucket keys present in sums.
// sums must not be empty.
func bucketRange(sums map[time.Time]float64) (time.Time, time.Time) {
	var start, end time.Time
	first := true
	for key := range sums {
		if first {
			start, end = key, key
			first = false
			continue
		}
		if key.Before(start) {
			start = key
		}
		if key.After(end) {
			end = key
		}
	}
	return start, end
}

// dayOf truncates a timestamp to its calendar day. The bucket is rebuilt in
// UTC so that records carrying different zone representations of the same
// wall-clock day land in the same map key.
func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekStartOf returns the Monday opening the calendar week of t.
func weekStartOf(t time.Time) time.Time {
	day := dayOf(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	return day.AddDate(0, 0, -offset)
}
