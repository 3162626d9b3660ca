// Package dataprocessing implements the ingestion-validation-aggregation
// pipeline for per-building energy meter files.
//
// # Architecture
//
// The package is organized into three main components:
//
// 1. Parser: validates one meter source (CSV or Excel) and extracts clean,
// timestamp-typed rows tagged with the source's building ID
//
// 2. Merger: discovers all sources in the data folder, applies the parser to
// each, and merges the survivors into a single time-sorted dataset
//
// 3. Aggregator: derives the daily totals, weekly totals, and per-building
// summary tables from the merged dataset
//
// # Data Flow
//
//	Meter files → Parser → MeterRecords → Merger → Dataset → Aggregator → Tables
//
// # Error Handling
//
// Per-source failures (missing file, unreadable content, missing required
// column) are typed, logged and skipped; the run continues with the
// remaining sources. Rows with uncoercible timestamps or energy values are
// dropped silently at the row level. The only condition that propagates to
// the caller is errors.ErrNoData, raised when nothing usable was ingested.
package dataprocessing
