// Package exporter writes the pipeline's outputs to the output directory.
//
// This package contains three main components:
//
// CSVWriter: core CSV writing functionality with support for headers,
// streaming, and UTF-8 BOM for Excel compatibility.
//
// ReportExporter: writes the cleaned dataset, the daily and weekly totals
// tables, the per-building summary table, and one meter-history CSV per
// building.
//
// ExecutiveSummary: the headline numbers (total campus consumption, highest
// consuming building, peak load time, trend samples) rendered to summary.txt.
package exporter
