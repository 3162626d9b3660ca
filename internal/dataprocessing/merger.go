package dataprocessing

import (
	"context"
	"log/slog"
	"os"
	"sort"

	apperrors "energycli/internal/errors"
	"energycli/internal/files"
	"energycli/pkg/contracts/domain"
)

// Merger discovers meter sources in a data directory, runs each through the
// source validator, and combines the survivors into one time-ordered dataset.
type Merger struct {
	logger *slog.Logger
}

// NewMerger creates a new ingestion merger
func NewMerger(logger *slog.Logger) *Merger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Merger{logger: logger}
}

// LoadAll reads every meter source directly inside dataDir and merges them
// into a single dataset sorted by timestamp ascending (stable, so records
// with equal timestamps keep ingestion order).
//
// A rejected or unreadable source never aborts the run; it is logged and
// skipped. Duplicate (building, timestamp) pairs are a deliberate
// pass-through: nothing is deduplicated, every surviving row counts toward
// the aggregates.
//
// The terminal condition is apperrors.ErrNoData: the directory is absent,
// holds no recognized sources, or every source was rejected.
func (m *Merger) LoadAll(ctx context.Context, dataDir string) (domain.Dataset, error) {
	if _, err := os.Stat(dataDir); err != nil {
		m.logger.ErrorContext(ctx, "data folder not found", slog.String("dir", dataDir))
		return nil, apperrors.NewNoDataError("data folder not found").WithContext("dir", dataDir)
	}

	discovery := files.NewDiscovery(dataDir)
	sources, err := discovery.FindMeterFiles(dataDir)
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to scan data folder",
			slog.String("dir", dataDir),
			slog.String("error", err.Error()))
		return nil, apperrors.NewNoDataError("data folder could not be scanned").WithContext("dir", dataDir)
	}
	if len(sources) == 0 {
		m.logger.ErrorContext(ctx, "no meter files found in data folder", slog.String("dir", dataDir))
		return nil, apperrors.NewNoDataError("no meter files found").WithContext("dir", dataDir)
	}

	m.logger.InfoContext(ctx, "starting data ingestion",
		slog.String("dir", dataDir),
		slog.Int("source_count", len(sources)))

	var dataset domain.Dataset
	var loadedSources int

	for _, source := range sources {
		records, err := ParseSource(source.Path, source.BuildingID())
		if err != nil {
			m.logger.WarnContext(ctx, "skipping source",
				slog.String("source", source.Name),
				slog.String("error", err.Error()))
			continue
		}

		dataset = append(dataset, records...)
		loadedSources++

		m.logger.InfoContext(ctx, "loaded source",
			slog.String("source", source.Name),
			slog.String("building", source.BuildingID()),
			slog.Int("records", len(records)))
	}

	if len(dataset) == 0 {
		m.logger.ErrorContext(ctx, "no valid sources were loaded", slog.String("dir", dataDir))
		return nil, apperrors.NewNoDataError("no valid sources were loaded").WithContext("dir", dataDir)
	}

	sort.SliceStable(dataset, func(i, j int) bool {
		return dataset[i].Timestamp.Before(dataset[j].Timestamp)
	})

	m.logger.InfoContext(ctx, "data ingestion completed",
		slog.Int("sources_loaded", loadedSources),
		slog.Int("sources_skipped", len(sources)-loadedSources),
		slog.Int("total_records", len(dataset)))

	return dataset, nil
}
