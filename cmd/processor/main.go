package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"energycli/internal/config"
	"energycli/internal/dataprocessing"
	apperrors "energycli/internal/errors"
	"energycli/internal/exporter"
	"energycli/internal/infrastructure"
	"energycli/internal/validation"
)

func main() {
	inDir := flag.String("in", "", "input directory with per-building meter files (defaults to data/ relative to executable)")
	outDir := flag.String("out", "", "output directory for exported tables (defaults to output/ relative to executable)")
	configFile := flag.String("config", "", "optional YAML config file")
	flag.Parse()

	paths, err := config.GetPaths()
	if err != nil {
		slog.Error("Failed to initialize paths", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Flags beat config, config beats executable-relative defaults.
	if *inDir == "" {
		*inDir = cfg.Pipeline.DataDir
	}
	if *inDir == "" {
		*inDir = paths.DataDir
	}
	if *outDir == "" {
		*outDir = cfg.Pipeline.OutputDir
	}
	if *outDir != "" {
		paths = paths.WithOutputDir(*outDir)
	}

	if cfg.Logging.FilePath == "" {
		cfg.Logging.FilePath = paths.GetLogPath("processor.log")
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithTraceID(context.Background())

	logger.InfoContext(ctx, "starting campus energy processing",
		slog.String("input_dir", *inDir),
		slog.String("output_dir", paths.OutputDir))

	validator := validation.NewFileValidator(logger)
	// A missing or unusable data folder is the same terminal condition as an
	// empty one: end the run gracefully, not with a failure.
	if err := validator.ValidateDataDir(*inDir); err != nil {
		logger.WarnContext(ctx, "no data available, ending run", slog.String("reason", err.Error()))
		fmt.Println("No data available. Ending program.")
		return
	}
	if err := validator.ValidateOutputDir(paths.OutputDir); err != nil {
		logger.ErrorContext(ctx, "output directory is unusable", slog.String("error", err.Error()))
		os.Exit(1)
	}

	merger := dataprocessing.NewMerger(logger)
	dataset, err := merger.LoadAll(ctx, *inDir)
	if err != nil {
		if errors.Is(err, apperrors.ErrNoData) {
			logger.WarnContext(ctx, "no data available, ending run", slog.String("reason", err.Error()))
			fmt.Println("No data available. Ending program.")
			return
		}
		logger.ErrorContext(ctx, "ingestion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	daily := dataprocessing.DailyTotals(dataset)
	weekly := dataprocessing.WeeklyTotals(dataset)
	summaries := dataprocessing.SummarizeBuildings(dataset)

	logger.InfoContext(ctx, "aggregation complete",
		slog.Int("records", len(dataset)),
		slog.Int("daily_buckets", len(daily)),
		slog.Int("weekly_buckets", len(weekly)),
		slog.Int("buildings", len(summaries)))

	reportExporter := exporter.NewReportExporter(paths)

	exports := []struct {
		name string
		run  func() error
	}{
		{"cleaned dataset", func() error { return reportExporter.ExportCleanedData(dataset) }},
		{"building summary", func() error { return reportExporter.ExportBuildingSummary(summaries) }},
		{"daily totals", func() error { return reportExporter.ExportDailyTotals(daily) }},
		{"weekly totals", func() error { return reportExporter.ExportWeeklyTotals(weekly) }},
		{"building histories", func() error { return reportExporter.ExportBuildingHistories(dataset) }},
	}

	for _, e := range exports {
		if err := e.run(); err != nil {
			logger.ErrorContext(ctx, "export failed",
				slog.String("table", e.name),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.InfoContext(ctx, "export complete", slog.String("table", e.name))
	}

	execSummary := exporter.BuildExecutiveSummary(dataset, daily, weekly, summaries, cfg.Pipeline.TrendSampleSize)
	if err := reportExporter.WriteExecutiveSummary(execSummary); err != nil {
		logger.ErrorContext(ctx, "failed to write executive summary", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.InfoContext(ctx, "processing complete",
		slog.String("summary", paths.SummaryTXT),
		slog.Float64("total_kwh", execSummary.TotalKWH),
		slog.String("highest_building", execSummary.HighestBuilding))
	fmt.Println("Project completed successfully.")
}
