package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Paths contains all the application paths.
// This is the single source of truth for file paths: one data directory with
// per-building meter files in, one output directory with derived tables out.
type Paths struct {
	ExecutableDir string
	DataDir       string
	OutputDir     string
	LogsDir       string

	// Well-known output files
	CleanedDataCSV     string
	BuildingSummaryCSV string
	DailyTotalsCSV     string
	WeeklyTotalsCSV    string
	SummaryTXT         string
}

// GetPaths returns the application paths relative to the executable location.
// Paths are always resolved against the executable directory, never the
// current working directory, so the binary behaves the same wherever it is
// launched from.
//
// Directory structure:
//
//	energycli
//	├── data/      (input meter CSV/XLSX files, one per building)
//	├── output/    (exported tables and executive summary)
//	└── logs/      (processor logs)
func GetPaths() (*Paths, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %v", err)
	}

	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve executable symlinks: %v", err)
	}

	exeDir := filepath.Dir(exe)
	return PathsFor(exeDir), nil
}

// PathsFor builds the path set rooted at the given base directory.
func PathsFor(baseDir string) *Paths {
	outputDir := filepath.Join(baseDir, "output")

	return &Paths{
		ExecutableDir: baseDir,
		DataDir:       filepath.Join(baseDir, "data"),
		OutputDir:     outputDir,
		LogsDir:       filepath.Join(baseDir, "logs"),

		CleanedDataCSV:     filepath.Join(outputDir, "cleaned_energy_data.csv"),
		BuildingSummaryCSV: filepath.Join(outputDir, "building_summary.csv"),
		DailyTotalsCSV:     filepath.Join(outputDir, "daily_totals.csv"),
		WeeklyTotalsCSV:    filepath.Join(outputDir, "weekly_totals.csv"),
		SummaryTXT:         filepath.Join(outputDir, "summary.txt"),
	}
}

// WithOutputDir returns a copy of the path set with the output directory and
// every well-known output file rebased onto dir.
func (p *Paths) WithOutputDir(dir string) *Paths {
	rebased := *p
	rebased.OutputDir = dir
	rebased.CleanedDataCSV = filepath.Join(dir, "cleaned_energy_data.csv")
	rebased.BuildingSummaryCSV = filepath.Join(dir, "building_summary.csv")
	rebased.DailyTotalsCSV = filepath.Join(dir, "daily_totals.csv")
	rebased.WeeklyTotalsCSV = filepath.Join(dir, "weekly_totals.csv")
	rebased.SummaryTXT = filepath.Join(dir, "summary.txt")
	return &rebased
}

// EnsureDirectories creates all required directories if they don't exist
func (p *Paths) EnsureDirectories() error {
	directories := []string{
		p.DataDir,
		p.OutputDir,
		p.LogsDir,
	}

	for _, dir := range directories {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// GetLogPath returns the full path for a log file
func (p *Paths) GetLogPath(filename string) string {
	return filepath.Join(p.LogsDir, filename)
}

// GetOutputPath returns the full path for a file in the output directory
func (p *Paths) GetOutputPath(filename string) string {
	return filepath.Join(p.OutputDir, filename)
}
