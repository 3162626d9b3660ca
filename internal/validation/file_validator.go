package validation

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"energycli/internal/files"
)

// FileValidator provides directory and source file checks shared by the
// pipeline executables.
type FileValidator struct {
	logger *slog.Logger
}

// NewFileValidator creates a new file validator
func NewFileValidator(logger *slog.Logger) *FileValidator {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileValidator{
		logger: logger,
	}
}

// ValidateDataDir checks that the data folder exists and is a directory, and
// reports how many meter sources it holds. An empty folder is not an error
// here; the merger decides what to do when nothing is ingestible.
func (v *FileValidator) ValidateDataDir(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		v.logger.Error("Data directory does not exist",
			slog.String("directory", dir))
		return fmt.Errorf("data directory %s does not exist", dir)
	}
	if err != nil {
		v.logger.Error("Failed to stat data directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to stat directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		v.logger.Error("Data path is not a directory",
			slog.String("path", dir))
		return fmt.Errorf("%s is not a directory", dir)
	}

	count, err := v.CountMeterFiles(dir)
	if err != nil {
		return err
	}
	if count == 0 {
		v.logger.Warn("No meter source files found",
			slog.String("directory", dir))
		return nil
	}

	v.logger.Info("Data directory validated",
		slog.String("directory", dir),
		slog.Int("meter_files", count))
	return nil
}

// ValidateOutputDir ensures the output directory exists or can be created,
// and that it is writable.
func (v *FileValidator) ValidateOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		v.logger.Error("Failed to create output directory",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	// Probe writability with a throwaway file.
	testFile := filepath.Join(dir, ".write_test")
	file, err := os.Create(testFile)
	if err != nil {
		v.logger.Error("Output directory is not writable",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return fmt.Errorf("output directory %s is not writable: %w", dir, err)
	}
	file.Close()
	os.Remove(testFile)

	return nil
}

// CountMeterFiles counts recognized meter sources directly inside dir.
func (v *FileValidator) CountMeterFiles(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		v.logger.Error("Failed to count meter files",
			slog.String("directory", dir),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to count meter files: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if files.IsMeterFile(entry.Name()) {
			count++
		}
	}

	v.logger.Debug("Meter files counted",
		slog.String("directory", dir),
		slog.Int("count", count))
	return count, nil
}
