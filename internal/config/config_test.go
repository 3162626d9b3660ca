package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "console", cfg.Logging.Output)
	assert.Equal(t, 5, cfg.Pipeline.TrendSampleSize)
}

func TestLoad_FromYAMLFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: debug
  format: text
pipeline:
  data_dir: /srv/meters
  trend_sample_size: 3
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "/srv/meters", cfg.Pipeline.DataDir)
	assert.Equal(t, 3, cfg.Pipeline.TrendSampleSize)
	// Untouched fields keep their defaults.
	assert.Equal(t, "console", cfg.Logging.Output)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	content := `
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	t.Setenv("ENERGY_LOGGING_LEVEL", "warn")

	cfg, err := Load(configFile)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_RejectsInvalidLevel(t *testing.T) {
	t.Setenv("ENERGY_LOGGING_LEVEL", "verbose")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestPathsFor(t *testing.T) {
	base := t.TempDir()
	paths := PathsFor(base)

	assert.Equal(t, filepath.Join(base, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(base, "output"), paths.OutputDir)
	assert.Equal(t, filepath.Join(base, "output", "summary.txt"), paths.SummaryTXT)
	assert.Equal(t, filepath.Join(base, "logs", "x.log"), paths.GetLogPath("x.log"))
}

func TestPaths_WithOutputDir(t *testing.T) {
	paths := PathsFor(t.TempDir())
	rebased := paths.WithOutputDir("/tmp/elsewhere")

	assert.Equal(t, "/tmp/elsewhere", rebased.OutputDir)
	assert.Equal(t, filepath.Join("/tmp/elsewhere", "cleaned_energy_data.csv"), rebased.CleanedDataCSV)
	// Original is untouched.
	assert.NotEqual(t, rebased.OutputDir, paths.OutputDir)
}

func TestPaths_EnsureDirectories(t *testing.T) {
	paths := PathsFor(t.TempDir())
	require.NoError(t, paths.EnsureDirectories())

	for _, dir := range []string{paths.DataDir, paths.OutputDir, paths.LogsDir} {
		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
