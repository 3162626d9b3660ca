package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/processor.log"`
}

// PipelineConfig contains ingestion and export configuration
type PipelineConfig struct {
	// DataDir is the root holding one tabular file per building.
	DataDir string `yaml:"data_dir" envconfig:"DATA_DIR"`
	// OutputDir receives the exported tables and executive summary.
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`
	// TrendSampleSize is how many leading daily/weekly buckets the
	// executive summary quotes.
	TrendSampleSize int `yaml:"trend_sample_size" envconfig:"TREND_SAMPLE_SIZE" default:"5" validate:"min=1"`
}

// Load loads configuration from environment variables and config file.
// File values fill in whatever the environment left unset; the environment
// always wins.
func Load(configFile string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process("ENERGY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			fileConfig, err := loadFromFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("failed to load config from file: %w", err)
			}
			cfg = mergeConfigs(*fileConfig, cfg)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs merges file config with env config (env takes precedence)
func mergeConfigs(fileConfig, envConfig Config) Config {
	if isEnvDefault("ENERGY_LOGGING_LEVEL") && fileConfig.Logging.Level != "" {
		envConfig.Logging.Level = fileConfig.Logging.Level
	}
	if isEnvDefault("ENERGY_LOGGING_FORMAT") && fileConfig.Logging.Format != "" {
		envConfig.Logging.Format = fileConfig.Logging.Format
	}
	if isEnvDefault("ENERGY_LOGGING_OUTPUT") && fileConfig.Logging.Output != "" {
		envConfig.Logging.Output = fileConfig.Logging.Output
	}
	if isEnvDefault("ENERGY_LOGGING_FILE_PATH") && fileConfig.Logging.FilePath != "" {
		envConfig.Logging.FilePath = fileConfig.Logging.FilePath
	}
	if isEnvDefault("ENERGY_PIPELINE_DATA_DIR") && fileConfig.Pipeline.DataDir != "" {
		envConfig.Pipeline.DataDir = fileConfig.Pipeline.DataDir
	}
	if isEnvDefault("ENERGY_PIPELINE_OUTPUT_DIR") && fileConfig.Pipeline.OutputDir != "" {
		envConfig.Pipeline.OutputDir = fileConfig.Pipeline.OutputDir
	}
	if isEnvDefault("ENERGY_PIPELINE_TREND_SAMPLE_SIZE") && fileConfig.Pipeline.TrendSampleSize != 0 {
		envConfig.Pipeline.TrendSampleSize = fileConfig.Pipeline.TrendSampleSize
	}
	return envConfig
}

func isEnvDefault(key string) bool {
	_, set := os.LookupEnv(key)
	return !set
}

// validate checks the configuration using struct tags
func (c *Config) validate() error {
	v := validator.New()
	return v.Struct(c)
}
