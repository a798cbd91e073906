package config

import (
	"os"
	"strconv"

	"sciplot/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Paths  PathConfig
	Render RenderConfig
	Batch  BatchConfig
	Server ServerConfig
}

// PathConfig holds the working-directory conventions for a run
type PathConfig struct {
	DataDir   string // input CSV/xlsx datasets
	OutputDir string // generated images and reports
}

// RenderConfig holds the fixed output resolution
type RenderConfig struct {
	DPI      int
	WidthIn  float64
	HeightIn float64
}

// BatchConfig holds batch execution settings
type BatchConfig struct {
	Parallel      bool
	ParallelLimit int64
}

// ServerConfig holds preview server settings
type ServerConfig struct {
	Port string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Paths: PathConfig{
			DataDir:   getEnvOrDefault("PLOT_DATA_DIR", "data"),
			OutputDir: getEnvOrDefault("PLOT_OUTPUT_DIR", "plot"),
		},
		Render: RenderConfig{
			DPI:      getEnvIntOrDefault("PLOT_DPI", 300),
			WidthIn:  getEnvFloatOrDefault("PLOT_WIDTH_IN", 8),
			HeightIn: getEnvFloatOrDefault("PLOT_HEIGHT_IN", 6),
		},
		Batch: BatchConfig{
			Parallel:      getEnvBoolOrDefault("PLOT_PARALLEL", false),
			ParallelLimit: int64(getEnvIntOrDefault("PLOT_PARALLEL_LIMIT", 3)),
		},
		Server: ServerConfig{
			Port: getEnvOrDefault("SERVER_PORT", "8080"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(c *Config) error {
	if c.Paths.DataDir == "" {
		return errors.ConfigInvalid("PLOT_DATA_DIR must not be empty")
	}
	if c.Paths.OutputDir == "" {
		return errors.ConfigInvalid("PLOT_OUTPUT_DIR must not be empty")
	}
	if c.Render.DPI <= 0 {
		return errors.ConfigInvalid("PLOT_DPI must be positive")
	}
	if c.Render.WidthIn <= 0 || c.Render.HeightIn <= 0 {
		return errors.ConfigInvalid("PLOT_WIDTH_IN and PLOT_HEIGHT_IN must be positive")
	}
	if c.Batch.ParallelLimit < 1 {
		return errors.ConfigInvalid("PLOT_PARALLEL_LIMIT must be at least 1")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
