package config

import (
	"github.com/Gavin1937/dirComp/pkg/models"
)

// Config represents the application configuration
type Config struct {
	Compare     CompareConfig     `yaml:"compare"`
	Performance PerformanceConfig `yaml:"performance"`
	Output      OutputConfig      `yaml:"output"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// CompareConfig holds default attribute selections
type CompareConfig struct {
	Path bool `yaml:"path"`
	Size bool `yaml:"size"`
	Hash bool `yaml:"hash"`
}

// PerformanceConfig holds performance-related settings
type PerformanceConfig struct {
	MaxWorkers     int   `yaml:"max_workers"`
	BufferSize     int   `yaml:"buffer_size"`
	BandwidthLimit int64 `yaml:"bandwidth_limit"`
}

// OutputConfig holds output-related settings
type OutputConfig struct {
	Format   string `yaml:"format"`   // "human" or "json"
	Progress bool   `yaml:"progress"` // Show progress bars on a terminal
	Quiet    bool   `yaml:"quiet"`    // Suppress non-error output
}

// LoggingConfig holds logging-related settings
type LoggingConfig struct {
	Format string `yaml:"format"` // "json" or "text"
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	File   string `yaml:"file"`   // Log file path (empty = logging disabled)
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Compare: CompareConfig{
			Path: true,
			Size: false,
			Hash: false,
		},
		Performance: PerformanceConfig{
			MaxWorkers:     1,
			BufferSize:     65536,
			BandwidthLimit: 0,
		},
		Output: OutputConfig{
			Format:   "human",
			Progress: true,
			Quiet:    false,
		},
		Logging: LoggingConfig{
			Format: "text",
			Level:  "info",
			File:   "",
		},
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Performance.MaxWorkers < 1 {
		return &models.InvalidArgumentError{
			Field:   "performance.max_workers",
			Message: "must be at least 1",
		}
	}

	if c.Performance.BufferSize < 1024 {
		return &models.InvalidArgumentError{
			Field:   "performance.buffer_size",
			Message: "must be at least 1024 bytes",
		}
	}

	if c.Performance.BandwidthLimit < 0 {
		return &models.InvalidArgumentError{
			Field:   "performance.bandwidth_limit",
			Message: "must not be negative",
		}
	}

	validFormats := map[string]bool{"human": true, "json": true}
	if !validFormats[c.Output.Format] {
		return &models.InvalidArgumentError{
			Field:   "output.format",
			Message: "must be 'human' or 'json'",
		}
	}

	validLogFormats := map[string]bool{"json": true, "text": true}
	if !validLogFormats[c.Logging.Format] {
		return &models.InvalidArgumentError{
			Field:   "logging.format",
			Message: "must be 'json' or 'text'",
		}
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[c.Logging.Level] {
		return &models.InvalidArgumentError{
			Field:   "logging.level",
			Message: "must be 'debug', 'info', 'warn', or 'error'",
		}
	}

	return nil
}

// Options returns the configured attribute selections
func (c *Config) Options() models.CompareOptions {
	return models.CompareOptions{
		Path: c.Compare.Path,
		Size: c.Compare.Size,
		Hash: c.Compare.Hash,
	}
}
