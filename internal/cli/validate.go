package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Gavin1937/dirComp/internal/platform"
	"github.com/Gavin1937/dirComp/pkg/config"
	"github.com/Gavin1937/dirComp/pkg/logging"
)

// validateCompareArgs checks the two root path arguments
func validateCompareArgs(leftRoot, rightRoot string) error {
	if err := platform.ValidatePath(leftRoot); err != nil {
		return fmt.Errorf("left root: %w", err)
	}
	if err := platform.ValidatePath(rightRoot); err != nil {
		return fmt.Errorf("right root: %w", err)
	}
	return nil
}

// loadConfig loads configuration from file or returns defaults
func loadConfig() (*config.Config, error) {
	if globalFlags.ConfigFile != "" {
		return config.LoadFromFile(globalFlags.ConfigFile)
	}
	return config.LoadDefault()
}

// applyFlagsToConfig overrides config values with command-line flags.
// Attribute flags replace the configured selection as a group whenever
// any of them is given, matching the original tool's explicit -p/-s/-H
// selection.
func applyFlagsToConfig(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("path") || flags.Changed("size") || flags.Changed("hash") {
		cfg.Compare.Path = compareFlags.Path
		cfg.Compare.Size = compareFlags.Size
		cfg.Compare.Hash = compareFlags.Hash
	}

	if compareFlags.Parallel > 0 {
		cfg.Performance.MaxWorkers = compareFlags.Parallel
	}

	if compareFlags.Bandwidth != "" {
		limit, err := parseBandwidth(compareFlags.Bandwidth)
		if err != nil {
			return err
		}
		cfg.Performance.BandwidthLimit = limit
	}

	if compareFlags.Format != "" {
		cfg.Output.Format = compareFlags.Format
	}

	if compareFlags.LogFile != "" {
		cfg.Logging.File = compareFlags.LogFile
	}
	if compareFlags.LogFormat != "" {
		cfg.Logging.Format = compareFlags.LogFormat
	}
	if compareFlags.LogLevel != "" {
		cfg.Logging.Level = compareFlags.LogLevel
	}

	if globalFlags.Quiet {
		cfg.Output.Progress = false
		cfg.Output.Quiet = true
	}

	// Verbose overrides silence and raises log detail
	if globalFlags.Verbose {
		cfg.Output.Quiet = false
		compareFlags.Silent = false
		compareFlags.SilentAll = false
		cfg.Logging.Level = "debug"
	}

	return nil
}

// parseBandwidth converts a human bandwidth string ("500K", "10M",
// "1G" or a plain byte count) to bytes per second.
func parseBandwidth(s string) (int64, error) {
	s = strings.TrimSpace(strings.ToUpper(s))
	if s == "" {
		return 0, fmt.Errorf("empty bandwidth value")
	}

	multiplier := int64(1)
	switch s[len(s)-1] {
	case 'K':
		multiplier = 1024
		s = s[:len(s)-1]
	case 'M':
		multiplier = 1024 * 1024
		s = s[:len(s)-1]
	case 'G':
		multiplier = 1024 * 1024 * 1024
		s = s[:len(s)-1]
	}

	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid bandwidth value: %w", err)
	}
	if value < 0 {
		return 0, fmt.Errorf("bandwidth must not be negative")
	}

	return value * multiplier, nil
}

// createLogger creates a logger based on configuration
func createLogger(cfg *config.Config) (logging.Logger, error) {
	if cfg.Logging.File == "" {
		return logging.NewNullLogger(), nil
	}

	format := logging.FormatText
	if cfg.Logging.Format == "json" {
		format = logging.FormatJSON
	}

	return logging.NewFileLogger(logging.FileLoggerConfig{
		Path:   cfg.Logging.File,
		Format: format,
		Level:  logging.ParseLevel(cfg.Logging.Level),
	})
}
