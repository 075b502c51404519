package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Gavin1937/dirComp/pkg/config"
)

// NewConfigCommand creates the config command
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View or modify dircomp configuration.`,
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			fmt.Printf("Compare Path:    %v\n", cfg.Compare.Path)
			fmt.Printf("Compare Size:    %v\n", cfg.Compare.Size)
			fmt.Printf("Compare Hash:    %v\n", cfg.Compare.Hash)
			fmt.Printf("Max Workers:     %d\n", cfg.Performance.MaxWorkers)
			fmt.Printf("Buffer Size:     %d\n", cfg.Performance.BufferSize)
			fmt.Printf("Bandwidth Limit: %d\n", cfg.Performance.BandwidthLimit)
			fmt.Printf("Output Format:   %s\n", cfg.Output.Format)
			fmt.Printf("Progress:        %v\n", cfg.Output.Progress)
			fmt.Printf("Log Format:      %s\n", cfg.Logging.Format)
			fmt.Printf("Log Level:       %s\n", cfg.Logging.Level)

			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.DefaultConfigPath()
			if err != nil {
				return err
			}

			cfg := config.Default()
			if err := config.SaveToFile(cfg, path); err != nil {
				return err
			}

			fmt.Printf("Configuration file created at: %s\n", path)
			return nil
		},
	}
}
