package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Gavin1937/dirComp/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "interrupted")
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:   "dircomp",
		Short: "Compare the contents of two directories",
		Long: `dircomp compares two directory trees and reports which files exist
only on the left side, only on the right side, or on both sides.
Files are matched by relative path or by MD5 content hash.`,
		Version:       cli.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cli.AddGlobalFlags(rootCmd)

	rootCmd.AddCommand(cli.NewCompareCommand())
	rootCmd.AddCommand(cli.NewConfigCommand())
	rootCmd.AddCommand(cli.NewVersionCommand())

	return rootCmd.ExecuteContext(ctx)
}
