package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Gavin1937/dirComp/pkg/compare"
	"github.com/Gavin1937/dirComp/pkg/config"
	"github.com/Gavin1937/dirComp/pkg/output"
	"github.com/Gavin1937/dirComp/pkg/ratelimit"
	"github.com/Gavin1937/dirComp/pkg/storage"
)

// CompareFlags holds compare command flags
type CompareFlags struct {
	Path      bool
	Size      bool
	Hash      bool
	Output    string
	Format    string
	Silent    bool
	SilentAll bool
	Parallel  int
	Bandwidth string
	// Logging flags
	LogFile   string
	LogFormat string
	LogLevel  string
}

var compareFlags CompareFlags

// NewCompareCommand creates the compare command
func NewCompareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare LEFT RIGHT",
		Short: "Compare the contents of two directory trees",
		Long: `Compare every regular file under two directory trees and classify
each one as present only on the left side, only on the right side, or
on both sides. Files are matched by relative path, or by MD5 content
hash when hash comparison is enabled.`,
		Args: cobra.ExactArgs(2),
		RunE: runCompare,
	}

	cmd.Flags().BoolVarP(&compareFlags.Path, "path", "p", false, "compare files by relative path")
	cmd.Flags().BoolVarP(&compareFlags.Size, "size", "s", false, "include file size in the output")
	cmd.Flags().BoolVarP(&compareFlags.Hash, "hash", "H", false, "compare files by md5 content hash")
	cmd.Flags().StringVarP(&compareFlags.Output, "output", "o", "", "write result to a JSON file")
	cmd.Flags().StringVar(&compareFlags.Format, "format", "", "stdout format: human, json")
	cmd.Flags().BoolVar(&compareFlags.Silent, "silent", false, "suppress progress output, keep the final result")
	cmd.Flags().BoolVar(&compareFlags.SilentAll, "silent-all", false, "suppress all output")
	cmd.Flags().IntVar(&compareFlags.Parallel, "parallel", 0, "number of parallel hashing workers")
	cmd.Flags().StringVarP(&compareFlags.Bandwidth, "bandwidth", "b", "", "read rate limit for hashing (e.g. \"10M\")")

	cmd.Flags().StringVar(&compareFlags.LogFile, "log-file", "", "write logs to file (enables logging)")
	cmd.Flags().StringVar(&compareFlags.LogFormat, "log-format", "", "log format: text, json")
	cmd.Flags().StringVar(&compareFlags.LogLevel, "log-level", "", "log level: debug, info, warn, error")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	leftRoot, rightRoot := args[0], args[1]

	if err := validateCompareArgs(leftRoot, rightRoot); err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := applyFlagsToConfig(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	left, err := storage.NewLocal(leftRoot)
	if err != nil {
		return fmt.Errorf("left tree: %w", err)
	}
	defer left.Close()

	right, err := storage.NewLocal(rightRoot)
	if err != nil {
		return fmt.Errorf("right tree: %w", err)
	}
	defer right.Close()

	logger, err := createLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Close()

	comparator := compare.NewComparator(left, right, cfg.Options())
	comparator.SetWorkers(cfg.Performance.MaxWorkers)
	comparator.SetBufferSize(cfg.Performance.BufferSize)
	comparator.SetLimiter(ratelimit.NewLimiter(cfg.Performance.BandwidthLimit))
	comparator.SetObserver(chooseObserver(cfg))
	comparator.SetLogger(logger)

	report, err := comparator.Run(ctx)
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	if compareFlags.Output != "" {
		if err := output.WriteJSONFile(compareFlags.Output, report.Result); err != nil {
			return err
		}
	}

	if compareFlags.SilentAll || cfg.Output.Quiet {
		return nil
	}

	switch cfg.Output.Format {
	case "json":
		return output.WriteJSON(os.Stdout, report.Result)
	default:
		return output.NewHumanWriter(os.Stdout).Write(report)
	}
}

// chooseObserver selects the progress sink. Progress goes to stderr so
// a JSON result on stdout stays parseable.
func chooseObserver(cfg *config.Config) output.Observer {
	if compareFlags.Silent || compareFlags.SilentAll || cfg.Output.Quiet {
		return output.NewNullObserver()
	}
	if cfg.Output.Progress && output.IsTerminal(os.Stderr) {
		return output.NewBarObserver(os.Stderr)
	}
	return output.NewConsoleObserver(os.Stderr)
}
