package cli

import "github.com/spf13/cobra"

// GlobalFlags are the persistent flags shared by every subcommand
type GlobalFlags struct {
	ConfigFile string
	Verbose    bool
	Quiet      bool
}

var globalFlags GlobalFlags

// AddGlobalFlags registers the persistent flags on the root command.
// Verbose and quiet pull in opposite directions; verbose wins when both
// are given.
func AddGlobalFlags(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&globalFlags.ConfigFile, "config", "",
		"config file (default is $HOME/.config/dircomp/config.yaml)")
	pf.BoolVarP(&globalFlags.Verbose, "verbose", "v", false,
		"verbose output (overrides silent flags)")
	pf.BoolVarP(&globalFlags.Quiet, "quiet", "q", false,
		"suppress non-error output")
}

// GetGlobalFlags exposes the parsed global flag values
func GetGlobalFlags() *GlobalFlags {
	return &globalFlags
}
