package cmd

import (
	logger "github.com/ricelabs/rice-cli/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool

	// Logger is shared by all rice-cli commands. It is rebuilt from the
	// flag values in each command's PersistentPreRun.
	Logger logger.Logger
)

// registerCommonFlags wires the logging flags and logger setup shared by
// every command.
func registerCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{Verbose: verbose, Debug: debug}
		Logger.Debugf("Initializing %s command with verbose=%t, debug=%t", cmd.Name(), verbose, debug)
	}
}

// ResetState resets all command global variables to their default values for testing.
func ResetState() {
	verbose = false
	debug = false
	Logger = logger.Logger{}
	resetSetupState()
	resetConfigState()
	resetCheckState()
	resetCobraFlagState(SetupCmd)
	resetCobraFlagState(ConfigCmd)
	resetCobraFlagState(CheckCmd)
}

// resetCobraFlagState resets cobra's changed-flag tracking to prevent test pollution.
func resetCobraFlagState(cmd *cobra.Command) {
	if cmd != nil && cmd.Flags() != nil {
		cmd.Flags().VisitAll(func(flag *pflag.Flag) {
			flag.Changed = false
		})
	}
}
