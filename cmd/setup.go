package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/ricelabs/rice-cli/internal/configs"
	"github.com/ricelabs/rice-cli/internal/envfile"
	ricerrors "github.com/ricelabs/rice-cli/internal/errors"
	"github.com/ricelabs/rice-cli/internal/ui"
	"github.com/ricelabs/rice-cli/internal/wizard"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	setupSkipCheck bool

	// setupPrompter overrides the interactive prompter in tests.
	setupPrompter wizard.Prompter
)

func init() {
	SetupCmd.Flags().BoolVar(&setupSkipCheck, "skip-check", false, "skip the connection check after writing configuration")
	registerCommonFlags(SetupCmd)
}

// resetSetupState resets the setup command's global state for testing.
func resetSetupState() {
	setupSkipCheck = false
	setupPrompter = nil
}

// SetupCmd walks the operator through configuring Rice in the current
// project. It is also the root command's default action.
var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Set up Rice in the current project (default)",
	Long: `Walks you through configuring the Rice SDK in the current project.

The wizard asks which services to enable (Storage, State) and their
connection settings, pre-filled with any values already on disk. It then
writes two files into the working directory:

  .env              RICE_* keys merged in, everything else left untouched
  rice.config.toml  regenerated in full; holds no secrets

After writing, each enabled service's health endpoint is probed once.
Probe failures are reported but never fail setup; use 'rice-cli check'
for a verdict with a meaningful exit code.

Examples:
  # Interactive setup
  rice-cli setup

  # Setup without the connection check (e.g. offline)
  rice-cli setup --skip-check`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunSetup()
	},
}

// RunSetup executes the setup flow. Exported so the bare 'rice-cli'
// invocation can default to it.
func RunSetup() error {
	banner := figure.NewColorFigure("Rice", "", "green", true)
	banner.Print()
	fmt.Println()
	fmt.Println(color.GreenString("Welcome to the Rice setup wizard."))
	fmt.Println("This utility walks you through setting up Rice in your project.")
	fmt.Println()

	wd, err := os.Getwd()
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to get working directory: %v", err)
	}

	state, err := configs.LoadState(wd)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to read existing configuration: %v", err)
	}
	warnOnDegradedState(state)

	prompter := setupPrompter
	if prompter == nil {
		prompter = wizard.NewTerminal()
	}

	cfg, err := wizard.Run(prompter, state.Config)
	if errors.Is(err, ricerrors.ErrNoServicesEnabled) {
		fmt.Println(ui.Error.Sprint("✗") + " At least one service must be enabled. Nothing was written.")
		return err
	}
	if err != nil {
		return Logger.ErrorfAndReturn("Setup aborted: %v", err)
	}

	if err := writeConfiguration(wd, &cfg, state.Env); err != nil {
		return err
	}

	if !setupSkipCheck {
		fmt.Println()
		// Best effort after the files are already written: outcomes are
		// reported, but setup never fails on them.
		_ = runHealthChecks(&cfg, false)
	}

	fmt.Println()
	fmt.Println(color.GreenString("Setup complete!"))
	fmt.Println("You can now install the SDK: " + ui.Code.Sprint("go get github.com/ricelabs/rice-go"))
	return nil
}

// writeConfiguration flushes cfg to both persisted files under a spinner.
func writeConfiguration(dir string, cfg *configs.Config, env *envfile.File) error {
	s, cleanup := startSpinner("Writing configuration files...")
	err := configs.Save(dir, cfg, env)
	if err != nil {
		s.FinalMSG = ui.Error.Sprint("✗") + " Failed to write configuration"
		cleanup()
		return Logger.ErrorfAndReturn("Failed to write configuration: %v", err)
	}
	s.FinalMSG = ui.Success.Sprint("✓") + " Wrote " + ui.Path.Sprint(configs.EnvFileName) + " and " + ui.Path.Sprint(configs.ModuleFileName)
	cleanup()
	return nil
}

// warnOnDegradedState surfaces unparseable existing files. They degrade to
// an empty baseline rather than blocking setup.
func warnOnDegradedState(state *configs.State) {
	if state.ModuleStatus == configs.ModuleMalformed {
		Logger.Warnf("%s is malformed; it will be regenerated", configs.ModuleFileName)
	}
	if state.EnvStatus == envfile.StatusMalformed {
		Logger.Warnf("%s has lines that could not be parsed; they will be preserved as-is", configs.EnvFileName)
	}
}
