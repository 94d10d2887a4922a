package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ricelabs/rice-cli/internal/configs"
	"github.com/ricelabs/rice-cli/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var configJSON bool

func init() {
	ConfigCmd.Flags().BoolVar(&configJSON, "json", false, "output in JSON format")
	registerCommonFlags(ConfigCmd)
}

// resetConfigState resets the config command's global state for testing.
func resetConfigState() {
	configJSON = false
}

// ConfigCmd displays the current configuration with secrets masked.
var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current Rice configuration",
	Long: `Displays the configuration reconstructed from .env and rice.config.toml
in the current directory. Auth tokens are always shown masked.

Examples:
  # Human-readable report
  rice-cli config

  # JSON output (tokens still masked)
  rice-cli config --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to get working directory: %v", err)
		}

		state, err := configs.LoadState(wd)
		if err != nil {
			return Logger.ErrorfAndReturn("Failed to read existing configuration: %v", err)
		}
		if state.ModuleStatus == configs.ModuleMalformed {
			Logger.Warnf("%s is malformed and was ignored", configs.ModuleFileName)
		}

		modulePresent := state.ModuleStatus == configs.ModulePresent
		if configJSON {
			return printConfigJSON(&state.Config, modulePresent)
		}

		fmt.Println(color.GreenString("Rice configuration:"))
		fmt.Println()
		fmt.Print(state.Config.Report())
		fmt.Println()
		if modulePresent {
			fmt.Println(ui.Path.Sprint(configs.ModuleFileName) + " found.")
		} else {
			fmt.Println(ui.Path.Sprint(configs.ModuleFileName) + " not found. Run " + ui.Code.Sprint("rice-cli setup") + " to generate it.")
		}
		return nil
	},
}

// serviceView is the JSON shape for one service. Tokens pass through the
// masking choke point before they get here.
type serviceView struct {
	Enabled bool   `json:"enabled"`
	URL     string `json:"url,omitempty"`
	User    string `json:"user,omitempty"`
	RunID   string `json:"run_id,omitempty"`
	Token   string `json:"token,omitempty"`
}

func printConfigJSON(cfg *configs.Config, modulePresent bool) error {
	view := struct {
		Storage serviceView `json:"storage"`
		State   serviceView `json:"state"`
		Module  string      `json:"module,omitempty"`
	}{
		Storage: serviceView{
			Enabled: cfg.Storage.Enabled,
			URL:     cfg.Storage.URL,
			User:    cfg.Storage.User,
			Token:   ui.MaskSecret(cfg.Storage.Token),
		},
		State: serviceView{
			Enabled: cfg.State.Enabled,
			URL:     cfg.State.URL,
			RunID:   cfg.State.RunID,
			Token:   ui.MaskSecret(cfg.State.Token),
		},
	}
	if modulePresent {
		view.Module = filepath.Join(".", configs.ModuleFileName)
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to encode configuration: %v", err)
	}
	fmt.Println(string(data))
	return nil
}
