package main

import (
	"fmt"
	"os"

	"github.com/ricelabs/rice-cli/cmd"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "rice-cli",
	Short: "Rice CLI - set up and verify the Rice SDK in your project.",
	Long: `Rice CLI provisions local configuration for the Rice SDK: which
services to use (Storage, State), where they live, and how to
authenticate against them.

Configuration lands in two files in the working directory:
  .env              connection settings and auth tokens (RICE_* keys)
  rice.config.toml  the generated configuration module (no secrets)

Usage:
  rice-cli [command]

Available Commands:
  setup      Interactive setup wizard (the default when no command is given)
  config     Show current configuration with tokens masked
  check      Probe the health endpoint of each enabled service

Run 'rice-cli help <command>' for more details on a specific command.
`,
	RunE: func(c *cobra.Command, args []string) error {
		// Bare invocation runs setup, matching `rice-cli setup`.
		return cmd.RunSetup()
	},
}

func main() {
	rootCmd.AddCommand(cmd.SetupCmd, cmd.ConfigCmd, cmd.CheckCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
