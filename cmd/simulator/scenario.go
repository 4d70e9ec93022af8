package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-valuation-api/internal/cli"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Manage scenario files",
}

var scenarioInitCmd = &cobra.Command{
	Use:   "init <file.toml>",
	Short: "Write a scenario file with the default inputs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.SaveScenario(args[0], cli.DefaultScenario()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Scenario written to %s\n", args[0])
		return nil
	},
}

func init() {
	scenarioCmd.AddCommand(scenarioInitCmd)
	rootCmd.AddCommand(scenarioCmd)
}
