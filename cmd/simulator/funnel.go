package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-valuation-api/internal/cli"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/funneling"
	"github.com/vfg2006/growth-valuation-api/pkg/utils"
)

var funnelCmd = &cobra.Command{
	Use:   "funnel",
	Short: "Simulate the acquisition funnel and the 12-month growth projection",
	RunE:  runFunnel,
}

func init() {
	registerInputFlags(funnelCmd, domain.FunnelControls())
	rootCmd.AddCommand(funnelCmd)
}

func runFunnel(cmd *cobra.Command, _ []string) error {
	scenario, err := cli.LoadScenario(flagScenario)
	if err != nil {
		return err
	}

	inputs := scenario.Funnel
	if err := applyInputFlags(cmd, domain.FunnelControls(), inputs.Field); err != nil {
		return err
	}

	report, err := funneling.NewService().Simulate(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	if flagJSON {
		fmt.Fprintln(cmd.OutOrStdout(), utils.PrettyJson(report))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprint(cmd.OutOrStdout(), cli.RenderFunnelReport(report))
	return nil
}
