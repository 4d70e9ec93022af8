package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-valuation-api/internal/cli"
	"github.com/vfg2006/growth-valuation-api/internal/config"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/valuing"
	"github.com/vfg2006/growth-valuation-api/pkg/utils"
)

var flagReport bool

var valuationCmd = &cobra.Command{
	Use:   "valuation",
	Short: "Run the DCF valuation with comparables and sensitivity analysis",
	RunE:  runValuation,
}

func init() {
	registerInputFlags(valuationCmd, domain.ValuationControls())
	valuationCmd.Flags().BoolVar(&flagReport, "report", false, "Print the executive report summary instead of the full model")
	rootCmd.AddCommand(valuationCmd)
}

func runValuation(cmd *cobra.Command, _ []string) error {
	scenario, err := cli.LoadScenario(flagScenario)
	if err != nil {
		return err
	}

	inputs := scenario.Valuation
	if err := applyInputFlags(cmd, domain.ValuationControls(), inputs.Field); err != nil {
		return err
	}

	// COMPARABLES_SEED e SHARES_OUTSTANDING_MILLIONS valem também para a CLI
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	service := valuing.NewService(cfg)
	out := cmd.OutOrStdout()

	if flagReport {
		stub, err := service.GenerateReport(cmd.Context(), inputs)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, utils.PrettyJson(stub))
		return nil
	}

	report, err := service.Simulate(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	if flagJSON {
		fmt.Fprintln(out, utils.PrettyJson(report))
		return nil
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderValuationReport(report))
	return nil
}
