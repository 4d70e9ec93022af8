package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/pkg/log"
)

var (
	flagScenario string
	flagJSON     bool
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:          "simulator",
	Short:        "Growth funnel and DCF valuation simulator",
	Long:         "Recompute the SaaS growth funnel and the DCF valuation from the command line.",
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		level := logrus.WarnLevel
		if flagVerbose {
			level = logrus.DebugLevel
		}
		log.Setup(log.Options{Level: level.String()})
	},
}

// Execute é o ponto de entrada chamado pelo main
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagScenario, "scenario", "s", "", "TOML scenario file with [funnel] and [valuation] tables")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Print the full report as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logs")
}

// flagName converte a chave do controle em nome de flag. Ex.: nwc_percent -> nwc-percent
func flagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// registerInputFlags cria uma flag por controle, com o padrão do controle
func registerInputFlags(cmd *cobra.Command, controls domain.Controls) {
	for _, in := range controls.Inputs {
		usage := fmt.Sprintf("%s, %g to %g (%s)", in.Label, in.Min, in.Max, in.Unit)
		cmd.Flags().Float64(flagName(in.Key), in.Default, usage)
	}
}

// applyInputFlags sobrescreve as entradas carregadas com as flags informadas explicitamente
func applyInputFlags(cmd *cobra.Command, controls domain.Controls, field func(key string) (*float64, bool)) error {
	for _, in := range controls.Inputs {
		name := flagName(in.Key)
		if !cmd.Flags().Changed(name) {
			continue
		}

		v, err := cmd.Flags().GetFloat64(name)
		if err != nil {
			return err
		}

		ptr, ok := field(in.Key)
		if !ok {
			return fmt.Errorf("no input bound to flag --%s", name)
		}
		*ptr = v
	}
	return nil
}
