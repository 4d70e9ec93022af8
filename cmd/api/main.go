package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-valuation-api/internal/api"
	"github.com/vfg2006/growth-valuation-api/internal/config"
	"github.com/vfg2006/growth-valuation-api/internal/scheduler"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/funneling"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/valuing"
	"github.com/vfg2006/growth-valuation-api/pkg/log"
)

func main() {
	// Nível provisório até a configuração ser lida
	log.Setup(log.Options{Level: logrus.InfoLevel.String(), Timestamps: true})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Setup(log.Options{Level: cfg.App.LogLevel, Timestamps: true})
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
	}
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	funnelService := funneling.NewService()
	valuationService := valuing.NewService(cfg)

	selfCheckService := scheduler.NewSelfCheckService(funnelService, valuationService, cfg)
	if err := selfCheckService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de autoverificação")
	}

	server, err := api.New(cfg, funnelService, valuationService, selfCheckService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
