//go:generate mockgen -source=service.go -destination=mocks/funneler_mock.go -package=mocks
package funneling

import (
	"context"

	"github.com/pkg/errors"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/pkg/log"
)

// Funneler define a interface do simulador de funil
type Funneler interface {
	// Simulate limita as entradas aos intervalos válidos e recalcula o funil completo
	Simulate(ctx context.Context, inputs domain.FunnelInputs) (*domain.FunnelReport, error)
	// Controls retorna os intervalos válidos de cada entrada
	Controls() domain.Controls
}

type Service struct {
	projectionMonths int
}

// NewService cria uma nova instância do simulador de funil
func NewService() Funneler {
	return &Service{
		projectionMonths: ProjectionMonths,
	}
}

func (s *Service) Controls() domain.Controls {
	return domain.FunnelControls()
}

func (s *Service) Simulate(ctx context.Context, inputs domain.FunnelInputs) (*domain.FunnelReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Wrap(err, "funnel simulation aborted")
	}

	clamped := inputs.Clamp()
	if clamped != inputs {
		log.ForContext(ctx).WithFields(log.Fields{
			"requested": inputs,
			"clamped":   clamped,
		}).Debug("funnel: inputs clamped to valid ranges")
	}

	metrics := ComputeFunnel(clamped)
	projection := ProjectGrowth(metrics, clamped, s.projectionMonths)

	report := &domain.FunnelReport{
		Inputs:            clamped,
		Metrics:           metrics,
		LTVCACRatio:       LTVToCAC(metrics),
		OverallConversion: OverallConversion(metrics),
		Projection:        projection,
		ProjectionSummary: SummarizeProjection(projection),
		Channels:          ChannelPerformance(metrics, clamped),
		Insights:          Insights(metrics, clamped),
		Scenarios:         WhatIfScenarios(metrics),
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"customers": metrics.Customers,
		"mrr":       metrics.MRR,
		"cac":       metrics.CAC,
	}).Debug("funnel: simulation computed")

	return report, nil
}
