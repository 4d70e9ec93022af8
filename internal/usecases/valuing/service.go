//go:generate mockgen -source=service.go -destination=mocks/valuer_mock.go -package=mocks
package valuing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/growth-valuation-api/internal/config"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/pkg/apiErrors"
	"github.com/vfg2006/growth-valuation-api/pkg/log"
	"github.com/vfg2006/growth-valuation-api/pkg/utils"
)

const ReportStatusStub = "stub"

// Valuer define a interface do simulador de valuation
type Valuer interface {
	// Simulate limita as premissas aos intervalos válidos e recalcula DCF, comparáveis e sensibilidade
	Simulate(ctx context.Context, inputs domain.ValuationInputs) (*domain.ValuationReport, error)
	// GenerateReport devolve os números do relatório executivo; nenhum arquivo é gerado
	GenerateReport(ctx context.Context, inputs domain.ValuationInputs) (*domain.ReportStub, error)
	// Controls retorna os intervalos válidos de cada premissa
	Controls() domain.Controls
}

type Service struct {
	comparablesSeed   uint64
	sharesOutstanding float64
	now               func() time.Time
	generateID        func() (string, error)
}

// NewService cria uma nova instância do simulador de valuation
func NewService(cfg *config.Config) Valuer {
	seed := DefaultComparablesSeed
	shares := DefaultSharesOutstanding
	if cfg != nil {
		seed = cfg.Simulation.ComparablesSeed
		if cfg.Simulation.SharesOutstanding > 0 {
			shares = cfg.Simulation.SharesOutstanding
		}
	}

	return &Service{
		comparablesSeed:   seed,
		sharesOutstanding: shares,
		now:               time.Now,
		generateID:        utils.GenerateID,
	}
}

func (s *Service) Controls() domain.Controls {
	return domain.ValuationControls()
}

func (s *Service) Simulate(ctx context.Context, inputs domain.ValuationInputs) (*domain.ValuationReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewValuationError(errors.Wrap(err, "valuation simulation aborted"), apiErrors.ErrSimulationAborted, "")
	}

	logger := log.ForContext(ctx)

	clamped := inputs.Clamp()
	if clamped != inputs {
		logger.WithFields(log.Fields{
			"requested": inputs,
			"clamped":   clamped,
		}).Debug("valuation: inputs clamped to valid ranges")
	}

	dcf, err := ComputeDCF(clamped)
	if err != nil {
		logger.WithFields(log.Fields{
			"wacc":            clamped.WACC,
			"terminal_growth": clamped.TerminalGrowth,
			"error":           err.Error(),
		}).Warn("valuation: degenerate discount rate")
		return nil, errors.Wrap(err, "valuation: dcf")
	}

	baseYear := s.now().Year()
	for i := range dcf.Schedule {
		dcf.Schedule[i].FiscalYear = baseYear + i
	}

	comps := GenerateComparables(NewRandomSource(s.comparablesSeed))
	compsSummary := SummarizeComparables(comps)

	report := &domain.ValuationReport{
		Inputs:       clamped,
		DCF:          *dcf,
		Comparables:  comps,
		CompsSummary: compsSummary,
		Sensitivity:  Sensitivity(clamped),
		ValueDrivers: ValueDrivers(dcf.EnterpriseValue),
		Summary:      Summarize(clamped, dcf, compsSummary, s.sharesOutstanding),
	}

	logger.WithFields(log.Fields{
		"enterprise_value": dcf.EnterpriseValue,
		"terminal_value":   dcf.TerminalValue,
	}).Debug("valuation: simulation computed")

	return report, nil
}

func (s *Service) GenerateReport(ctx context.Context, inputs domain.ValuationInputs) (*domain.ReportStub, error) {
	report, err := s.Simulate(ctx, inputs)
	if err != nil {
		return nil, err
	}

	id, err := s.generateID()
	if err != nil {
		return nil, NewValuationError(ErrReportID, apiErrors.ErrInternalServer, err.Error())
	}

	log.ForContext(ctx).WithField("report_id", id).Info("valuation: report stub requested")

	return &domain.ReportStub{
		ID:      id,
		Status:  ReportStatusStub,
		Message: "PDF report would be generated with full DCF model, comps analysis, and executive summary.",
		Data:    ReportData(report),
	}, nil
}
