// Package scheduler contém os serviços agendados da aplicação
package scheduler

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-valuation-api/internal/config"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/funneling"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/valuing"
	"github.com/vfg2006/growth-valuation-api/pkg/utils"
)

// Tolerância relativa das verificações de ponto flutuante
const selfCheckTolerance = 1e-6

// Nomes das verificações
const (
	CheckFunnelMonotonic      = "funnel_monotonic"
	CheckFunnelReference      = "funnel_reference_scenario"
	CheckCACRoundTrip         = "cac_round_trip"
	CheckLTVFormula           = "ltv_formula"
	CheckDCFComposition       = "dcf_enterprise_value_composition"
	CheckDCFReference         = "dcf_reference_scenario"
	CheckSensitivityBaseCell  = "sensitivity_base_cell"
	CheckComparablesReproduce = "comparables_reproducible"
)

// ReferenceFunnelInputs é o cenário de referência do funil
var ReferenceFunnelInputs = domain.FunnelInputs{
	PaidSearchSpend:      25_000,
	ContentSpend:         15_000,
	SocialSpend:          10_000,
	EventsSpend:          5_000,
	VisitorToLead:        0.03,
	LeadToTrial:          0.20,
	TrialToPaid:          0.25,
	MonthlyRetention:     0.95,
	AverageContractValue: 150,
	SalesCycleDays:       21,
}

// ReferenceValuationInputs é o cenário de referência do valuation
var ReferenceValuationInputs = domain.ValuationInputs{
	CurrentRevenue: 50,
	GrowthRates:    [domain.ProjectionYears]float64{30, 25, 20, 15, 10},
	TerminalGrowth: 3,
	EBITDAMargin:   25,
	WACC:           10,
	TaxRate:        21,
	CapexPercent:   5,
	NWCPercent:     10,
}

// CheckResult é o resultado de uma verificação
type CheckResult struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

type SelfCheckConfig struct {
	CronSchedule string
	Enabled      bool
}

// SelfCheckService reexecuta periodicamente os cenários de referência pelos
// simuladores e guarda o resultado da última execução
type SelfCheckService struct {
	scheduler       *gocron.Scheduler
	funnelService   funneling.Funneler
	valuerService   valuing.Valuer
	config          SelfCheckConfig
	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastResults     []CheckResult
}

func NewSelfCheckService(
	funnelService funneling.Funneler,
	valuerService valuing.Valuer,
	cfg *config.Config,
) *SelfCheckService {
	checkConfig := SelfCheckConfig{
		CronSchedule: cfg.SelfCheck.CronSchedule,
		Enabled:      cfg.SelfCheck.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": checkConfig.CronSchedule,
		"enabled":       checkConfig.Enabled,
	}).Info("Configuração do agendador de autoverificação carregada")

	return &SelfCheckService{
		scheduler:     gocron.NewScheduler(time.Local),
		funnelService: funnelService,
		valuerService: valuerService,
		config:        checkConfig,
	}
}

func (s *SelfCheckService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de autoverificação desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de autoverificação")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunSelfCheck(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar autoverificação: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de autoverificação")
		s.scheduler.Stop()
	}()

	return nil
}

// RunSelfCheck executa todas as verificações. Se já houver uma execução em andamento,
// retorna nil sem executar.
func (s *SelfCheckService) RunSelfCheck(ctx context.Context) []CheckResult {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Warn("Autoverificação já está em execução")
		return nil
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mutex.Unlock()

	results := make([]CheckResult, 0, 8)
	results = append(results, s.checkFunnel(ctx)...)
	results = append(results, s.checkValuation(ctx)...)

	failed := 0
	for _, r := range results {
		if !r.Passed {
			failed++
			logrus.WithFields(logrus.Fields{
				"check":  r.Name,
				"detail": r.Detail,
			}).Error("Verificação falhou")
		}
	}

	s.mutex.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastResults = results
	s.mutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"checks": len(results),
		"failed": failed,
	}).Info("Autoverificação concluída")

	return results
}

func (s *SelfCheckService) checkFunnel(ctx context.Context) []CheckResult {
	report, err := s.funnelService.Simulate(ctx, ReferenceFunnelInputs)
	if err != nil {
		detail := err.Error()
		return []CheckResult{
			{Name: CheckFunnelMonotonic, Detail: detail},
			{Name: CheckFunnelReference, Detail: detail},
			{Name: CheckCACRoundTrip, Detail: detail},
			{Name: CheckLTVFormula, Detail: detail},
		}
	}

	m := report.Metrics
	in := report.Inputs

	monotonic := m.Customers <= m.Trials && m.Trials <= m.Leads && m.Leads <= m.Visitors
	reference := utils.RelativelyEqual(m.Visitors, 53_000, selfCheckTolerance) &&
		utils.RelativelyEqual(m.Leads, 1_590, selfCheckTolerance) &&
		utils.RelativelyEqual(m.Trials, 318, selfCheckTolerance) &&
		utils.RelativelyEqual(m.Customers, 79.5, selfCheckTolerance) &&
		utils.RelativelyEqual(m.MRR, 11_925, selfCheckTolerance)

	roundTrip := (m.CAC == 0 && m.Customers == 0) ||
		utils.RelativelyEqual(m.CAC*m.Customers, m.TotalSpend, selfCheckTolerance)

	expectedLTV := in.AverageContractValue * funneling.FlatLifetimeMonths
	if in.MonthlyRetention < 1 {
		expectedLTV = in.AverageContractValue / (1 - in.MonthlyRetention)
	}

	return []CheckResult{
		result(CheckFunnelMonotonic, monotonic, "customers=%.4f trials=%.4f leads=%.4f visitors=%.4f", m.Customers, m.Trials, m.Leads, m.Visitors),
		result(CheckFunnelReference, reference, "visitors=%.2f customers=%.4f mrr=%.2f", m.Visitors, m.Customers, m.MRR),
		result(CheckCACRoundTrip, roundTrip, "cac*customers=%.4f spend=%.2f", m.CAC*m.Customers, m.TotalSpend),
		result(CheckLTVFormula, utils.RelativelyEqual(m.LTV, expectedLTV, selfCheckTolerance), "ltv=%.4f expected=%.4f", m.LTV, expectedLTV),
	}
}

func (s *SelfCheckService) checkValuation(ctx context.Context) []CheckResult {
	first, err := s.valuerService.Simulate(ctx, ReferenceValuationInputs)
	if err != nil {
		detail := err.Error()
		return []CheckResult{
			{Name: CheckDCFComposition, Detail: detail},
			{Name: CheckDCFReference, Detail: detail},
			{Name: CheckSensitivityBaseCell, Detail: detail},
			{Name: CheckComparablesReproduce, Detail: detail},
		}
	}

	dcf := first.DCF
	composed := dcf.SumPVFreeCashFlows + dcf.PVTerminalValue
	sumPV := 0.0
	for _, pv := range dcf.PVFreeCashFlows {
		sumPV += pv
	}

	// Ano 1 do cenário de referência: receita 65, EBITDA 16.25, impostos 3.4125,
	// capex 3.25, variação de capital de giro 1.5
	year1 := dcf.Schedule[1]
	expectedFCF1 := 16.25 - 3.4125 - 3.25 - 1.5
	expectedTV := dcf.Schedule[domain.ProjectionYears].FCF * 1.03 / (0.10 - 0.03)
	reference := utils.RelativelyEqual(year1.FCF, expectedFCF1, selfCheckTolerance) &&
		utils.RelativelyEqual(dcf.TerminalValue, expectedTV, selfCheckTolerance)

	base := first.Sensitivity.Values[2][2]

	second, err := s.valuerService.Simulate(ctx, ReferenceValuationInputs)
	reproducible := err == nil && slices.Equal(first.Comparables, second.Comparables)

	return []CheckResult{
		result(CheckDCFComposition,
			utils.RelativelyEqual(composed, dcf.EnterpriseValue, selfCheckTolerance) && utils.RelativelyEqual(sumPV, dcf.SumPVFreeCashFlows, selfCheckTolerance),
			"sum_pv+pv_tv=%.6f ev=%.6f", composed, dcf.EnterpriseValue),
		result(CheckDCFReference, reference, "fcf1=%.6f expected=%.6f tv=%.6f expected=%.6f", year1.FCF, expectedFCF1, dcf.TerminalValue, expectedTV),
		result(CheckSensitivityBaseCell, utils.RelativelyEqual(base, dcf.EnterpriseValue, selfCheckTolerance), "base_cell=%.6f ev=%.6f", base, dcf.EnterpriseValue),
		result(CheckComparablesReproduce, reproducible, "comparables=%d", len(first.Comparables)),
	}
}

func result(name string, passed bool, format string, args ...any) CheckResult {
	r := CheckResult{Name: name, Passed: passed}
	if !passed {
		r.Detail = fmt.Sprintf(format, args...)
	}
	return r
}

// TriggerManualRun inicia manualmente uma autoverificação em segundo plano
func (s *SelfCheckService) TriggerManualRun() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Autoverificação já em andamento, ignorando solicitação manual")
		return
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando autoverificação manual")
	go s.RunSelfCheck(context.Background())
}

// GetStatus retorna o status atual do agendador e o resultado da última execução
func (s *SelfCheckService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	passed := len(s.lastResults) > 0
	for _, r := range s.lastResults {
		passed = passed && r.Passed
	}

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_passed":       passed,
		"last_results":      slices.Clone(s.lastResults),
	}
}
