package valuing

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-valuation-api/internal/config"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/pkg/apiErrors"
	"github.com/vfg2006/growth-valuation-api/pkg/log"
)

func newTestService() *Service {
	return &Service{
		comparablesSeed:   DefaultComparablesSeed,
		sharesOutstanding: DefaultSharesOutstanding,
		now:               func() time.Time { return time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC) },
		generateID:        func() (string, error) { return "rpt_test01", nil },
	}
}

func TestNewService(t *testing.T) {
	tests := []struct {
		name           string
		cfg            *config.Config
		expectedSeed   uint64
		expectedShares float64
	}{
		{name: "sem configuração", cfg: nil, expectedSeed: DefaultComparablesSeed, expectedShares: DefaultSharesOutstanding},
		{
			name:           "com configuração",
			cfg:            &config.Config{Simulation: config.Simulation{ComparablesSeed: 7, SharesOutstanding: 25}},
			expectedSeed:   7,
			expectedShares: 25,
		},
		{
			name:           "ações não positivas usam o padrão",
			cfg:            &config.Config{Simulation: config.Simulation{ComparablesSeed: 42, SharesOutstanding: 0}},
			expectedSeed:   42,
			expectedShares: DefaultSharesOutstanding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(tt.cfg).(*Service)

			assert.Equal(t, tt.expectedSeed, service.comparablesSeed)
			assert.Equal(t, tt.expectedShares, service.sharesOutstanding)
		})
	}
}

func TestService_Simulate(t *testing.T) {
	log.SetupTestLogger()
	service := newTestService()

	report, err := service.Simulate(context.Background(), domain.DefaultValuationInputs())
	require.NoError(t, err)

	assert.InEpsilon(t, 202.36253927327357, report.DCF.EnterpriseValue, 1e-9)
	for i, year := range report.DCF.Schedule {
		assert.Equal(t, 2025+i, year.FiscalYear)
	}

	assert.Len(t, report.Comparables, 8)
	assert.Equal(t, SummarizeComparables(report.Comparables), report.CompsSummary)
	assert.InEpsilon(t, report.DCF.EnterpriseValue, report.Sensitivity.Values[2][2], 1e-6)
	assert.Len(t, report.ValueDrivers, 5)
	assert.Equal(t, DefaultSharesOutstanding, report.Summary.SharesOutstanding)

	again, err := service.Simulate(context.Background(), domain.DefaultValuationInputs())
	require.NoError(t, err)
	assert.Equal(t, report.Comparables, again.Comparables)
}

func TestService_SimulateClampsInputs(t *testing.T) {
	in := domain.DefaultValuationInputs()
	in.CurrentRevenue = 5_000
	in.GrowthRates[0] = -90
	in.WACC = 1

	report, err := newTestService().Simulate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 1000.0, report.Inputs.CurrentRevenue)
	assert.Equal(t, -50.0, report.Inputs.GrowthRates[0])
	assert.Equal(t, 5.0, report.Inputs.WACC)
}

func TestService_SimulateInvalidDiscountRate(t *testing.T) {
	in := domain.DefaultValuationInputs()
	in.WACC, in.TerminalGrowth = 5, 10

	report, err := newTestService().Simulate(context.Background(), in)

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidDiscountRate)

	var valuationErr *ValuationError
	require.True(t, errors.As(err, &valuationErr))
	assert.Equal(t, apiErrors.ErrInvalidDiscountRate, valuationErr.Code)
}

func TestService_SimulateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService().Simulate(ctx, domain.DefaultValuationInputs())

	assert.ErrorIs(t, err, context.Canceled)
	var valuationErr *ValuationError
	require.True(t, errors.As(err, &valuationErr))
	assert.Equal(t, apiErrors.ErrSimulationAborted, valuationErr.Code)
}

func TestService_GenerateReport(t *testing.T) {
	service := newTestService()

	stub, err := service.GenerateReport(context.Background(), domain.DefaultValuationInputs())
	require.NoError(t, err)

	assert.Equal(t, "rpt_test01", stub.ID)
	assert.Equal(t, ReportStatusStub, stub.Status)
	assert.Contains(t, stub.Message, "PDF report would be generated")
	assert.Equal(t, "$202.4M", stub.Data["Enterprise Value (DCF)"])
	assert.Len(t, stub.Data, 5)
}

func TestService_GenerateReportIDFailure(t *testing.T) {
	service := newTestService()
	service.generateID = func() (string, error) { return "", errors.New("entropy exhausted") }

	stub, err := service.GenerateReport(context.Background(), domain.DefaultValuationInputs())

	assert.Nil(t, stub)
	assert.ErrorIs(t, err, ErrReportID)
}

func TestService_Controls(t *testing.T) {
	controls := newTestService().Controls()

	assert.Equal(t, "valuation", controls.Simulation)
	assert.Len(t, controls.Inputs, 12)
}
