package funneling

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/pkg/log"
)

func TestService_Simulate(t *testing.T) {
	log.SetupTestLogger()
	service := NewService()

	report, err := service.Simulate(context.Background(), domain.DefaultFunnelInputs())
	require.NoError(t, err)

	assert.InDelta(t, 11_925.0, report.Metrics.MRR, 1e-9)
	assert.InDelta(t, 3_000/(55_000/79.5), report.LTVCACRatio, 1e-9)
	assert.InDelta(t, 0.15, report.OverallConversion, 1e-9)
	assert.Len(t, report.Projection, ProjectionMonths)
	assert.Equal(t, report.Projection[ProjectionMonths-1].MRR, report.ProjectionSummary.FinalMRR)
	assert.Len(t, report.Channels, 4)
	assert.Len(t, report.Scenarios, 4)
	assert.NotEmpty(t, report.Insights)
}

func TestService_SimulateClampsInputs(t *testing.T) {
	service := NewService()

	in := domain.DefaultFunnelInputs()
	in.PaidSearchSpend = 1_000_000
	in.VisitorToLead = 0.9
	in.MonthlyRetention = math.NaN()

	report, err := service.Simulate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, 100_000.0, report.Inputs.PaidSearchSpend)
	assert.Equal(t, 0.10, report.Inputs.VisitorToLead)
	assert.Equal(t, 0.95, report.Inputs.MonthlyRetention)
	assert.LessOrEqual(t, report.Metrics.Customers, report.Metrics.Trials)
}

func TestService_SimulateCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewService().Simulate(ctx, domain.DefaultFunnelInputs())

	assert.Nil(t, report)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Controls(t *testing.T) {
	controls := NewService().Controls()

	assert.Equal(t, "funnel", controls.Simulation)
	assert.Len(t, controls.Inputs, 10)
}
