package funneling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
)

func referenceInputs() domain.FunnelInputs {
	return domain.DefaultFunnelInputs()
}

func TestComputeFunnel_ReferenceScenario(t *testing.T) {
	m := ComputeFunnel(referenceInputs())

	assert.InDelta(t, 53_000.0, m.Visitors, 1e-9)
	assert.InDelta(t, 1_590.0, m.Leads, 1e-9)
	assert.InDelta(t, 318.0, m.Trials, 1e-9)
	assert.InDelta(t, 79.5, m.Customers, 1e-9)
	assert.InDelta(t, 55_000.0, m.TotalSpend, 1e-9)
	assert.InDelta(t, 11_925.0, m.MRR, 1e-9)
	assert.InDelta(t, 55_000.0/79.5, m.CAC, 1e-9)
	assert.InDelta(t, 3_000.0, m.LTV, 1e-9)
	assert.InDelta(t, 55_000.0/79.5/150, m.PaybackMonths, 1e-9)

	require.Len(t, m.Channels, 4)
	assert.Equal(t, domain.ChannelPaidSearch, m.Channels[0].Channel)
	assert.InDelta(t, 12_500.0, m.Channels[0].Visitors, 1e-9)
	assert.InDelta(t, 30_000.0, m.Channels[1].Visitors, 1e-9)
	assert.InDelta(t, 10_000.0, m.Channels[2].Visitors, 1e-9)
	assert.InDelta(t, 500.0, m.Channels[3].Visitors, 1e-9)
}

func TestComputeFunnel_Properties(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(in *domain.FunnelInputs)
	}{
		{name: "padrão", mutate: func(in *domain.FunnelInputs) {}},
		{name: "conversões mínimas", mutate: func(in *domain.FunnelInputs) {
			in.VisitorToLead, in.LeadToTrial, in.TrialToPaid = 0.01, 0.10, 0.10
		}},
		{name: "conversões máximas", mutate: func(in *domain.FunnelInputs) {
			in.VisitorToLead, in.LeadToTrial, in.TrialToPaid = 0.10, 0.40, 0.50
		}},
		{name: "investimento máximo", mutate: func(in *domain.FunnelInputs) {
			in.PaidSearchSpend, in.ContentSpend, in.SocialSpend, in.EventsSpend = 100_000, 50_000, 50_000, 30_000
		}},
		{name: "apenas eventos", mutate: func(in *domain.FunnelInputs) {
			in.PaidSearchSpend, in.ContentSpend, in.SocialSpend = 0, 0, 0
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInputs()
			tt.mutate(&in)

			m := ComputeFunnel(in)

			// Funil monotônico
			assert.LessOrEqual(t, m.Customers, m.Trials)
			assert.LessOrEqual(t, m.Trials, m.Leads)
			assert.LessOrEqual(t, m.Leads, m.Visitors)

			// CAC ida e volta
			if m.Customers > 0 {
				assert.InEpsilon(t, m.TotalSpend, m.CAC*m.Customers, 1e-9)
			}

			assert.InEpsilon(t, in.AverageContractValue/(1-in.MonthlyRetention), m.LTV, 1e-9)
		})
	}
}

func TestComputeFunnel_ZeroSpend(t *testing.T) {
	in := referenceInputs()
	in.PaidSearchSpend, in.ContentSpend, in.SocialSpend, in.EventsSpend = 0, 0, 0, 0

	m := ComputeFunnel(in)

	assert.Zero(t, m.Customers)
	assert.Zero(t, m.CAC)
	assert.Zero(t, m.PaybackMonths)
	assert.Zero(t, LTVToCAC(m))
	assert.Zero(t, OverallConversion(m))
}

func TestComputeFunnel_FullRetentionUsesFlatLifetime(t *testing.T) {
	in := referenceInputs()
	in.MonthlyRetention = 1

	m := ComputeFunnel(in)

	assert.Equal(t, in.AverageContractValue*FlatLifetimeMonths, m.LTV)
}

func TestProjectGrowth(t *testing.T) {
	in := referenceInputs()
	m := ComputeFunnel(in)

	points := ProjectGrowth(m, in, ProjectionMonths)
	require.Len(t, points, ProjectionMonths)

	assert.Equal(t, 1, points[0].Month)
	assert.Equal(t, m.Customers, points[0].Customers)
	assert.Equal(t, m.MRR, points[0].MRR)

	for i := 1; i < len(points); i++ {
		expected := points[i-1].Customers*in.MonthlyRetention + m.Customers
		assert.InDelta(t, expected, points[i].Customers, 1e-9, "mês %d", points[i].Month)
		assert.InDelta(t, points[i].Customers*in.AverageContractValue, points[i].MRR, 1e-9)
		assert.Greater(t, points[i].Customers, points[i-1].Customers)
	}

	assert.InDelta(t, 79.5*1.95, points[1].Customers, 1e-9)
}

func TestProjectGrowth_NonPositiveMonths(t *testing.T) {
	m := ComputeFunnel(referenceInputs())

	assert.Empty(t, ProjectGrowth(m, referenceInputs(), 0))
	assert.Empty(t, ProjectGrowth(m, referenceInputs(), -3))
	assert.Equal(t, domain.ProjectionSummary{}, SummarizeProjection(nil))
}

func TestSummarizeProjection(t *testing.T) {
	points := []domain.ProjectionPoint{
		{Month: 1, Customers: 10, MRR: 1_000},
		{Month: 2, Customers: 19, MRR: 1_900},
		{Month: 3, Customers: 25, MRR: 2_500},
	}

	s := SummarizeProjection(points)

	assert.Equal(t, 2_500.0, s.FinalMRR)
	assert.InDelta(t, 150.0, s.MRRGrowthPercent, 1e-9)
	assert.Equal(t, 25.0, s.FinalCustomers)
	assert.Equal(t, 15.0, s.NetNewCustomers)
	assert.Equal(t, 30_000.0, s.AnnualRunRate)
}

func TestChannelPerformance(t *testing.T) {
	in := referenceInputs()
	m := ComputeFunnel(in)

	rows := ChannelPerformance(m, in)
	require.Len(t, rows, 4)

	customers := 0.0
	for _, r := range rows {
		customers += r.Customers
	}
	assert.InDelta(t, m.Customers, customers, 1e-9)

	// Paid Search: 12500 visitantes a $2
	assert.InDelta(t, 2.0, rows[0].CostPerVisitor, 1e-9)
	assert.InDelta(t, 12_500*0.0015, rows[0].Customers, 1e-9)
	assert.InDelta(t, (rows[0].Revenue-25_000)/25_000*100, rows[0].ROIPercent, 1e-9)

	in.EventsSpend = 0
	rows = ChannelPerformance(ComputeFunnel(in), in)
	assert.Zero(t, rows[3].CostPerVisitor)
	assert.Zero(t, rows[3].ROIPercent)
}

func TestInsights(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(in *domain.FunnelInputs)
		expectedTypes []string
	}{
		{
			name:          "cenário padrão - CAC alto e conversão de topo baixa",
			mutate:        func(in *domain.FunnelInputs) {},
			expectedTypes: []string{domain.InsightWarning, domain.InsightWarning},
		},
		{
			name: "CAC eficiente com boa conversão",
			mutate: func(in *domain.FunnelInputs) {
				in.VisitorToLead, in.LeadToTrial, in.TrialToPaid = 0.10, 0.40, 0.50
			},
			expectedTypes: []string{domain.InsightSuccess},
		},
		{
			name: "retenção crítica",
			mutate: func(in *domain.FunnelInputs) {
				in.VisitorToLead, in.LeadToTrial, in.TrialToPaid = 0.10, 0.40, 0.50
				in.MonthlyRetention = 0.85
			},
			expectedTypes: []string{domain.InsightSuccess, domain.InsightCritical},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInputs()
			tt.mutate(&in)

			insights := Insights(ComputeFunnel(in), in)

			types := make([]string, len(insights))
			for i, insight := range insights {
				types[i] = insight.Type
				assert.NotEmpty(t, insight.Action)
			}
			assert.Equal(t, tt.expectedTypes, types)
		})
	}
}

func TestWhatIfScenarios(t *testing.T) {
	m := ComputeFunnel(referenceInputs())

	scenarios := WhatIfScenarios(m)
	require.Len(t, scenarios, 4)

	assert.Equal(t, "Current", scenarios[0].Name)
	assert.False(t, scenarios[0].Illustrative)
	assert.Equal(t, m.MRR, scenarios[0].MRR)
	assert.Equal(t, LTVToCAC(m), scenarios[0].LTVCACRatio)

	for _, s := range scenarios[1:] {
		assert.True(t, s.Illustrative, s.Name)
	}
	assert.InDelta(t, m.MRR*1.8, scenarios[2].MRR, 1e-9)
	assert.InDelta(t, m.CAC*0.91, scenarios[1].CAC, 1e-9)
}
