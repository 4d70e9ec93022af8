package funneling

import (
	"fmt"

	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/pkg/utils"
)

// Custo por visitante de cada canal (CPC/CPM simulados)
const (
	PaidSearchCostPerVisitor = 2.0
	ContentCostPerVisitor    = 0.5
	SocialCostPerVisitor     = 1.0
	EventsCostPerVisitor     = 10.0
)

// FlatLifetimeMonths é a vida do cliente usada quando a retenção é >= 100%
const FlatLifetimeMonths = 24

// ProjectionMonths é o horizonte padrão da projeção de crescimento
const ProjectionMonths = 12

// ComputeFunnel calcula o funil completo a partir do investimento e das taxas de conversão.
// Função total: entradas fora do intervalo devem ser limitadas antes da chamada.
func ComputeFunnel(in domain.FunnelInputs) domain.FunnelMetrics {
	channels := []domain.ChannelVisitors{
		{Channel: domain.ChannelPaidSearch, Spend: in.PaidSearchSpend, Visitors: in.PaidSearchSpend / PaidSearchCostPerVisitor},
		{Channel: domain.ChannelContent, Spend: in.ContentSpend, Visitors: in.ContentSpend / ContentCostPerVisitor},
		{Channel: domain.ChannelSocial, Spend: in.SocialSpend, Visitors: in.SocialSpend / SocialCostPerVisitor},
		{Channel: domain.ChannelEvents, Spend: in.EventsSpend, Visitors: in.EventsSpend / EventsCostPerVisitor},
	}

	visitors := 0.0
	for _, c := range channels {
		visitors += c.Visitors
	}

	leads := visitors * in.VisitorToLead
	trials := leads * in.LeadToTrial
	customers := trials * in.TrialToPaid

	totalSpend := in.TotalSpend()

	cac := 0.0
	if customers > 0 {
		cac = totalSpend / customers
	}

	ltv := in.AverageContractValue * FlatLifetimeMonths
	if in.MonthlyRetention < 1 {
		ltv = in.AverageContractValue / (1 - in.MonthlyRetention)
	}

	return domain.FunnelMetrics{
		Visitors:      visitors,
		Leads:         leads,
		Trials:        trials,
		Customers:     customers,
		TotalSpend:    totalSpend,
		MRR:           customers * in.AverageContractValue,
		CAC:           cac,
		LTV:           ltv,
		PaybackMonths: utils.SafeDivide(cac, in.AverageContractValue),
		Channels:      channels,
	}
}

// ProjectGrowth projeta clientes e MRR mês a mês. A aquisição mensal é sempre
// a do mês inicial e a base existente decai pela retenção.
func ProjectGrowth(m domain.FunnelMetrics, in domain.FunnelInputs, months int) []domain.ProjectionPoint {
	if months <= 0 {
		return []domain.ProjectionPoint{}
	}

	points := make([]domain.ProjectionPoint, months)
	customers := m.Customers
	for i := range points {
		if i > 0 {
			customers = customers*in.MonthlyRetention + m.Customers
		}
		points[i] = domain.ProjectionPoint{
			Month:     i + 1,
			Customers: customers,
			MRR:       customers * in.AverageContractValue,
		}
	}

	return points
}

// SummarizeProjection resume o último mês da projeção
func SummarizeProjection(points []domain.ProjectionPoint) domain.ProjectionSummary {
	if len(points) == 0 {
		return domain.ProjectionSummary{}
	}

	first, last := points[0], points[len(points)-1]

	growth := 0.0
	if first.MRR > 0 {
		growth = (last.MRR/first.MRR - 1) * 100
	}

	return domain.ProjectionSummary{
		FinalMRR:         last.MRR,
		MRRGrowthPercent: growth,
		FinalCustomers:   last.Customers,
		NetNewCustomers:  last.Customers - first.Customers,
		AnnualRunRate:    last.MRR * 12,
	}
}

// LTVToCAC retorna a razão LTV:CAC, 0 quando não há CAC
func LTVToCAC(m domain.FunnelMetrics) float64 {
	return utils.SafeDivide(m.LTV, m.CAC)
}

// OverallConversion retorna a conversão visitante -> cliente em percentual
func OverallConversion(m domain.FunnelMetrics) float64 {
	return utils.SafeDivide(m.Customers, m.Visitors) * 100
}

// ChannelPerformance atribui clientes e receita a cada canal pela conversão geral do funil
func ChannelPerformance(m domain.FunnelMetrics, in domain.FunnelInputs) []domain.ChannelPerformance {
	conversion := utils.SafeDivide(m.Customers, m.Visitors)

	rows := make([]domain.ChannelPerformance, 0, len(m.Channels))
	for _, c := range m.Channels {
		customers := c.Visitors * conversion
		revenue := customers * in.AverageContractValue
		rows = append(rows, domain.ChannelPerformance{
			Channel:        c.Channel,
			Spend:          c.Spend,
			Visitors:       c.Visitors,
			CostPerVisitor: utils.SafeDivide(c.Spend, c.Visitors),
			Customers:      customers,
			Revenue:        revenue,
			ROIPercent:     utils.SafeDivide(revenue-c.Spend, c.Spend) * 100,
		})
	}

	return rows
}

// Insights gera as recomendações de otimização a partir das métricas atuais
func Insights(m domain.FunnelMetrics, in domain.FunnelInputs) []domain.Insight {
	insights := make([]domain.Insight, 0, 3)

	if m.CAC > in.AverageContractValue*3 {
		insights = append(insights, domain.Insight{
			Type:  domain.InsightWarning,
			Title: "High CAC Alert",
			Message: fmt.Sprintf("CAC ($%.0f) is %.1fx ACV. Consider improving conversion rates or focusing on lower-cost channels.",
				m.CAC, utils.SafeDivide(m.CAC, in.AverageContractValue)),
			Action: "Increase trial→paid conversion by 5% to reduce CAC by 20%",
		})
	} else {
		insights = append(insights, domain.Insight{
			Type:    domain.InsightSuccess,
			Title:   "Efficient CAC",
			Message: fmt.Sprintf("CAC is well-controlled at $%.0f. Room to scale spend.", m.CAC),
			Action:  "Consider increasing marketing spend by 50% to accelerate growth",
		})
	}

	if in.VisitorToLead < 0.05 {
		insights = append(insights, domain.Insight{
			Type:    domain.InsightWarning,
			Title:   "Low Top-of-Funnel Conversion",
			Message: fmt.Sprintf("Only %.1f%% of visitors convert to leads.", in.VisitorToLead*100),
			Action:  "A/B test landing pages, improve CTAs, or refine targeting",
		})
	}

	if in.MonthlyRetention < 0.90 {
		insights = append(insights, domain.Insight{
			Type:    domain.InsightCritical,
			Title:   "Retention Needs Attention",
			Message: fmt.Sprintf("Monthly retention at %.0f%% limits LTV.", in.MonthlyRetention*100),
			Action:  "Focus on customer success, product improvements, and engagement",
		})
	}

	return insights
}

// multiplicadores ilustrativos dos cenários: MRR, CAC, LTV:CAC
var whatIfMultipliers = []struct {
	name              string
	mrr, cac, ltvRate float64
}{
	{"Current", 1, 1, 1},
	{"10% Better Conversion", 1.1, 0.91, 1.1},
	{"2x Marketing Spend", 1.8, 1.1, 0.95},
	{"Premium Pricing (+50%)", 1.35, 1, 1.35},
}

// WhatIfScenarios aplica os multiplicadores ilustrativos sobre as métricas atuais.
// O cenário "Current" reflete o motor; os demais são constantes de apresentação.
func WhatIfScenarios(m domain.FunnelMetrics) []domain.WhatIfScenario {
	ratio := LTVToCAC(m)

	scenarios := make([]domain.WhatIfScenario, 0, len(whatIfMultipliers))
	for i, s := range whatIfMultipliers {
		scenarios = append(scenarios, domain.WhatIfScenario{
			Name:         s.name,
			MRR:          m.MRR * s.mrr,
			CAC:          m.CAC * s.cac,
			LTVCACRatio:  ratio * s.ltvRate,
			Illustrative: i > 0,
		})
	}

	return scenarios
}
