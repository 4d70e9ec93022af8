package domain

// Canais de marketing, na ordem em que aparecem no funil
const (
	ChannelPaidSearch = "Paid Search"
	ChannelContent    = "Content Marketing"
	ChannelSocial     = "Social Media"
	ChannelEvents     = "Events"
)

// FunnelInputs são as alavancas de crescimento do simulador de funil
type FunnelInputs struct {
	PaidSearchSpend      float64 `json:"paid_search_spend" toml:"paid_search_spend"`
	ContentSpend         float64 `json:"content_spend" toml:"content_spend"`
	SocialSpend          float64 `json:"social_spend" toml:"social_spend"`
	EventsSpend          float64 `json:"events_spend" toml:"events_spend"`
	VisitorToLead        float64 `json:"visitor_to_lead" toml:"visitor_to_lead"`
	LeadToTrial          float64 `json:"lead_to_trial" toml:"lead_to_trial"`
	TrialToPaid          float64 `json:"trial_to_paid" toml:"trial_to_paid"`
	MonthlyRetention     float64 `json:"monthly_retention" toml:"monthly_retention"`
	AverageContractValue float64 `json:"average_contract_value" toml:"average_contract_value"`
	SalesCycleDays       float64 `json:"sales_cycle_days" toml:"sales_cycle_days"` // Apenas exibição
}

// TotalSpend soma o investimento de todos os canais
func (in FunnelInputs) TotalSpend() float64 {
	return in.PaidSearchSpend + in.ContentSpend + in.SocialSpend + in.EventsSpend
}

// ChannelVisitors é o número de visitantes gerado por um canal
type ChannelVisitors struct {
	Channel  string  `json:"channel"`
	Spend    float64 `json:"spend"`
	Visitors float64 `json:"visitors"`
}

// FunnelMetrics é o resultado do cálculo do funil.
// Invariante: Customers <= Trials <= Leads <= Visitors.
type FunnelMetrics struct {
	Visitors      float64           `json:"visitors"`
	Leads         float64           `json:"leads"`
	Trials        float64           `json:"trials"`
	Customers     float64           `json:"customers"`
	TotalSpend    float64           `json:"total_spend"`
	MRR           float64           `json:"mrr"`
	CAC           float64           `json:"cac"`
	LTV           float64           `json:"ltv"`
	PaybackMonths float64           `json:"payback_months"`
	Channels      []ChannelVisitors `json:"channels"`
}

// ProjectionPoint é um mês da projeção de crescimento
type ProjectionPoint struct {
	Month     int     `json:"month"`
	Customers float64 `json:"customers"`
	MRR       float64 `json:"mrr"`
}

// ProjectionSummary resume o último mês da projeção
type ProjectionSummary struct {
	FinalMRR         float64 `json:"final_mrr"`
	MRRGrowthPercent float64 `json:"mrr_growth_percent"`
	FinalCustomers   float64 `json:"final_customers"`
	NetNewCustomers  float64 `json:"net_new_customers"`
	AnnualRunRate    float64 `json:"arr"`
}

// ChannelPerformance é a linha da tabela de desempenho por canal
type ChannelPerformance struct {
	Channel        string  `json:"channel"`
	Spend          float64 `json:"spend"`
	Visitors       float64 `json:"visitors"`
	CostPerVisitor float64 `json:"cost_per_visitor"`
	Customers      float64 `json:"customers"`
	Revenue        float64 `json:"revenue"`
	ROIPercent     float64 `json:"roi_percent"`
}

// Severidade das recomendações
const (
	InsightSuccess  = "success"
	InsightWarning  = "warning"
	InsightCritical = "critical"
)

// Insight é uma recomendação de otimização derivada das métricas
type Insight struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

// WhatIfScenario é um cenário ilustrativo. Os multiplicadores são constantes
// de apresentação e não saem do motor de cálculo.
type WhatIfScenario struct {
	Name         string  `json:"name"`
	MRR          float64 `json:"mrr"`
	CAC          float64 `json:"cac"`
	LTVCACRatio  float64 `json:"ltv_cac_ratio"`
	Illustrative bool    `json:"illustrative"`
}

// FunnelReport é a resposta completa de uma simulação de funil
type FunnelReport struct {
	Inputs            FunnelInputs         `json:"inputs"`
	Metrics           FunnelMetrics        `json:"metrics"`
	LTVCACRatio       float64              `json:"ltv_cac_ratio"`
	OverallConversion float64              `json:"overall_conversion_percent"`
	Projection        []ProjectionPoint    `json:"projection"`
	ProjectionSummary ProjectionSummary    `json:"projection_summary"`
	Channels          []ChannelPerformance `json:"channel_performance"`
	Insights          []Insight            `json:"insights"`
	Scenarios         []WhatIfScenario     `json:"scenarios"`
}

var funnelRanges = []InputRange{
	{Key: "paid_search_spend", Label: "Paid Search", Min: 0, Max: 100_000, Step: 5_000, Default: 25_000, Unit: UnitDollars},
	{Key: "content_spend", Label: "Content Marketing", Min: 0, Max: 50_000, Step: 5_000, Default: 15_000, Unit: UnitDollars},
	{Key: "social_spend", Label: "Social Media", Min: 0, Max: 50_000, Step: 5_000, Default: 10_000, Unit: UnitDollars},
	{Key: "events_spend", Label: "Events/Webinars", Min: 0, Max: 30_000, Step: 5_000, Default: 5_000, Unit: UnitDollars},
	{Key: "visitor_to_lead", Label: "Visitor → Lead", Min: 0.01, Max: 0.10, Step: 0.01, Default: 0.03, Unit: UnitFraction},
	{Key: "lead_to_trial", Label: "Lead → Trial", Min: 0.10, Max: 0.40, Step: 0.01, Default: 0.20, Unit: UnitFraction},
	{Key: "trial_to_paid", Label: "Trial → Paid", Min: 0.10, Max: 0.50, Step: 0.01, Default: 0.25, Unit: UnitFraction},
	{Key: "monthly_retention", Label: "Monthly Retention", Min: 0.85, Max: 0.98, Step: 0.01, Default: 0.95, Unit: UnitFraction},
	{Key: "average_contract_value", Label: "ACV per Customer", Min: 50, Max: 500, Step: 1, Default: 150, Unit: UnitDollars},
	{Key: "sales_cycle_days", Label: "Sales Cycle", Min: 7, Max: 60, Step: 1, Default: 21, Unit: UnitDays},
}

// FunnelControls retorna os intervalos válidos de cada entrada do funil
func FunnelControls() Controls {
	inputs := make([]InputRange, len(funnelRanges))
	copy(inputs, funnelRanges)
	return Controls{Simulation: "funnel", Inputs: inputs}
}

// DefaultFunnelInputs retorna as entradas com os valores padrão dos controles
func DefaultFunnelInputs() FunnelInputs {
	d := func(key string) float64 { return findRange(funnelRanges, key).Default }
	return FunnelInputs{
		PaidSearchSpend:      d("paid_search_spend"),
		ContentSpend:         d("content_spend"),
		SocialSpend:          d("social_spend"),
		EventsSpend:          d("events_spend"),
		VisitorToLead:        d("visitor_to_lead"),
		LeadToTrial:          d("lead_to_trial"),
		TrialToPaid:          d("trial_to_paid"),
		MonthlyRetention:     d("monthly_retention"),
		AverageContractValue: d("average_contract_value"),
		SalesCycleDays:       d("sales_cycle_days"),
	}
}

// Clamp retorna uma cópia com todas as entradas limitadas aos seus intervalos
func (in FunnelInputs) Clamp() FunnelInputs {
	c := func(key string, v float64) float64 { return findRange(funnelRanges, key).Clamp(v) }
	return FunnelInputs{
		PaidSearchSpend:      c("paid_search_spend", in.PaidSearchSpend),
		ContentSpend:         c("content_spend", in.ContentSpend),
		SocialSpend:          c("social_spend", in.SocialSpend),
		EventsSpend:          c("events_spend", in.EventsSpend),
		VisitorToLead:        c("visitor_to_lead", in.VisitorToLead),
		LeadToTrial:          c("lead_to_trial", in.LeadToTrial),
		TrialToPaid:          c("trial_to_paid", in.TrialToPaid),
		MonthlyRetention:     c("monthly_retention", in.MonthlyRetention),
		AverageContractValue: c("average_contract_value", in.AverageContractValue),
		SalesCycleDays:       c("sales_cycle_days", in.SalesCycleDays),
	}
}

// Field retorna o ponteiro para a entrada identificada pela chave do controle
func (in *FunnelInputs) Field(key string) (*float64, bool) {
	switch key {
	case "paid_search_spend":
		return &in.PaidSearchSpend, true
	case "content_spend":
		return &in.ContentSpend, true
	case "social_spend":
		return &in.SocialSpend, true
	case "events_spend":
		return &in.EventsSpend, true
	case "visitor_to_lead":
		return &in.VisitorToLead, true
	case "lead_to_trial":
		return &in.LeadToTrial, true
	case "trial_to_paid":
		return &in.TrialToPaid, true
	case "monthly_retention":
		return &in.MonthlyRetention, true
	case "average_contract_value":
		return &in.AverageContractValue, true
	case "sales_cycle_days":
		return &in.SalesCycleDays, true
	}
	return nil, false
}
