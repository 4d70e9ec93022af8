package domain

// ProjectionYears é o horizonte explícito do DCF
const ProjectionYears = 5

// ValuationInputs são as premissas do simulador de valuation. Taxas em percentual.
type ValuationInputs struct {
	CurrentRevenue float64                  `json:"current_revenue" toml:"current_revenue"` // $M
	GrowthRates    [ProjectionYears]float64 `json:"growth_rates" toml:"growth_rates"`
	TerminalGrowth float64                  `json:"terminal_growth" toml:"terminal_growth"`
	EBITDAMargin   float64                  `json:"ebitda_margin" toml:"ebitda_margin"`
	WACC           float64                  `json:"wacc" toml:"wacc"`
	TaxRate        float64                  `json:"tax_rate" toml:"tax_rate"`
	CapexPercent   float64                  `json:"capex_percent" toml:"capex_percent"`
	NWCPercent     float64                  `json:"nwc_percent" toml:"nwc_percent"`
}

// DCFYear é uma linha do fluxo de caixa descontado. Year 0 é o ano corrente.
type DCFYear struct {
	Year       int     `json:"year"`
	FiscalYear int     `json:"fiscal_year,omitempty"`
	Revenue    float64 `json:"revenue"`
	EBITDA     float64 `json:"ebitda"`
	Taxes      float64 `json:"taxes"`
	Capex      float64 `json:"capex"`
	NWCChange  float64 `json:"nwc_change"`
	FCF        float64 `json:"fcf"`
}

// DCFResult reúne o cronograma e o valor da firma
type DCFResult struct {
	Schedule           [ProjectionYears + 1]DCFYear `json:"schedule"`
	PVFreeCashFlows    [ProjectionYears]float64     `json:"pv_fcf"`
	SumPVFreeCashFlows float64                      `json:"sum_pv_fcf"`
	TerminalValue      float64                      `json:"terminal_value"`
	PVTerminalValue    float64                      `json:"pv_terminal_value"`
	EnterpriseValue    float64                      `json:"enterprise_value"`
}

// Comparable é uma empresa sintética da análise de múltiplos
type Comparable struct {
	Company       string  `json:"company"`
	EVRevenue     float64 `json:"ev_revenue"`
	EVEBITDA      float64 `json:"ev_ebitda"`
	PERatio       float64 `json:"pe_ratio"`
	RevenueGrowth float64 `json:"revenue_growth"`
}

// MultipleStats são estatísticas de um múltiplo entre os comparáveis
type MultipleStats struct {
	Median float64 `json:"median"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
}

// ComparablesSummary resume a tabela de comparáveis
type ComparablesSummary struct {
	EVRevenue MultipleStats `json:"ev_revenue"`
	EVEBITDA  MultipleStats `json:"ev_ebitda"`
	PERatio   MultipleStats `json:"pe_ratio"`
}

// SensitivityGrid é a matriz WACC x crescimento na perpetuidade.
// Values[i][j] usa WACCs[i] e TerminalGrowths[j]; células inválidas valem 0.
type SensitivityGrid struct {
	WACCs           [5]float64    `json:"wacc"`
	TerminalGrowths [5]float64    `json:"terminal_growth"`
	Values          [5][5]float64 `json:"values"`
}

// ValueDriver é uma linha ilustrativa do gráfico de sensibilidade por alavanca
type ValueDriver struct {
	Driver       string  `json:"driver"`
	Impact       float64 `json:"impact"`
	Illustrative bool    `json:"illustrative"`
}

// ValuationSummary são os indicadores derivados do DCF e dos comparáveis
type ValuationSummary struct {
	ComparablesValue     float64  `json:"comparables_value"`
	MedianEVRevenue      float64  `json:"median_ev_revenue"`
	ImpliedEVRevenue     float64  `json:"implied_ev_revenue"`
	TradingAtPremium     bool     `json:"trading_at_premium"`
	FiveYearIRR          float64  `json:"five_year_irr_percent"`
	ExitMultiple         float64  `json:"exit_multiple"`
	FCFConversion        float64  `json:"fcf_conversion_percent"`
	TerminalValueShare   float64  `json:"terminal_value_share_percent"`
	ImpliedSharePrice    float64  `json:"implied_share_price"`
	SharesOutstanding    float64  `json:"shares_outstanding_millions"`
	EVToEBITDA           float64  `json:"ev_ebitda"`
	PEGRatio             float64  `json:"peg_ratio"`
	InvestmentHighlights []string `json:"investment_highlights"`
}

// ValuationReport é a resposta completa de uma simulação de valuation
type ValuationReport struct {
	Inputs       ValuationInputs    `json:"inputs"`
	DCF          DCFResult          `json:"dcf"`
	Comparables  []Comparable       `json:"comparables"`
	CompsSummary ComparablesSummary `json:"comparables_summary"`
	Sensitivity  SensitivityGrid    `json:"sensitivity"`
	ValueDrivers []ValueDriver      `json:"value_drivers"`
	Summary      ValuationSummary   `json:"summary"`
}

// ReportStub é a resposta do botão de relatório: nenhum arquivo é gerado
type ReportStub struct {
	ID      string            `json:"id"`
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Data    map[string]string `json:"data"`
}

var valuationRanges = []InputRange{
	{Key: "current_revenue", Label: "Current Revenue", Min: 10, Max: 1000, Step: 5, Default: 50, Unit: UnitMillionsDollars},
	{Key: "growth_rate_y1", Label: "Year 1 Growth", Min: -50, Max: 100, Step: 1, Default: 30, Unit: UnitPercent},
	{Key: "growth_rate_y2", Label: "Year 2 Growth", Min: -50, Max: 100, Step: 1, Default: 25, Unit: UnitPercent},
	{Key: "growth_rate_y3", Label: "Year 3 Growth", Min: -50, Max: 100, Step: 1, Default: 20, Unit: UnitPercent},
	{Key: "growth_rate_y4", Label: "Year 4 Growth", Min: -50, Max: 100, Step: 1, Default: 15, Unit: UnitPercent},
	{Key: "growth_rate_y5", Label: "Year 5 Growth", Min: -50, Max: 100, Step: 1, Default: 10, Unit: UnitPercent},
	{Key: "terminal_growth", Label: "Terminal Growth", Min: 0, Max: 10, Step: 1, Default: 3, Unit: UnitPercent},
	{Key: "ebitda_margin", Label: "EBITDA Margin", Min: 5, Max: 50, Step: 1, Default: 25, Unit: UnitPercent},
	{Key: "wacc", Label: "WACC", Min: 5, Max: 20, Step: 1, Default: 10, Unit: UnitPercent},
	{Key: "tax_rate", Label: "Tax Rate", Min: 15, Max: 35, Step: 1, Default: 21, Unit: UnitPercent},
	{Key: "capex_percent", Label: "CapEx % of Revenue", Min: 2, Max: 15, Step: 1, Default: 5, Unit: UnitPercent},
	{Key: "nwc_percent", Label: "NWC % of Revenue", Min: 5, Max: 25, Step: 1, Default: 10, Unit: UnitPercent},
}

var growthKeys = [ProjectionYears]string{"growth_rate_y1", "growth_rate_y2", "growth_rate_y3", "growth_rate_y4", "growth_rate_y5"}

// ValuationControls retorna os intervalos válidos de cada premissa do valuation
func ValuationControls() Controls {
	inputs := make([]InputRange, len(valuationRanges))
	copy(inputs, valuationRanges)
	return Controls{Simulation: "valuation", Inputs: inputs}
}

// DefaultValuationInputs retorna as premissas padrão dos controles
func DefaultValuationInputs() ValuationInputs {
	d := func(key string) float64 { return findRange(valuationRanges, key).Default }

	var growth [ProjectionYears]float64
	for i, key := range growthKeys {
		growth[i] = d(key)
	}

	return ValuationInputs{
		CurrentRevenue: d("current_revenue"),
		GrowthRates:    growth,
		TerminalGrowth: d("terminal_growth"),
		EBITDAMargin:   d("ebitda_margin"),
		WACC:           d("wacc"),
		TaxRate:        d("tax_rate"),
		CapexPercent:   d("capex_percent"),
		NWCPercent:     d("nwc_percent"),
	}
}

// Clamp retorna uma cópia com todas as premissas limitadas aos seus intervalos
func (in ValuationInputs) Clamp() ValuationInputs {
	c := func(key string, v float64) float64 { return findRange(valuationRanges, key).Clamp(v) }

	var growth [ProjectionYears]float64
	for i, key := range growthKeys {
		growth[i] = c(key, in.GrowthRates[i])
	}

	return ValuationInputs{
		CurrentRevenue: c("current_revenue", in.CurrentRevenue),
		GrowthRates:    growth,
		TerminalGrowth: c("terminal_growth", in.TerminalGrowth),
		EBITDAMargin:   c("ebitda_margin", in.EBITDAMargin),
		WACC:           c("wacc", in.WACC),
		TaxRate:        c("tax_rate", in.TaxRate),
		CapexPercent:   c("capex_percent", in.CapexPercent),
		NWCPercent:     c("nwc_percent", in.NWCPercent),
	}
}

// Field retorna o ponteiro para a premissa identificada pela chave do controle
func (in *ValuationInputs) Field(key string) (*float64, bool) {
	for i, growthKey := range growthKeys {
		if key == growthKey {
			return &in.GrowthRates[i], true
		}
	}

	switch key {
	case "current_revenue":
		return &in.CurrentRevenue, true
	case "terminal_growth":
		return &in.TerminalGrowth, true
	case "ebitda_margin":
		return &in.EBITDAMargin, true
	case "wacc":
		return &in.WACC, true
	case "tax_rate":
		return &in.TaxRate, true
	case "capex_percent":
		return &in.CapexPercent, true
	case "nwc_percent":
		return &in.NWCPercent, true
	}
	return nil, false
}
