package valuing

import (
	"fmt"
	"math"
	"sort"

	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/pkg/utils"
)

// DefaultSharesOutstanding é o número de ações (em milhões) usado no preço implícito
const DefaultSharesOutstanding = 10.0

// Summarize deriva os indicadores do resumo executivo a partir do DCF e dos comparáveis
func Summarize(in domain.ValuationInputs, dcf *domain.DCFResult, comps domain.ComparablesSummary, sharesOutstanding float64) domain.ValuationSummary {
	ev := dcf.EnterpriseValue
	final := dcf.Schedule[domain.ProjectionYears]

	implied := utils.SafeDivide(ev, in.CurrentRevenue)
	median := comps.EVRevenue.Median

	irr := 0.0
	if implied > 0 {
		irr = (math.Pow(implied, 1.0/domain.ProjectionYears) - 1) * 100
	}

	summary := domain.ValuationSummary{
		ComparablesValue:   in.CurrentRevenue * median,
		MedianEVRevenue:    median,
		ImpliedEVRevenue:   implied,
		TradingAtPremium:   implied > median,
		FiveYearIRR:        irr,
		ExitMultiple:       utils.SafeDivide(dcf.TerminalValue, final.EBITDA),
		FCFConversion:      utils.SafeDivide(final.FCF, final.EBITDA) * 100,
		TerminalValueShare: utils.SafeDivide(dcf.PVTerminalValue, ev) * 100,
		ImpliedSharePrice:  utils.SafeDivide(ev, sharesOutstanding),
		SharesOutstanding:  sharesOutstanding,
		EVToEBITDA:         utils.SafeDivide(ev, in.CurrentRevenue*in.EBITDAMargin/100),
		PEGRatio:           utils.SafeDivide(implied, in.GrowthRates[0]),
	}
	summary.InvestmentHighlights = highlights(in, summary)

	return summary
}

func highlights(in domain.ValuationInputs, s domain.ValuationSummary) []string {
	out := make([]string, 0, 3)

	if in.GrowthRates[0] > 25 {
		out = append(out, "High growth trajectory supports premium valuation")
	} else {
		out = append(out, "Moderate growth may limit multiple expansion")
	}

	if in.EBITDAMargin > 30 {
		out = append(out, "Strong profitability profile")
	} else {
		out = append(out, "Margin improvement opportunity")
	}

	if s.TradingAtPremium {
		out = append(out, "Trading above peer median - growth justified")
	} else {
		out = append(out, "Attractive entry point vs peers")
	}

	return out
}

// multiplicadores ilustrativos de cada alavanca sobre o valor da firma
var driverMultipliers = []struct {
	driver     string
	multiplier float64
}{
	{"EBITDA Margin +5%", 1.2},
	{"Revenue Growth +10%", 1.15},
	{"WACC -1%", 1.1},
	{"Terminal Growth +1%", 1.08},
	{"CapEx -2%", 1.05},
}

// ValueDrivers aplica os multiplicadores ilustrativos e ordena pelo impacto, do menor para o maior.
// Não são recálculos do DCF.
func ValueDrivers(enterpriseValue float64) []domain.ValueDriver {
	drivers := make([]domain.ValueDriver, 0, len(driverMultipliers))
	for _, d := range driverMultipliers {
		drivers = append(drivers, domain.ValueDriver{
			Driver:       d.driver,
			Impact:       enterpriseValue*d.multiplier - enterpriseValue,
			Illustrative: true,
		})
	}

	sort.SliceStable(drivers, func(i, j int) bool {
		return drivers[i].Impact < drivers[j].Impact
	})

	return drivers
}

// ReportData monta os números principais do relatório executivo
func ReportData(report *domain.ValuationReport) map[string]string {
	return map[string]string{
		"Enterprise Value (DCF)": fmt.Sprintf("$%.1fM", report.DCF.EnterpriseValue),
		"Revenue Multiple":       fmt.Sprintf("%.1fx", report.Summary.ImpliedEVRevenue),
		"EBITDA Multiple":        fmt.Sprintf("%.1fx", report.Summary.EVToEBITDA),
		"5-Year IRR":             fmt.Sprintf("%.1f%%", report.Summary.FiveYearIRR),
		"Terminal Value %":       fmt.Sprintf("%.0f%%", report.Summary.TerminalValueShare),
	}
}
