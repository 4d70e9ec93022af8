package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
)

const illustrativeMark = " *"

// RenderFunnelReport renderiza o resultado completo da simulação de funil
func RenderFunnelReport(r *domain.FunnelReport) string {
	m := r.Metrics
	var b strings.Builder

	b.WriteString(RenderTitle("GROWTH FUNNEL SIMULATOR"))
	b.WriteString("\n\n")

	b.WriteString(RenderTable(Table{
		Title:   "Funnel",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Visitors", FormatCount(m.Visitors)},
			{"Leads", FormatCount(m.Leads)},
			{"Trials", FormatCount(m.Trials)},
			{"Customers", FormatCount(m.Customers)},
			{"Overall Conversion", fmt.Sprintf("%.3f%%", r.OverallConversion)},
			{"---"},
			{"Total Spend", FormatDollars(m.TotalSpend)},
			{"MRR", FormatDollars(m.MRR)},
			{"CAC", FormatDollars(m.CAC)},
			{"LTV", FormatDollars(m.LTV)},
			{"LTV:CAC", FormatMultiple(r.LTVCACRatio)},
			{"Payback", fmt.Sprintf("%.1f months", m.PaybackMonths)},
		},
	}))
	b.WriteString("\n")

	channelRows := make([][]string, 0, len(r.Channels))
	for _, c := range r.Channels {
		channelRows = append(channelRows, []string{
			c.Channel,
			FormatDollars(c.Spend),
			FormatCount(c.Visitors),
			FormatDollars(c.CostPerVisitor),
			FormatCount(c.Customers),
			FormatDollars(c.Revenue),
			FormatPercent(c.ROIPercent),
		})
	}
	b.WriteString(RenderTable(Table{
		Title:   "Channel Performance",
		Headers: []string{"Channel", "Spend", "Visitors", "Cost/Visitor", "Customers", "Revenue", "ROI"},
		Rows:    channelRows,
	}))
	b.WriteString("\n")

	mrr := make([]float64, len(r.Projection))
	for i, p := range r.Projection {
		mrr[i] = p.MRR
	}
	s := r.ProjectionSummary
	b.WriteString(RenderTable(Table{
		Title:   fmt.Sprintf("%d-Month Projection  %s", len(r.Projection), successStyle.Render(RenderSparkline(mrr))),
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Final MRR", FormatDollars(s.FinalMRR)},
			{"MRR Growth", FormatPercent(s.MRRGrowthPercent)},
			{"Final Customers", FormatCount(s.FinalCustomers)},
			{"Net New Customers", FormatCount(s.NetNewCustomers)},
			{"Annual Run Rate", FormatDollars(s.AnnualRunRate)},
		},
	}))
	b.WriteString("\n")

	for _, in := range r.Insights {
		b.WriteString(renderInsight(in))
	}
	b.WriteString("\n")

	scenarioRows := make([][]string, 0, len(r.Scenarios))
	for _, sc := range r.Scenarios {
		name := sc.Name
		if sc.Illustrative {
			name += illustrativeMark
		}
		scenarioRows = append(scenarioRows, []string{name, FormatDollars(sc.MRR), FormatDollars(sc.CAC), FormatMultiple(sc.LTVCACRatio)})
	}
	b.WriteString(RenderTable(Table{
		Title:   "What-If Scenarios",
		Headers: []string{"Scenario", "MRR", "CAC", "LTV:CAC"},
		Rows:    scenarioRows,
	}))
	b.WriteString(mutedStyle.Render("  * illustrative multipliers, not computed by the funnel model"))
	b.WriteString("\n")

	return b.String()
}

func renderInsight(in domain.Insight) string {
	var style lipgloss.Style
	switch in.Type {
	case domain.InsightCritical:
		style = criticalStyle
	case domain.InsightWarning:
		style = warnStyle
	default:
		style = successStyle
	}

	return fmt.Sprintf("  %s %s\n     %s\n     %s\n",
		style.Render("●"),
		style.Render(in.Title),
		valueStyle.Render(in.Message),
		mutedStyle.Render("→ "+in.Action),
	)
}

// RenderValuationReport renderiza DCF, comparáveis, sensibilidade e resumo
func RenderValuationReport(r *domain.ValuationReport) string {
	dcf := r.DCF
	var b strings.Builder

	b.WriteString(RenderTitle("DCF VALUATION MODEL"))
	b.WriteString("\n\n")

	scheduleRows := make([][]string, 0, len(dcf.Schedule))
	for i, y := range dcf.Schedule {
		pv := "-"
		if i > 0 {
			pv = FormatMillions(dcf.PVFreeCashFlows[i-1])
		}
		scheduleRows = append(scheduleRows, []string{
			fmt.Sprintf("Y%d (%d)", y.Year, y.FiscalYear),
			FormatMillions(y.Revenue),
			FormatMillions(y.EBITDA),
			FormatMillions(y.Taxes),
			FormatMillions(y.Capex),
			FormatMillions(y.NWCChange),
			FormatMillions(y.FCF),
			pv,
		})
	}
	b.WriteString(RenderTable(Table{
		Title:   "Free Cash Flow Schedule",
		Headers: []string{"Year", "Revenue", "EBITDA", "Taxes", "CapEx", "ΔNWC", "FCF", "PV(FCF)"},
		Rows:    scheduleRows,
	}))
	b.WriteString("\n")

	s := r.Summary
	b.WriteString(RenderTable(Table{
		Title:   "Valuation",
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Sum of PV(FCF)", FormatMillions(dcf.SumPVFreeCashFlows)},
			{"Terminal Value", FormatMillions(dcf.TerminalValue)},
			{"PV(Terminal Value)", FormatMillions(dcf.PVTerminalValue)},
			{"Enterprise Value", highlightStyle.Render(FormatMillions(dcf.EnterpriseValue))},
			{"---"},
			{"Implied Share Price", FormatDollars(s.ImpliedSharePrice)},
			{"Implied EV/Revenue", FormatMultiple(s.ImpliedEVRevenue)},
			{"EV/EBITDA", FormatMultiple(s.EVToEBITDA)},
			{"5-Year IRR", FormatPercent(s.FiveYearIRR)},
			{"Exit Multiple", FormatMultiple(s.ExitMultiple)},
			{"FCF Conversion", FormatPercent(s.FCFConversion)},
			{"Terminal Value Share", FormatPercent(s.TerminalValueShare)},
			{"PEG Ratio", fmt.Sprintf("%.2f", s.PEGRatio)},
		},
	}))
	b.WriteString("\n")

	compRows := make([][]string, 0, len(r.Comparables)+4)
	for _, c := range r.Comparables {
		compRows = append(compRows, []string{
			c.Company,
			FormatMultiple(c.EVRevenue),
			FormatMultiple(c.EVEBITDA),
			FormatMultiple(c.PERatio),
			FormatPercent(c.RevenueGrowth),
		})
	}
	cs := r.CompsSummary
	compRows = append(compRows,
		[]string{"---"},
		[]string{"Median", FormatMultiple(cs.EVRevenue.Median), FormatMultiple(cs.EVEBITDA.Median), FormatMultiple(cs.PERatio.Median), ""},
		[]string{"25th Percentile", FormatMultiple(cs.EVRevenue.P25), FormatMultiple(cs.EVEBITDA.P25), FormatMultiple(cs.PERatio.P25), ""},
		[]string{"75th Percentile", FormatMultiple(cs.EVRevenue.P75), FormatMultiple(cs.EVEBITDA.P75), FormatMultiple(cs.PERatio.P75), ""},
	)
	premium := "discount"
	if s.TradingAtPremium {
		premium = "premium"
	}
	b.WriteString(RenderTable(Table{
		Title:   fmt.Sprintf("Comparable Companies  (comps value %s, %s to peers)", FormatMillions(s.ComparablesValue), premium),
		Headers: []string{"Company", "EV/Revenue", "EV/EBITDA", "P/E", "Growth"},
		Rows:    compRows,
	}))
	b.WriteString("\n")

	b.WriteString(RenderTable(sensitivityTable(r.Sensitivity, r.Inputs)))
	b.WriteString("\n")

	driverRows := make([][]string, 0, len(r.ValueDrivers))
	for _, d := range r.ValueDrivers {
		name := d.Driver
		if d.Illustrative {
			name += illustrativeMark
		}
		driverRows = append(driverRows, []string{name, "+" + FormatMillions(d.Impact)})
	}
	b.WriteString(RenderTable(Table{
		Title:   "Value Drivers",
		Headers: []string{"Driver", "EV Impact"},
		Rows:    driverRows,
	}))
	b.WriteString(mutedStyle.Render("  * illustrative multipliers, not computed by the DCF model"))
	b.WriteString("\n\n")

	b.WriteString(RenderBullets("Investment Highlights", s.InvestmentHighlights, successStyle))

	return b.String()
}

func sensitivityTable(grid domain.SensitivityGrid, in domain.ValuationInputs) Table {
	headers := []string{"WACC \\ g"}
	for _, g := range grid.TerminalGrowths {
		headers = append(headers, FormatPercent(g))
	}

	rows := make([][]string, 0, len(grid.WACCs))
	for i, w := range grid.WACCs {
		row := []string{FormatPercent(w)}
		for j, g := range grid.TerminalGrowths {
			cell := "n/a"
			if w > g {
				cell = FormatMillions(grid.Values[i][j])
			}
			if w == in.WACC && g == in.TerminalGrowth {
				cell = highlightStyle.Render(cell)
			}
			row = append(row, cell)
		}
		rows = append(rows, row)
	}

	return Table{
		Title:   "Sensitivity: Enterprise Value",
		Headers: headers,
		Rows:    rows,
	}
}
