package valuing

import (
	"fmt"
	"math"

	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/pkg/apiErrors"
)

// sensitivityOffsets são os deslocamentos, em pontos percentuais, da matriz de sensibilidade
var sensitivityOffsets = [5]float64{-2, -1, 0, 1, 2}

// BuildSchedule projeta receita, EBITDA, impostos, capex, variação de capital de giro
// e fluxo de caixa livre do ano corrente (0) até o ano 5
func BuildSchedule(in domain.ValuationInputs) [domain.ProjectionYears + 1]domain.DCFYear {
	var schedule [domain.ProjectionYears + 1]domain.DCFYear

	margin := in.EBITDAMargin / 100
	tax := in.TaxRate / 100
	capexPct := in.CapexPercent / 100
	nwcPct := in.NWCPercent / 100

	revenue := in.CurrentRevenue
	for i := range schedule {
		nwcChange := 0.0
		if i > 0 {
			previous := revenue
			revenue = previous * (1 + in.GrowthRates[i-1]/100)
			nwcChange = revenue*nwcPct - previous*nwcPct
		}

		ebitda := revenue * margin
		taxes := ebitda * tax
		capex := revenue * capexPct

		schedule[i] = domain.DCFYear{
			Year:      i,
			Revenue:   revenue,
			EBITDA:    ebitda,
			Taxes:     taxes,
			Capex:     capex,
			NWCChange: nwcChange,
			FCF:       ebitda - taxes - capex - nwcChange,
		}
	}

	return schedule
}

// TerminalValue calcula o valor na perpetuidade pelo modelo de Gordon a partir do FCF do último ano.
// Retorna ErrInvalidDiscountRate quando WACC <= crescimento.
func TerminalValue(finalFCF, wacc, terminalGrowth float64) (float64, error) {
	if wacc <= terminalGrowth {
		return 0, NewValuationError(ErrInvalidDiscountRate, apiErrors.ErrInvalidDiscountRate,
			fmt.Sprintf("wacc %.2f%% <= terminal growth %.2f%%", wacc, terminalGrowth))
	}

	return finalFCF * (1 + terminalGrowth/100) / (wacc/100 - terminalGrowth/100), nil
}

// ComputeDCF calcula o valor da firma: soma dos FCF dos anos 1-5 e do valor terminal,
// todos descontados pelo WACC
func ComputeDCF(in domain.ValuationInputs) (*domain.DCFResult, error) {
	schedule := BuildSchedule(in)

	tv, err := TerminalValue(schedule[domain.ProjectionYears].FCF, in.WACC, in.TerminalGrowth)
	if err != nil {
		return nil, err
	}

	result := &domain.DCFResult{
		Schedule:      schedule,
		TerminalValue: tv,
	}

	discount := 1.0
	for i := 1; i <= domain.ProjectionYears; i++ {
		discount = math.Pow(1+in.WACC/100, -float64(i))
		pv := schedule[i].FCF * discount
		result.PVFreeCashFlows[i-1] = pv
		result.SumPVFreeCashFlows += pv
	}

	result.PVTerminalValue = tv * discount
	result.EnterpriseValue = result.SumPVFreeCashFlows + result.PVTerminalValue

	return result, nil
}

// Sensitivity recalcula o valor da firma numa matriz 5x5 de WACC e crescimento na perpetuidade,
// variando +-2 pontos em passos de 1 ponto. Células com WACC <= crescimento valem 0.
func Sensitivity(in domain.ValuationInputs) domain.SensitivityGrid {
	var grid domain.SensitivityGrid

	for i, offset := range sensitivityOffsets {
		grid.WACCs[i] = in.WACC + offset
		grid.TerminalGrowths[i] = in.TerminalGrowth + offset
	}

	for i, wacc := range grid.WACCs {
		for j, growth := range grid.TerminalGrowths {
			if wacc <= growth {
				continue
			}

			cell := in
			cell.WACC = wacc
			cell.TerminalGrowth = growth

			result, err := ComputeDCF(cell)
			if err != nil {
				continue
			}
			grid.Values[i][j] = result.EnterpriseValue
		}
	}

	return grid
}
