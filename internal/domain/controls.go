// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "math"

// InputRange descreve um controle da superfície de entrada (slider ou campo numérico)
type InputRange struct {
	Key     string  `json:"key"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default float64 `json:"default"`
	Unit    string  `json:"unit"`
}

// Clamp limita o valor ao intervalo [Min, Max]. NaN volta para o valor padrão.
func (r InputRange) Clamp(v float64) float64 {
	if math.IsNaN(v) {
		return r.Default
	}
	return math.Max(r.Min, math.Min(r.Max, v))
}

const (
	UnitDollars         = "usd"
	UnitMillionsDollars = "usd_millions"
	UnitFraction        = "fraction"
	UnitPercent         = "percent"
	UnitDays            = "days"
)

// Controls agrupa os intervalos válidos de uma simulação
type Controls struct {
	Simulation string       `json:"simulation"`
	Inputs     []InputRange `json:"inputs"`
}

func findRange(ranges []InputRange, key string) InputRange {
	for _, r := range ranges {
		if r.Key == key {
			return r
		}
	}
	panic("domain: unknown input range " + key)
}
