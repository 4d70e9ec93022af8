package utils

import (
	"math"
	"sort"
)

// Median retorna a mediana dos valores, 0 para uma lista vazia
func Median(values []float64) float64 {
	return Percentile(values, 50)
}

// Percentile retorna o percentil p (0-100) com interpolação linear entre
// as posições vizinhas. Não altera a lista recebida.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if p <= 0 {
		return sorted[0]
	}
	if p >= 100 {
		return sorted[len(sorted)-1]
	}

	rank := p / 100 * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	upper := int(math.Ceil(rank))
	if lower == upper {
		return sorted[lower]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}
