package valuing

import (
	"math"
	"math/rand/v2"

	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/pkg/utils"
)

// DefaultComparablesSeed é a semente usada quando nenhuma é configurada
const DefaultComparablesSeed uint64 = 42

// Pisos dos múltiplos sintéticos
const (
	MinEVRevenue = 1.0
	MinEVEBITDA  = 5.0
	MinPERatio   = 10.0
)

var comparableCompanies = []string{
	"TechCo A", "TechCo B", "TechCo C", "SaaS D", "SaaS E",
	"Platform F", "Platform G", "Enterprise H",
}

// RandomSource é a fonte pseudoaleatória injetada na geração dos comparáveis.
// *rand.Rand satisfaz a interface.
type RandomSource interface {
	NormFloat64() float64
	Float64() float64
}

// NewRandomSource cria uma fonte determinística a partir da semente
func NewRandomSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// GenerateComparables sorteia os múltiplos das 8 empresas comparáveis.
// Ordem dos sorteios: EV/Receita, ruído do EV/EBITDA, ruído do P/L, crescimento.
// Os pisos são aplicados depois do sorteio; o P/L usa o EV/EBITDA antes do piso.
func GenerateComparables(src RandomSource) []domain.Comparable {
	n := len(comparableCompanies)

	evRevenue := make([]float64, n)
	for i := range evRevenue {
		evRevenue[i] = normal(src, 5, 1.5)
	}

	evEBITDA := make([]float64, n)
	for i := range evEBITDA {
		evEBITDA[i] = evRevenue[i]*4 + normal(src, 0, 2)
	}

	peRatio := make([]float64, n)
	for i := range peRatio {
		peRatio[i] = evEBITDA[i]*1.5 + normal(src, 0, 3)
	}

	comps := make([]domain.Comparable, n)
	for i, company := range comparableCompanies {
		comps[i] = domain.Comparable{
			Company:       company,
			EVRevenue:     math.Max(MinEVRevenue, evRevenue[i]),
			EVEBITDA:      math.Max(MinEVEBITDA, evEBITDA[i]),
			PERatio:       math.Max(MinPERatio, peRatio[i]),
			RevenueGrowth: uniform(src, 15, 45),
		}
	}

	return comps
}

// SummarizeComparables calcula mediana e quartis de cada múltiplo
func SummarizeComparables(comps []domain.Comparable) domain.ComparablesSummary {
	evRevenue := make([]float64, 0, len(comps))
	evEBITDA := make([]float64, 0, len(comps))
	peRatio := make([]float64, 0, len(comps))

	for _, c := range comps {
		evRevenue = append(evRevenue, c.EVRevenue)
		evEBITDA = append(evEBITDA, c.EVEBITDA)
		peRatio = append(peRatio, c.PERatio)
	}

	return domain.ComparablesSummary{
		EVRevenue: multipleStats(evRevenue),
		EVEBITDA:  multipleStats(evEBITDA),
		PERatio:   multipleStats(peRatio),
	}
}

func multipleStats(values []float64) domain.MultipleStats {
	return domain.MultipleStats{
		Median: utils.Median(values),
		P25:    utils.Percentile(values, 25),
		P75:    utils.Percentile(values, 75),
	}
}

func normal(src RandomSource, mean, stddev float64) float64 {
	return mean + stddev*src.NormFloat64()
}

func uniform(src RandomSource, low, high float64) float64 {
	return low + (high-low)*src.Float64()
}
