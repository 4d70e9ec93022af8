package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/funneling"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/valuing"
)

func TestRenderFunnelReport(t *testing.T) {
	report, err := funneling.NewService().Simulate(context.Background(), domain.DefaultFunnelInputs())
	require.NoError(t, err)

	out := RenderFunnelReport(report)

	assert.Contains(t, out, "GROWTH FUNNEL SIMULATOR")
	assert.Contains(t, out, "53,000")
	assert.Contains(t, out, "79.5")
	assert.Contains(t, out, "$11,925")
	assert.Contains(t, out, "Paid Search")
	assert.Contains(t, out, "High CAC Alert")
	assert.Contains(t, out, "2x Marketing Spend"+illustrativeMark)
}

func TestRenderValuationReport(t *testing.T) {
	report, err := valuing.NewService(nil).Simulate(context.Background(), domain.DefaultValuationInputs())
	require.NoError(t, err)

	out := RenderValuationReport(report)

	assert.Contains(t, out, "DCF VALUATION MODEL")
	assert.Contains(t, out, "$202.4M")
	assert.Contains(t, out, "TechCo A")
	assert.Contains(t, out, "Sensitivity: Enterprise Value")
	assert.Contains(t, out, "EBITDA Margin +5%"+illustrativeMark)
	assert.Contains(t, out, "Attractive entry point vs peers")
}

func TestRenderTable(t *testing.T) {
	assert.Empty(t, RenderTable(Table{}))

	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows:    [][]string{{"MRR", "$11,925"}, {"---"}, {"CAC", "$692"}},
	})

	assert.Contains(t, out, "│ MRR    │ $11,925 │")
	assert.Contains(t, out, "│ CAC    │    $692 │")
}
