package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
)

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "scenario.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_EmptyPathReturnsDefaults(t *testing.T) {
	scenario, err := LoadScenario("")
	require.NoError(t, err)

	assert.Equal(t, DefaultScenario(), scenario)
}

func TestLoadScenario_PartialTables(t *testing.T) {
	path := writeScenarioFile(t, `
[funnel]
paid_search_spend = 60000.0
trial_to_paid = 0.3

[valuation]
wacc = 12.0
growth_rates = [40.0, 30.0, 20.0, 10.0, 5.0]
`)

	scenario, err := LoadScenario(path)
	require.NoError(t, err)

	expectedFunnel := domain.DefaultFunnelInputs()
	expectedFunnel.PaidSearchSpend = 60_000
	expectedFunnel.TrialToPaid = 0.3
	assert.Equal(t, expectedFunnel, scenario.Funnel)

	assert.Equal(t, 12.0, scenario.Valuation.WACC)
	assert.Equal(t, [domain.ProjectionYears]float64{40, 30, 20, 10, 5}, scenario.Valuation.GrowthRates)
	assert.Equal(t, domain.DefaultValuationInputs().CurrentRevenue, scenario.Valuation.CurrentRevenue)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{name: "chave desconhecida", content: "[funnel]\nbudget = 10.0\n", contains: "funnel.budget"},
		{name: "TOML inválido", content: "[funnel\n", contains: "parsing scenario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadScenario(writeScenarioFile(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}

	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestSaveScenario_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")

	scenario := DefaultScenario()
	scenario.Funnel.ContentSpend = 20_000
	scenario.Valuation.GrowthRates[4] = 8

	require.NoError(t, SaveScenario(path, scenario))

	loaded, err := LoadScenario(path)
	require.NoError(t, err)
	assert.Equal(t, scenario, loaded)
}

type failingWriteCloser struct {
	bytes.Buffer
	closeErr error
	closed   bool
}

func (f *failingWriteCloser) Close() error {
	f.closed = true
	return f.closeErr
}

func TestWriteScenario_CloseError(t *testing.T) {
	tests := []struct {
		name     string
		closeErr error
		wantErr  bool
	}{
		{
			name: "close sem erro",
		},
		{
			name:     "erro no close é retornado",
			closeErr: errors.New("disk full"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &failingWriteCloser{closeErr: tt.closeErr}

			err := writeScenario(w, DefaultScenario())

			assert.True(t, w.closed)
			assert.Contains(t, w.String(), "[funnel]")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.closeErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
