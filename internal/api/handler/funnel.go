package handler

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/funneling"
	"github.com/vfg2006/growth-valuation-api/pkg/apiErrors"
	"github.com/vfg2006/growth-valuation-api/pkg/log"
)

// FunnelControls retorna os intervalos das entradas do simulador de funil
func FunnelControls(service funneling.Funneler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.Controls())
	})
}

// SimulateFunnel recalcula o funil a partir das entradas enviadas. Campos omitidos
// assumem o valor padrão do controle correspondente.
func SimulateFunnel(service funneling.Funneler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		inputs := domain.DefaultFunnelInputs()
		if err := decodeBody(r, &inputs); err != nil {
			logger.WithError(err).Warn("funnel: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		report, err := service.Simulate(r.Context(), inputs)
		if err != nil {
			logger.WithField("error", err.Error()).Error("funnel: simulation failed")
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				apiErrors.WriteError(w, apiErrors.ErrSimulationAborted, "Simulação cancelada", nil)
				return
			}
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao simular funil", nil)
			return
		}

		writeJSON(w, report)
	})
}
