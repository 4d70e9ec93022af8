package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/growth-valuation-api/internal/domain"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/valuing"
	"github.com/vfg2006/growth-valuation-api/pkg/apiErrors"
	"github.com/vfg2006/growth-valuation-api/pkg/log"
)

// ValuationControls retorna os intervalos das premissas do valuation
func ValuationControls(service valuing.Valuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, service.Controls())
	})
}

// SimulateValuation recalcula DCF, comparáveis e sensibilidade
func SimulateValuation(service valuing.Valuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inputs, ok := decodeValuationInputs(w, r)
		if !ok {
			return
		}

		report, err := service.Simulate(r.Context(), inputs)
		if err != nil {
			writeValuationError(w, r, err, "Erro ao simular valuation")
			return
		}

		writeJSON(w, report)
	})
}

// GenerateValuationReport devolve o stub do relatório executivo
func GenerateValuationReport(service valuing.Valuer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inputs, ok := decodeValuationInputs(w, r)
		if !ok {
			return
		}

		stub, err := service.GenerateReport(r.Context(), inputs)
		if err != nil {
			writeValuationError(w, r, err, "Erro ao gerar relatório")
			return
		}

		writeJSON(w, stub)
	})
}

func decodeValuationInputs(w http.ResponseWriter, r *http.Request) (domain.ValuationInputs, bool) {
	inputs := domain.DefaultValuationInputs()
	if err := decodeBody(r, &inputs); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("valuation: invalid request body")
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
		return inputs, false
	}
	return inputs, true
}

func writeValuationError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log.ForContext(r.Context()).WithField("error", err.Error()).Error("valuation: request failed")

	// Verificar se é um ValuationError para obter o código específico
	var valuationErr *valuing.ValuationError
	if errors.As(err, &valuationErr) {
		apiErrors.WriteError(w, valuationErr.Code, valuationErr.Error(), nil)
		return
	}

	if errors.Is(err, valuing.ErrInvalidDiscountRate) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDiscountRate, err.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
