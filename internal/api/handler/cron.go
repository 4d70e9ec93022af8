package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/growth-valuation-api/internal/scheduler"
	"github.com/vfg2006/growth-valuation-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSelfCheck = "self-check"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	SelfCheckService *scheduler.SelfCheckService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSelfCheck:
			if services.SelfCheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Serviço de autoverificação não disponível", nil)
				return
			}
			services.SelfCheckService.TriggerManualRun()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: self-check", nil)
			return
		}

		writeJSON(w, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.SelfCheckService != nil {
			status[CronJobTypeSelfCheck] = services.SelfCheckService.GetStatus()
		}

		writeJSON(w, status)
	}
}
