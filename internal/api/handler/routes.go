package handler

import (
	"net/http"

	"github.com/vfg2006/growth-valuation-api/internal/api/handler/router"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/funneling"
	"github.com/vfg2006/growth-valuation-api/internal/usecases/valuing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Funnel(service funneling.Funneler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/funnel/controls",
			Method:  http.MethodGet,
			Handler: FunnelControls(service),
		},
		{
			Path:    "/v1/funnel/simulate",
			Method:  http.MethodPost,
			Handler: SimulateFunnel(service),
		},
	}
}

func Valuation(service valuing.Valuer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/valuation/controls",
			Method:  http.MethodGet,
			Handler: ValuationControls(service),
		},
		{
			Path:    "/v1/valuation/simulate",
			Method:  http.MethodPost,
			Handler: SimulateValuation(service),
		},
		{
			Path:    "/v1/valuation/report",
			Method:  http.MethodPost,
			Handler: GenerateValuationReport(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
