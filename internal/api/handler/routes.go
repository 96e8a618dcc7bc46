package handler

import (
	"net/http"

	"github.com/vfg2006/admanager-revenue-api/internal/api/handler/router"
	"github.com/vfg2006/admanager-revenue-api/internal/usecases/probing"
	"github.com/vfg2006/admanager-revenue-api/internal/usecases/revenue"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Connection(service probing.Prober) []router.Route {
	return []router.Route{
		{
			Path:    "/test-connection",
			Method:  http.MethodPost,
			Handler: TestConnection(service),
		},
	}
}

func Revenue(service revenue.Aggregator) []router.Route {
	return []router.Route{
		{
			Path:    "/admanager-revenue",
			Method:  http.MethodPost,
			Handler: CampaignRevenue(service),
		},
	}
}
