package handler

import (
	"net/http"

	"github.com/worlddata/insights-api/internal/api/handler/router"
	"github.com/worlddata/insights-api/internal/usecases/cataloging"
	"github.com/worlddata/insights-api/internal/usecases/insighting"
	"github.com/worlddata/insights-api/pkg/middleware"
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

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/auto",
			Method:      http.MethodPost,
			Handler:     GenerateInsight(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Catalog(service cataloging.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/origins",
			Method:      http.MethodGet,
			Handler:     ListOrigins(),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clients",
			Method:      http.MethodGet,
			Handler:     ListClients(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Query(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/query",
			Method:      http.MethodPost,
			Handler:     RunRawQuery(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
