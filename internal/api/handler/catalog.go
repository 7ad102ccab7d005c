package handler

import (
	"errors"
	"net/http"

	"github.com/worlddata/insights-api/internal/domain"
	"github.com/worlddata/insights-api/internal/origins"
	"github.com/worlddata/insights-api/internal/usecases/cataloging"
	"github.com/worlddata/insights-api/pkg/apiErrors"
	"github.com/worlddata/insights-api/pkg/log"
)

// ListOrigins devolve as chaves de origem disponíveis com seus rótulos, na
// ordem do registro, para preencher o seletor do portal.
func ListOrigins() http.Handler {
	type origin struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		keys := origins.Keys()
		list := make([]origin, 0, len(keys))
		for _, key := range keys {
			entry, err := origins.Lookup(key)
			if err != nil {
				continue
			}
			list = append(list, origin{Key: entry.Key, Label: entry.Label})
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string][]origin{"origins": list}); err != nil {
			logger.WithError(err).Error("catalog: error encoding origins response")
		}
	})
}

// ListClients lista os clientes com totais agregados. Filtros opcionais:
// dataInicio, dataFim (AAAA-MM-DD) e search (busca parcial por nome).
func ListClients(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		filters := domain.CatalogFilters{
			DataInicio: query.Get("dataInicio"),
			DataFim:    query.Get("dataFim"),
			Search:     query.Get("search"),
		}

		if !validCatalogDates(w, filters) {
			return
		}

		clients, err := service.ListClients(r.Context(), filters)
		if err != nil {
			writeCatalogError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"clients": clients}); err != nil {
			logger.WithError(err).Error("catalog: error encoding clients response")
		}
	})
}

// ListCampaigns lista as campanhas com nome, status e totais. Filtros
// opcionais: cliente (busca parcial), dataInicio e dataFim (AAAA-MM-DD).
func ListCampaigns(service cataloging.Cataloger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		filters := domain.CatalogFilters{
			Cliente:    query.Get("cliente"),
			DataInicio: query.Get("dataInicio"),
			DataFim:    query.Get("dataFim"),
		}

		if !validCatalogDates(w, filters) {
			return
		}

		campaigns, err := service.ListCampaigns(r.Context(), filters)
		if err != nil {
			writeCatalogError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"campaigns": campaigns}); err != nil {
			logger.WithError(err).Error("catalog: error encoding campaigns response")
		}
	})
}

// validCatalogDates valida o formato das datas de filtro antes de qualquer
// consulta. Datas vazias são permitidas.
func validCatalogDates(w http.ResponseWriter, filters domain.CatalogFilters) bool {
	for _, value := range []string{filters.DataInicio, filters.DataFim} {
		if value == "" {
			continue
		}
		if err := validate.Var(value, "datetime=2006-01-02"); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato AAAA-MM-DD", nil)
			return false
		}
	}
	return true
}

func writeCatalogError(w http.ResponseWriter, logger log.Logger, err error) {
	var invalidOrigin *origins.InvalidOriginError
	if errors.As(err, &invalidOrigin) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownOrigin, invalidOrigin.Error(), nil)
		return
	}

	logger.WithError(err).Error("catalog: warehouse query failed")
	apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar o catálogo", nil)
}
