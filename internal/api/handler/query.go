package handler

import (
	"net/http"
	"strings"

	"github.com/worlddata/insights-api/internal/usecases/insighting"
	"github.com/worlddata/insights-api/pkg/apiErrors"
	"github.com/worlddata/insights-api/pkg/log"
)

type rawQueryRequest struct {
	SQL string `json:"sql"`
}

// RunRawQuery executa SQL arbitrário no warehouse e devolve as linhas cruas.
// Rota restrita a administradores; é a válvula de escape para análises fora
// do registro de origens.
func RunRawQuery(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req := &rawQueryRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if strings.TrimSpace(req.SQL) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo sql é obrigatório", nil)
			return
		}

		logger.Info("query: executing raw query")

		rows, err := service.RunRawQuery(r.Context(), req.SQL)
		if err != nil {
			logger.WithError(err).Error("query: raw query failed")
			apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao executar a consulta", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"data": rows}); err != nil {
			logger.WithError(err).Error("query: error encoding response")
		}
	})
}
