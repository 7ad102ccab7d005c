package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/worlddata/insights-api/internal/domain"
	"github.com/worlddata/insights-api/internal/origins"
	"github.com/worlddata/insights-api/internal/usecases/insighting"
	"github.com/worlddata/insights-api/pkg/apiErrors"
	"github.com/worlddata/insights-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var validate = validator.New()

// insightListResponse embrulha o modo multi-cliente; com um único cliente a
// resposta é o próprio resultado, sem envelope.
type insightListResponse struct {
	Results []*domain.InsightResult `json:"results"`
}

func GenerateInsight(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req := &domain.InsightRequest{}
		if err := json.NewDecoder(r.Body).Decode(req); err != nil {
			logger.WithError(err).Warn("insights: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if err := validate.Struct(req); err != nil {
			logger.WithError(err).Warn("insights: request validation failed")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Campos obrigatórios ausentes ou mal formatados", err.Error())
			return
		}

		logger.WithFields(log.Fields{
			"table":       req.Table,
			"data_inicio": req.DataInicio,
			"data_fim":    req.DataFim,
		}).Info("insights: generating insight")

		results, err := service.Generate(r.Context(), req)
		if err != nil {
			writeInsightError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if len(results) == 1 {
			if err := json.NewEncoder(w).Encode(results[0]); err != nil {
				logger.WithError(err).Error("insights: error encoding response")
			}
			return
		}

		if err := json.NewEncoder(w).Encode(insightListResponse{Results: results}); err != nil {
			logger.WithError(err).Error("insights: error encoding response")
		}
	})
}

// writeInsightError traduz os erros do pipeline para os códigos da API
func writeInsightError(w http.ResponseWriter, logger log.Logger, err error) {
	var invalidOrigin *origins.InvalidOriginError
	if errors.As(err, &invalidOrigin) {
		apiErrors.WriteError(w, apiErrors.ErrUnknownOrigin, invalidOrigin.Error(), nil)
		return
	}

	var schemaErr *origins.SchemaError
	if errors.As(err, &schemaErr) {
		logger.WithError(err).Error("insights: origin registry misconfigured")
		apiErrors.WriteError(w, apiErrors.ErrOriginSchema, "Registro de origem mal configurado", nil)
		return
	}

	var queryErr *insighting.QueryExecutionError
	if errors.As(err, &queryErr) {
		logger.WithError(err).WithField("sql", queryErr.SQL).Error("insights: warehouse query failed")
		apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao consultar o warehouse", nil)
		return
	}

	var completionErr *insighting.CompletionServiceError
	if errors.As(err, &completionErr) {
		logger.WithError(err).Error("insights: completion service failed")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao gerar o texto do insight", nil)
		return
	}

	logger.WithError(err).Error("insights: unexpected error")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno", nil)
}
