package insighting

import (
	"context"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/worlddata/insights-api/internal/config"
	"github.com/worlddata/insights-api/internal/domain"
	"github.com/worlddata/insights-api/internal/facts"
	"github.com/worlddata/insights-api/internal/origins"
	"github.com/worlddata/insights-api/internal/prompt"
	"github.com/worlddata/insights-api/internal/querybuilder"
	"github.com/worlddata/insights-api/pkg/log"
)

// NoDataMessage é o texto devolvido quando a consulta não encontra linhas.
// Nesse caso o serviço de completions não é chamado.
const NoDataMessage = "Nenhum dado encontrado para o período selecionado."

const reportIDLength = 12

type Insighter interface {
	Generate(ctx context.Context, req *domain.InsightRequest) ([]*domain.InsightResult, error)
	RunRawQuery(ctx context.Context, sql string) ([]domain.Row, error)
}

type Service struct {
	cfg       config.BigQuery
	warehouse Warehouse
	completer Completer
}

func NewService(cfg config.BigQuery, warehouse Warehouse, completer Completer) Insighter {
	return &Service{
		cfg:       cfg,
		warehouse: warehouse,
		completer: completer,
	}
}

// Generate roda o pipeline completo para a requisição: resolve a origem,
// monta e executa a consulta, agrega fatos, monta o prompt e gera o texto.
// Cliente com vírgulas vira uma execução independente por cliente, na ordem
// em que aparecem; cada resultado carrega o cliente que o produziu.
func (s *Service) Generate(ctx context.Context, req *domain.InsightRequest) ([]*domain.InsightResult, error) {
	entry, err := origins.Lookup(req.Table)
	if err != nil {
		return nil, err
	}

	clients := splitClients(req.Cliente)

	results := make([]*domain.InsightResult, 0, len(clients))
	for _, client := range clients {
		result, err := s.generateForClient(ctx, entry, req, client)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Service) generateForClient(
	ctx context.Context,
	entry *domain.OriginDefinition,
	req *domain.InsightRequest,
	client string,
) (*domain.InsightResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"origin":  entry.Key,
		"cliente": client,
	})

	query, err := querybuilder.BuildInsightSQL(
		s.cfg.ProjectID, entry, req.DataInicio, req.DataFim, client, req.CampaignIDs,
	)
	if err != nil {
		return nil, err
	}

	rows, err := s.warehouse.RunQuery(ctx, query.SQL, query.Params)
	if err != nil {
		logger.WithError(err).Error("insighting: falha na consulta do warehouse")
		return nil, &QueryExecutionError{SQL: query.SQL, Err: err}
	}

	reportID, err := gonanoid.New(reportIDLength)
	if err != nil {
		return nil, err
	}

	result := &domain.InsightResult{
		ReportID: reportID,
		Origin:   entry.Key,
		Cliente:  client,
		SQL:      query.SQL,
		Data:     rows,
	}

	if len(rows) == 0 {
		logger.Info("insighting: consulta sem linhas no período")
		result.Facts = []domain.FactRow{}
		result.Insight = NoDataMessage
		result.NoData = true
		return result, nil
	}

	result.Facts = facts.Build(rows, entry.Metrics)

	promptText, pacingResult, err := prompt.Assemble(entry, rows, result.Facts, prompt.Args{
		DataInicio: req.DataInicio,
		DataFim:    req.DataFim,
		Cliente:    client,
		PagePath:   req.PagePath,
	})
	if err != nil {
		return nil, err
	}

	result.Prompt = promptText
	result.Pacing = pacingResult

	insight, err := s.completer.Complete(ctx, promptText)
	if err != nil {
		logger.WithError(err).Error("insighting: falha no serviço de completions")
		return nil, &CompletionServiceError{Err: err}
	}

	result.Insight = insight
	logger.WithField("report_id", reportID).Info("insighting: insight gerado")

	return result, nil
}

// RunRawQuery executa SQL arbitrário no warehouse. A rota que o expõe é
// restrita a administradores; aqui não há sanitização de texto.
func (s *Service) RunRawQuery(ctx context.Context, sql string) ([]domain.Row, error) {
	rows, err := s.warehouse.RunQuery(ctx, sql, nil)
	if err != nil {
		return nil, &QueryExecutionError{SQL: sql, Err: err}
	}
	return rows, nil
}

// splitClients quebra o campo cliente em uma lista normalizada; vazio vira
// uma única execução sem filtro de cliente.
func splitClients(raw string) []string {
	parts := strings.Split(raw, ",")

	var clients []string
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			clients = append(clients, trimmed)
		}
	}

	if len(clients) == 0 {
		return []string{""}
	}

	return clients
}
