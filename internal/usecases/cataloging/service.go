package cataloging

import (
	"context"
	"fmt"
	"sync"

	sq "github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/worlddata/insights-api/internal/config"
	"github.com/worlddata/insights-api/internal/domain"
	"github.com/worlddata/insights-api/internal/origins"
	"github.com/worlddata/insights-api/pkg/log"
)

// Os catálogos do portal são alimentados pela tabela diária de Google Ads,
// que é a única com nome e status de campanha por cliente.
const catalogOriginKey = "CampanhaGoogleAds"

// Colunas da tabela de Ads usadas só pelo catálogo; não são métricas, então
// não entram no registro de origens.
const (
	campaignNameColumn   = "campaign_name"
	campaignStatusColumn = "campaign_status"
)

const (
	clientsLimit   = 50
	campaignsLimit = 200
)

// Warehouse é a porta de consulta usada pelo catálogo.
type Warehouse interface {
	RunQuery(ctx context.Context, sql string, params map[string]any) ([]domain.Row, error)
}

// Cataloger lista clientes e campanhas com totais agregados para preencher os
// filtros do portal. Listagens sem filtro são servidas de um cache em memória
// repovoado pelo WarmUp; listagens filtradas sempre consultam o warehouse.
type Cataloger interface {
	ListClients(ctx context.Context, filters domain.CatalogFilters) ([]domain.ClientSummary, error)
	ListCampaigns(ctx context.Context, filters domain.CatalogFilters) ([]domain.Campaign, error)
	WarmUp(ctx context.Context) error
}

type Service struct {
	cfg       config.BigQuery
	warehouse Warehouse

	mu            sync.RWMutex
	clients       []domain.ClientSummary
	clientsWarm   bool
	campaigns     []domain.Campaign
	campaignsWarm bool
}

func NewService(cfg config.BigQuery, warehouse Warehouse) *Service {
	return &Service{
		cfg:       cfg,
		warehouse: warehouse,
	}
}

// ListClients devolve os clientes com totais de campanhas, impressões,
// cliques e gasto, mais as datas de primeiro e último dado. Aceita filtros
// opcionais de período e de busca por nome.
func (s *Service) ListClients(ctx context.Context, filters domain.CatalogFilters) ([]domain.ClientSummary, error) {
	if filters.Empty() {
		s.mu.RLock()
		cached, warm := s.clients, s.clientsWarm
		s.mu.RUnlock()
		if warm {
			return cached, nil
		}
	}

	clients, err := s.fetchClients(ctx, filters)
	if err != nil {
		return nil, err
	}

	if filters.Empty() {
		s.mu.Lock()
		s.clients = clients
		s.clientsWarm = true
		s.mu.Unlock()
	}

	return clients, nil
}

// ListCampaigns devolve as campanhas com nome, status e totais por cliente.
// O filtro Cliente restringe a um cliente; datas restringem o período.
func (s *Service) ListCampaigns(ctx context.Context, filters domain.CatalogFilters) ([]domain.Campaign, error) {
	if filters.Empty() {
		s.mu.RLock()
		cached, warm := s.campaigns, s.campaignsWarm
		s.mu.RUnlock()
		if warm {
			return cached, nil
		}
	}

	campaigns, err := s.fetchCampaigns(ctx, filters)
	if err != nil {
		return nil, err
	}

	if filters.Empty() {
		s.mu.Lock()
		s.campaigns = campaigns
		s.campaignsWarm = true
		s.mu.Unlock()
	}

	return campaigns, nil
}

// WarmUp repovoa o cache das listagens sem filtro. Usado pelo agendador e no
// subir do servidor quando habilitado.
func (s *Service) WarmUp(ctx context.Context) error {
	logger := log.ForContext(ctx)

	clients, err := s.fetchClients(ctx, domain.CatalogFilters{})
	if err != nil {
		return errors.Wrap(err, "erro ao aquecer catálogo de clientes")
	}

	campaigns, err := s.fetchCampaigns(ctx, domain.CatalogFilters{})
	if err != nil {
		return errors.Wrap(err, "erro ao aquecer catálogo de campanhas")
	}

	s.mu.Lock()
	s.clients = clients
	s.clientsWarm = true
	s.campaigns = campaigns
	s.campaignsWarm = true
	s.mu.Unlock()

	logger.WithFields(log.Fields{
		"clients":   len(clients),
		"campaigns": len(campaigns),
	}).Info("cataloging: catálogo atualizado")

	return nil
}

func (s *Service) fetchClients(ctx context.Context, filters domain.CatalogFilters) ([]domain.ClientSummary, error) {
	entry, err := origins.Lookup(catalogOriginKey)
	if err != nil {
		return nil, err
	}

	client := entry.ClientField
	date := entry.DateField

	qb := sq.Select(
		client,
		fmt.Sprintf("COUNT(DISTINCT %s) AS total_campaigns", entry.CampaignField),
		"SUM(CAST(impressions AS INT64)) AS total_impressions",
		"SUM(CAST(clicks AS INT64)) AS total_clicks",
		"SUM(CAST(spend AS FLOAT64)) AS total_spend",
		fmt.Sprintf("MIN(%s) AS primeira_data", date),
		fmt.Sprintf("MAX(%s) AS ultima_data", date),
	).
		From(s.tableFQN(entry)).
		Where(client + " IS NOT NULL").
		Where(client + " != ''")

	params := make(map[string]any)
	if filters.DataInicio != "" {
		qb = qb.Where(date + " >= @dataInicio")
		params["dataInicio"] = filters.DataInicio
	}
	if filters.DataFim != "" {
		qb = qb.Where(date + " <= @dataFim")
		params["dataFim"] = filters.DataFim
	}
	if filters.Search != "" {
		qb = qb.Where(fmt.Sprintf("LOWER(TRIM(%s)) LIKE LOWER(TRIM(@search))", client))
		params["search"] = "%" + filters.Search + "%"
	}

	sql, _, err := qb.
		GroupBy(client).
		OrderBy("total_spend DESC").
		Limit(clientsLimit).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar consulta de clientes")
	}

	rows, err := s.warehouse.RunQuery(ctx, sql, params)
	if err != nil {
		return nil, err
	}

	clients := make([]domain.ClientSummary, 0, len(rows))
	for _, row := range rows {
		name, ok := row.Text(client)
		if !ok {
			continue
		}

		summary := domain.ClientSummary{
			Name:             name,
			TotalCampaigns:   int64(row.NumberOrZero("total_campaigns")),
			TotalImpressions: int64(row.NumberOrZero("total_impressions")),
			TotalClicks:      int64(row.NumberOrZero("total_clicks")),
			TotalSpend:       row.NumberOrZero("total_spend"),
		}
		summary.PrimeiraData, _ = row.Text("primeira_data")
		summary.UltimaData, _ = row.Text("ultima_data")

		clients = append(clients, summary)
	}

	return clients, nil
}

func (s *Service) fetchCampaigns(ctx context.Context, filters domain.CatalogFilters) ([]domain.Campaign, error) {
	entry, err := origins.Lookup(catalogOriginKey)
	if err != nil {
		return nil, err
	}

	client := entry.ClientField
	date := entry.DateField

	qb := sq.Select(
		client,
		fmt.Sprintf("CAST(%s AS STRING) AS campaign_id", entry.CampaignField),
		campaignNameColumn,
		campaignStatusColumn,
		"COUNT(*) AS total_records",
		"SUM(CAST(impressions AS INT64)) AS total_impressions",
		"SUM(CAST(clicks AS INT64)) AS total_clicks",
		"SUM(CAST(spend AS FLOAT64)) AS total_spend",
		fmt.Sprintf("MIN(%s) AS primeira_data", date),
		fmt.Sprintf("MAX(%s) AS ultima_data", date),
	).
		From(s.tableFQN(entry)).
		Where(campaignNameColumn + " IS NOT NULL").
		Where(campaignNameColumn + " != ''").
		Where(client + " IS NOT NULL").
		Where(client + " != ''")

	params := make(map[string]any)
	if filters.Cliente != "" {
		qb = qb.Where(fmt.Sprintf("LOWER(TRIM(%s)) LIKE LOWER(TRIM(@cliente))", client))
		params["cliente"] = "%" + filters.Cliente + "%"
	}
	if filters.DataInicio != "" {
		qb = qb.Where(date + " >= @dataInicio")
		params["dataInicio"] = filters.DataInicio
	}
	if filters.DataFim != "" {
		qb = qb.Where(date + " <= @dataFim")
		params["dataFim"] = filters.DataFim
	}

	sql, _, err := qb.
		GroupBy(client, "campaign_id", campaignNameColumn, campaignStatusColumn).
		OrderBy(client, "total_spend DESC").
		Limit(campaignsLimit).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar consulta de campanhas")
	}

	rows, err := s.warehouse.RunQuery(ctx, sql, params)
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.Campaign, 0, len(rows))
	for _, row := range rows {
		id, ok := row.Text("campaign_id")
		if !ok {
			continue
		}

		campaign := domain.Campaign{
			ID:               id,
			TotalRecords:     int64(row.NumberOrZero("total_records")),
			TotalImpressions: int64(row.NumberOrZero("total_impressions")),
			TotalClicks:      int64(row.NumberOrZero("total_clicks")),
			TotalSpend:       row.NumberOrZero("total_spend"),
		}
		campaign.Name, _ = row.Text(campaignNameColumn)
		campaign.Status, _ = row.Text(campaignStatusColumn)
		campaign.Cliente, _ = row.Text(client)
		campaign.PrimeiraData, _ = row.Text("primeira_data")
		campaign.UltimaData, _ = row.Text("ultima_data")

		campaigns = append(campaigns, campaign)
	}

	return campaigns, nil
}

func (s *Service) tableFQN(entry *domain.OriginDefinition) string {
	return fmt.Sprintf("`%s.%s.%s`", s.cfg.ProjectID, entry.Dataset, entry.Table)
}
