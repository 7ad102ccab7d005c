package cataloging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worlddata/insights-api/internal/config"
	"github.com/worlddata/insights-api/internal/domain"
)

type fakeWarehouse struct {
	rows       []domain.Row
	err        error
	calls      int
	lastSQL    string
	lastParams map[string]any
}

func (f *fakeWarehouse) RunQuery(_ context.Context, sql string, params map[string]any) ([]domain.Row, error) {
	f.calls++
	f.lastSQL = sql
	f.lastParams = params

	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func newTestService(warehouse Warehouse) *Service {
	return NewService(config.BigQuery{ProjectID: "worlddata-439415"}, warehouse)
}

func clientRow(name string) domain.Row {
	return domain.Row{
		"cliente":           name,
		"total_campaigns":   int64(3),
		"total_impressions": int64(10000),
		"total_clicks":      int64(250),
		"total_spend":       1234.56,
		"primeira_data":     "2026-01-01",
		"ultima_data":       "2026-01-31",
	}
}

func campaignRow(id, name, status, cliente string) domain.Row {
	return domain.Row{
		"campaign_id":       id,
		"campaign_name":     name,
		"campaign_status":   status,
		"cliente":           cliente,
		"total_records":     int64(31),
		"total_impressions": int64(5000),
		"total_clicks":      int64(120),
		"total_spend":       750.0,
		"primeira_data":     "2026-01-01",
		"ultima_data":       "2026-01-31",
	}
}

func TestListClients(t *testing.T) {
	ctx := context.Background()

	t.Run("Listagem agrega totais e janela de datas por cliente", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: []domain.Row{clientRow("acme"), clientRow("umbrella")}}
		service := newTestService(warehouse)

		clients, err := service.ListClients(ctx, domain.CatalogFilters{})
		require.NoError(t, err)

		require.Len(t, clients, 2)
		assert.Equal(t, domain.ClientSummary{
			Name:             "acme",
			TotalCampaigns:   3,
			TotalImpressions: 10000,
			TotalClicks:      250,
			TotalSpend:       1234.56,
			PrimeiraData:     "2026-01-01",
			UltimaData:       "2026-01-31",
		}, clients[0])

		assert.Contains(t, warehouse.lastSQL, "`worlddata-439415.Ads.Google_Daily`")
		assert.Contains(t, warehouse.lastSQL, "COUNT(DISTINCT campaign_id) AS total_campaigns")
		assert.Contains(t, warehouse.lastSQL, "SUM(CAST(impressions AS INT64)) AS total_impressions")
		assert.Contains(t, warehouse.lastSQL, "SUM(CAST(spend AS FLOAT64)) AS total_spend")
		assert.Contains(t, warehouse.lastSQL, "MIN(data) AS primeira_data")
		assert.Contains(t, warehouse.lastSQL, "MAX(data) AS ultima_data")
		assert.Contains(t, warehouse.lastSQL, "GROUP BY cliente")
		assert.Contains(t, warehouse.lastSQL, "ORDER BY total_spend DESC")
		assert.Contains(t, warehouse.lastSQL, "LIMIT 50")
	})

	t.Run("Filtros de período e busca viram parâmetros nomeados", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: []domain.Row{clientRow("acme")}}
		service := newTestService(warehouse)

		_, err := service.ListClients(ctx, domain.CatalogFilters{
			DataInicio: "2026-01-01",
			DataFim:    "2026-01-31",
			Search:     "Acme",
		})
		require.NoError(t, err)

		assert.Contains(t, warehouse.lastSQL, "data >= @dataInicio")
		assert.Contains(t, warehouse.lastSQL, "data <= @dataFim")
		assert.Contains(t, warehouse.lastSQL, "LOWER(TRIM(cliente)) LIKE LOWER(TRIM(@search))")
		assert.Equal(t, "2026-01-01", warehouse.lastParams["dataInicio"])
		assert.Equal(t, "2026-01-31", warehouse.lastParams["dataFim"])
		assert.Equal(t, "%Acme%", warehouse.lastParams["search"])
	})

	t.Run("Listagem sem filtros responde do cache na segunda chamada", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: []domain.Row{clientRow("acme")}}
		service := newTestService(warehouse)

		_, err := service.ListClients(ctx, domain.CatalogFilters{})
		require.NoError(t, err)

		_, err = service.ListClients(ctx, domain.CatalogFilters{})
		require.NoError(t, err)

		assert.Equal(t, 1, warehouse.calls)
	})

	t.Run("Listagem filtrada não usa nem popula o cache", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: []domain.Row{clientRow("acme")}}
		service := newTestService(warehouse)

		filters := domain.CatalogFilters{Search: "acme"}
		_, err := service.ListClients(ctx, filters)
		require.NoError(t, err)
		_, err = service.ListClients(ctx, filters)
		require.NoError(t, err)
		assert.Equal(t, 2, warehouse.calls)

		_, err = service.ListClients(ctx, domain.CatalogFilters{})
		require.NoError(t, err)
		assert.Equal(t, 3, warehouse.calls)
	})

	t.Run("Linha sem nome de cliente é descartada", func(t *testing.T) {
		semNome := clientRow("acme")
		delete(semNome, "cliente")

		warehouse := &fakeWarehouse{rows: []domain.Row{semNome, clientRow("umbrella")}}
		service := newTestService(warehouse)

		clients, err := service.ListClients(ctx, domain.CatalogFilters{})
		require.NoError(t, err)

		require.Len(t, clients, 1)
		assert.Equal(t, "umbrella", clients[0].Name)
	})

	t.Run("Falha do warehouse propaga o erro", func(t *testing.T) {
		warehouse := &fakeWarehouse{err: errors.New("sem permissão")}
		service := newTestService(warehouse)

		_, err := service.ListClients(ctx, domain.CatalogFilters{})
		assert.Error(t, err)
	})
}

func TestListCampaigns(t *testing.T) {
	ctx := context.Background()

	t.Run("Campanhas trazem nome, status e totais por cliente", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: []domain.Row{
			campaignRow("123", "Busca - Marca", "ENABLED", "acme"),
			campaignRow("456", "Display - Remarketing", "PAUSED", "acme"),
		}}
		service := newTestService(warehouse)

		campaigns, err := service.ListCampaigns(ctx, domain.CatalogFilters{})
		require.NoError(t, err)

		require.Len(t, campaigns, 2)
		assert.Equal(t, domain.Campaign{
			ID:               "123",
			Name:             "Busca - Marca",
			Status:           "ENABLED",
			Cliente:          "acme",
			TotalRecords:     31,
			TotalImpressions: 5000,
			TotalClicks:      120,
			TotalSpend:       750.0,
			PrimeiraData:     "2026-01-01",
			UltimaData:       "2026-01-31",
		}, campaigns[0])

		assert.Contains(t, warehouse.lastSQL, "CAST(campaign_id AS STRING) AS campaign_id")
		assert.Contains(t, warehouse.lastSQL, "campaign_name")
		assert.Contains(t, warehouse.lastSQL, "campaign_status")
		assert.Contains(t, warehouse.lastSQL, "COUNT(*) AS total_records")
		assert.Contains(t, warehouse.lastSQL, "GROUP BY cliente, campaign_id, campaign_name, campaign_status")
		assert.Contains(t, warehouse.lastSQL, "ORDER BY cliente, total_spend DESC")
		assert.Contains(t, warehouse.lastSQL, "LIMIT 200")
	})

	t.Run("Filtro de cliente entra como busca parcial", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: []domain.Row{campaignRow("123", "Busca - Marca", "ENABLED", "acme")}}
		service := newTestService(warehouse)

		_, err := service.ListCampaigns(ctx, domain.CatalogFilters{Cliente: "Acme"})
		require.NoError(t, err)

		assert.Contains(t, warehouse.lastSQL, "LOWER(TRIM(cliente)) LIKE LOWER(TRIM(@cliente))")
		assert.Equal(t, "%Acme%", warehouse.lastParams["cliente"])
	})

	t.Run("Campanha sem nome não é listada", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: []domain.Row{campaignRow("123", "Busca - Marca", "ENABLED", "acme")}}
		service := newTestService(warehouse)

		_, err := service.ListCampaigns(ctx, domain.CatalogFilters{})
		require.NoError(t, err)

		assert.Contains(t, warehouse.lastSQL, "campaign_name IS NOT NULL")
		assert.Contains(t, warehouse.lastSQL, "campaign_name != ''")
	})
}

func TestWarmUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Aquece as listagens sem filtro de clientes e campanhas", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: []domain.Row{clientRow("acme")}}
		service := newTestService(warehouse)

		err := service.WarmUp(ctx)
		require.NoError(t, err)

		// Depois do aquecimento, listagens sem filtro não disparam consultas
		before := warehouse.calls
		_, err = service.ListClients(ctx, domain.CatalogFilters{})
		require.NoError(t, err)
		_, err = service.ListCampaigns(ctx, domain.CatalogFilters{})
		require.NoError(t, err)
		assert.Equal(t, before, warehouse.calls)
	})

	t.Run("Falha do warehouse interrompe o aquecimento com erro", func(t *testing.T) {
		warehouse := &fakeWarehouse{err: errors.New("sem permissão")}
		service := newTestService(warehouse)

		err := service.WarmUp(ctx)
		assert.Error(t, err)
	})
}
