package insighting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worlddata/insights-api/internal/config"
	"github.com/worlddata/insights-api/internal/domain"
	"github.com/worlddata/insights-api/internal/origins"
)

type fakeWarehouse struct {
	rows      []domain.Row
	err       error
	calls     int
	lastSQL   string
	lastParam map[string]any
}

func (f *fakeWarehouse) RunQuery(_ context.Context, sql string, params map[string]any) ([]domain.Row, error) {
	f.calls++
	f.lastSQL = sql
	f.lastParam = params

	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

type fakeCompleter struct {
	text   string
	err    error
	calls  int
	prompt string
}

func (f *fakeCompleter) Complete(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt

	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func newTestService(warehouse Warehouse, completer Completer) Insighter {
	return NewService(config.BigQuery{ProjectID: "worlddata-439415"}, warehouse, completer)
}

func ga4Rows() []domain.Row {
	return []domain.Row{
		{"__client": "acme", "sessions": float64(100), "conversions": float64(5), "activeusers": float64(80)},
		{"__client": "acme", "sessions": float64(200), "conversions": float64(15), "activeusers": float64(150)},
	}
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Fluxo completo devolve SQL, fatos, prompt e texto do insight", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: ga4Rows()}
		completer := &fakeCompleter{text: "As sessões cresceram no período."}
		service := newTestService(warehouse, completer)

		results, err := service.Generate(ctx, &domain.InsightRequest{
			Table:      "CampanhaGoogleAnalytics",
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
			Cliente:    "Acme",
		})
		require.NoError(t, err)
		require.Len(t, results, 1)

		result := results[0]
		assert.NotEmpty(t, result.ReportID)
		assert.Equal(t, "CampanhaGoogleAnalytics", result.Origin)
		assert.Equal(t, "Acme", result.Cliente)
		assert.Contains(t, result.SQL, "BETWEEN @start AND @end")
		assert.NotEmpty(t, result.Facts)
		assert.Contains(t, result.Prompt, "FACTS_JSON:")
		assert.Equal(t, "As sessões cresceram no período.", result.Insight)
		assert.False(t, result.NoData)

		assert.Equal(t, "Acme", warehouse.lastParam["client"])
		assert.Equal(t, 1, completer.calls)
		assert.Equal(t, result.Prompt, completer.prompt)
	})

	t.Run("Origem desconhecida retorna InvalidOriginError sem consultar o warehouse", func(t *testing.T) {
		warehouse := &fakeWarehouse{}
		service := newTestService(warehouse, &fakeCompleter{})

		_, err := service.Generate(ctx, &domain.InsightRequest{
			Table:      "OrigemInexistente",
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
		})
		require.Error(t, err)

		var invalidOrigin *origins.InvalidOriginError
		assert.True(t, errors.As(err, &invalidOrigin))
		assert.Zero(t, warehouse.calls)
	})

	t.Run("Consulta sem linhas devolve NoData e não chama o serviço de completions", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: nil}
		completer := &fakeCompleter{err: errors.New("não deveria ser chamado")}
		service := newTestService(warehouse, completer)

		results, err := service.Generate(ctx, &domain.InsightRequest{
			Table:      "CampanhaGoogleAnalytics",
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
			Cliente:    "Acme",
		})
		require.NoError(t, err)
		require.Len(t, results, 1)

		assert.True(t, results[0].NoData)
		assert.Equal(t, NoDataMessage, results[0].Insight)
		assert.Empty(t, results[0].Facts)
		assert.Zero(t, completer.calls)
	})

	t.Run("Falha do warehouse vira QueryExecutionError com o SQL para log", func(t *testing.T) {
		warehouse := &fakeWarehouse{err: errors.New("quota excedida")}
		service := newTestService(warehouse, &fakeCompleter{})

		_, err := service.Generate(ctx, &domain.InsightRequest{
			Table:      "CampanhaGoogleAnalytics",
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
		})
		require.Error(t, err)

		var queryErr *QueryExecutionError
		require.True(t, errors.As(err, &queryErr))
		assert.Contains(t, queryErr.SQL, "SELECT")
	})

	t.Run("Falha do completions vira CompletionServiceError", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: ga4Rows()}
		completer := &fakeCompleter{err: errors.New("timeout")}
		service := newTestService(warehouse, completer)

		_, err := service.Generate(ctx, &domain.InsightRequest{
			Table:      "CampanhaGoogleAnalytics",
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
		})
		require.Error(t, err)

		var completionErr *CompletionServiceError
		assert.True(t, errors.As(err, &completionErr))
	})

	t.Run("Vários clientes separados por vírgula geram um resultado por cliente", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: ga4Rows()}
		completer := &fakeCompleter{text: "ok"}
		service := newTestService(warehouse, completer)

		results, err := service.Generate(ctx, &domain.InsightRequest{
			Table:      "CampanhaGoogleAnalytics",
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
			Cliente:    "Acme, Umbrella",
		})
		require.NoError(t, err)
		require.Len(t, results, 2)

		assert.Equal(t, "Acme", results[0].Cliente)
		assert.Equal(t, "Umbrella", results[1].Cliente)
		assert.NotEqual(t, results[0].ReportID, results[1].ReportID)
		assert.Equal(t, 2, warehouse.calls)
	})
}

func TestRunRawQuery(t *testing.T) {
	ctx := context.Background()

	t.Run("Devolve as linhas cruas do warehouse", func(t *testing.T) {
		warehouse := &fakeWarehouse{rows: []domain.Row{{"total": float64(42)}}}
		service := newTestService(warehouse, &fakeCompleter{})

		rows, err := service.RunRawQuery(ctx, "SELECT COUNT(*) AS total FROM `x.y.z`")
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, float64(42), rows[0]["total"])
	})

	t.Run("Falha do warehouse vira QueryExecutionError", func(t *testing.T) {
		warehouse := &fakeWarehouse{err: errors.New("tabela inexistente")}
		service := newTestService(warehouse, &fakeCompleter{})

		_, err := service.RunRawQuery(ctx, "SELECT 1")
		require.Error(t, err)

		var queryErr *QueryExecutionError
		assert.True(t, errors.As(err, &queryErr))
	})
}

func TestSplitClients(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "Vazio vira execução única sem filtro", raw: "", expected: []string{""}},
		{name: "Cliente único", raw: "Acme", expected: []string{"Acme"}},
		{name: "Lista com espaços é normalizada", raw: " Acme , Umbrella ", expected: []string{"Acme", "Umbrella"}},
		{name: "Vírgulas sobrando são ignoradas", raw: "Acme,,", expected: []string{"Acme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, splitClients(tt.raw))
		})
	}
}
