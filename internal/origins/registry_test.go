package origins

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worlddata/insights-api/internal/domain"
)

func TestLookup(t *testing.T) {
	t.Run("Chave conhecida retorna a definição da origem", func(t *testing.T) {
		entry, err := Lookup("CampanhaGoogleAnalytics")
		require.NoError(t, err)

		assert.Equal(t, "CampanhaGoogleAnalytics", entry.Key)
		assert.Equal(t, "ga4", entry.Dataset)
		assert.Equal(t, "Consolidado_GA4", entry.Table)
		assert.NotEmpty(t, entry.Metrics)
		assert.NotEmpty(t, entry.Prompt)
	})

	t.Run("Chave desconhecida retorna InvalidOriginError com a chave na mensagem", func(t *testing.T) {
		_, err := Lookup("OrigemInexistente")
		require.Error(t, err)

		var invalidOrigin *InvalidOriginError
		require.True(t, errors.As(err, &invalidOrigin))
		assert.Contains(t, err.Error(), "OrigemInexistente")
	})

	t.Run("Google Ads declara os custos opcionais de conversão", func(t *testing.T) {
		entry, err := Lookup("CampanhaGoogleAds")
		require.NoError(t, err)

		byField := make(map[string]domain.MetricDefinition, len(entry.Metrics))
		for _, metric := range entry.Metrics {
			byField[metric.Field] = metric
		}

		for _, field := range []string{"cost_per_conversion", "cost_per_all_conversions", "conversions_value"} {
			metric, ok := byField[field]
			require.True(t, ok, field)
			assert.True(t, metric.Optional, field)
			assert.Equal(t, domain.FormatBRL2, metric.Format, field)
		}
		assert.Equal(t, "Custo por todas conversões", byField["cost_per_all_conversions"].Label)
	})

	t.Run("Somente a origem de pacing liga o cálculo de pacing", func(t *testing.T) {
		for _, key := range Keys() {
			entry, err := Lookup(key)
			require.NoError(t, err)
			assert.Equal(t, key == "PacingOrcamento", entry.Pacing, key)
		}
	})
}

func TestKeys(t *testing.T) {
	keys := Keys()

	assert.Len(t, keys, 6)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, "CampanhaGoogleAds")
	assert.Contains(t, keys, "PacingOrcamento")
}

func TestBaseFields(t *testing.T) {
	tests := []struct {
		name     string
		metrics  []domain.MetricDefinition
		expected []string
	}{
		{
			name: "Ratio adiciona numerador e denominador, nunca o campo derivado",
			metrics: []domain.MetricDefinition{
				{Field: "ctr", Agg: domain.Ratio("clicks", "impressions")},
			},
			expected: []string{"clicks", "impressions"},
		},
		{
			name: "Média ponderada adiciona o campo e o peso",
			metrics: []domain.MetricDefinition{
				{Field: "bouncerate", Agg: domain.WeightedAvg("sessions")},
			},
			expected: []string{"bouncerate", "sessions"},
		},
		{
			name: "Campos repetidos são deduplicados preservando a ordem de inserção",
			metrics: []domain.MetricDefinition{
				{Field: "clicks", Agg: domain.Sum()},
				{Field: "impressions", Agg: domain.Sum()},
				{Field: "ctr", Agg: domain.Ratio("clicks", "impressions")},
				{Field: "spend", Agg: domain.Sum()},
				{Field: "cpc", Agg: domain.Ratio("spend", "clicks")},
			},
			expected: []string{"clicks", "impressions", "spend"},
		},
		{
			name: "Categórica entra como o próprio campo",
			metrics: []domain.MetricDefinition{
				{Field: "devicecategory", Agg: domain.Categorical()},
			},
			expected: []string{"devicecategory"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := BaseFields(tt.metrics)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fields)
		})
	}

	t.Run("Coluna em branco no registro falha com SchemaError", func(t *testing.T) {
		_, err := BaseFields([]domain.MetricDefinition{
			{Field: "", Agg: domain.Sum()},
		})
		require.Error(t, err)

		var schemaErr *SchemaError
		assert.True(t, errors.As(err, &schemaErr))
	})

	t.Run("Todas as origens do registro derivam colunas sem erro", func(t *testing.T) {
		for _, key := range Keys() {
			entry, err := Lookup(key)
			require.NoError(t, err)

			fields, err := BaseFields(entry.Metrics)
			require.NoError(t, err, key)
			assert.NotEmpty(t, fields, key)
		}
	})
}
