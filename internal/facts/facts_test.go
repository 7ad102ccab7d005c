package facts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worlddata/insights-api/internal/domain"
)

func TestBuild(t *testing.T) {
	metrics := []domain.MetricDefinition{
		{Field: "sessions", Label: "Sessões", Agg: domain.Sum(), Format: domain.FormatInt},
		{Field: "conversions", Label: "Conversões", Agg: domain.Sum(), Format: domain.FormatInt},
		{Field: "conv_per_session", Label: "Conv./Sessão", Agg: domain.Ratio("conversions", "sessions"), Format: domain.FormatFloat2},
	}

	t.Run("Agrega as linhas do período em um fato por métrica, na ordem declarada", func(t *testing.T) {
		rows := []domain.Row{
			{"sessions": float64(100), "conversions": float64(5)},
			{"sessions": float64(200), "conversions": float64(15)},
		}

		result := Build(rows, metrics)
		require.Len(t, result, 3)

		assert.Equal(t, "Sessões", result[0].Label)
		assert.Equal(t, "300", result[0].Formatted)

		assert.Equal(t, "Conversões", result[1].Label)
		assert.Equal(t, "20", result[1].Formatted)

		assert.Equal(t, "Conv./Sessão", result[2].Label)
		assert.Equal(t, "0,07", result[2].Formatted)
	})

	t.Run("Ratio sem denominador degrada para N/A, nunca para erro", func(t *testing.T) {
		rows := []domain.Row{
			{"sessions": float64(0), "conversions": float64(0)},
		}

		result := Build(rows, metrics)
		require.Len(t, result, 3)

		assert.Equal(t, "N/A", result[2].Formatted)
	})

	t.Run("Campo categórico com vários valores gera fatos de segmento ranqueados", func(t *testing.T) {
		withSegment := append(metrics, domain.MetricDefinition{
			Field: "devicecategory", Label: "Dispositivo", Agg: domain.Categorical(), Format: domain.FormatString,
		})

		rows := []domain.Row{
			{"devicecategory": "desktop", "sessions": float64(100), "conversions": float64(2)},
			{"devicecategory": "mobile", "sessions": float64(300), "conversions": float64(9)},
			{"devicecategory": "tablet", "sessions": float64(50), "conversions": float64(1)},
		}

		result := Build(rows, withSegment)

		// 4 métricas declaradas + 3 fatos de segmento
		require.Len(t, result, 7)

		assert.Equal(t, "Dispositivo #1", result[4].Label)
		assert.Equal(t, "mobile: 300", result[4].Formatted)
		assert.Equal(t, "devicecategory_segment_1", result[4].Field)

		assert.Equal(t, "Dispositivo #2", result[5].Label)
		assert.Equal(t, "desktop: 100", result[5].Formatted)

		assert.Equal(t, "Dispositivo #3", result[6].Label)
		assert.Equal(t, "tablet: 50", result[6].Formatted)
	})

	t.Run("Campo categórico com valor único não gera fatos de segmento", func(t *testing.T) {
		withSegment := append(metrics, domain.MetricDefinition{
			Field: "devicecategory", Label: "Dispositivo", Agg: domain.Categorical(), Format: domain.FormatString,
		})

		rows := []domain.Row{
			{"devicecategory": "mobile", "sessions": float64(100), "conversions": float64(5)},
			{"devicecategory": "mobile", "sessions": float64(200), "conversions": float64(15)},
		}

		result := Build(rows, withSegment)
		require.Len(t, result, 4)
		assert.Equal(t, "mobile", result[3].Formatted)
	})

	t.Run("Sem linhas, métricas de soma zeram e as demais degradam para N/A", func(t *testing.T) {
		result := Build(nil, metrics)
		require.Len(t, result, 3)

		assert.Equal(t, "0", result[0].Formatted)
		assert.Equal(t, "0", result[1].Formatted)
		assert.Equal(t, "N/A", result[2].Formatted)
	})
}
