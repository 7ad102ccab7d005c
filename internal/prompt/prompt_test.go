package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worlddata/insights-api/internal/domain"
)

func TestAssemble(t *testing.T) {
	entry := &domain.OriginDefinition{
		Key:    "CampanhaGoogleAnalytics",
		Prompt: "Analise o desempenho de {cliente} entre {dataInicio} e {dataFim}. Página: {pagepath}.",
	}

	factRows := []domain.FactRow{
		{Label: "Sessões", Field: "sessions", Raw: 300.0, Formatted: "300"},
		{Label: "Conversões", Field: "conversions", Raw: 20.0, Formatted: "20"},
	}

	t.Run("Substitui os placeholders e anexa o bloco de fatos formatados", func(t *testing.T) {
		text, pacingResult, err := Assemble(entry, nil, factRows, Args{
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
			Cliente:    "Acme",
			PagePath:   "/promo",
		})
		require.NoError(t, err)
		require.Nil(t, pacingResult)

		assert.Contains(t, text, "Analise o desempenho de Acme entre 2024-01-01 e 2024-01-31. Página: /promo.")
		assert.Contains(t, text, "PERÍODO: 2024-01-01–2024-01-31 | CLIENTE: Acme")
		assert.Contains(t, text, "FACTS_JSON:")
		assert.Contains(t, text, `"label": "Sessões"`)
		assert.Contains(t, text, `"value": "300"`)
		assert.NotContains(t, text, "{cliente}")
		assert.NotContains(t, text, "PACING_JSON")
	})

	t.Run("Pagepath vazio vira N/A em vez de placeholder órfão", func(t *testing.T) {
		text, _, err := Assemble(entry, nil, factRows, Args{
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
			Cliente:    "Acme",
		})
		require.NoError(t, err)

		assert.Contains(t, text, "Página: N/A.")
		assert.NotContains(t, text, "{pagepath}")
	})

	t.Run("Cliente vazio omite o sufixo de cliente na linha de período", func(t *testing.T) {
		text, _, err := Assemble(entry, nil, factRows, Args{
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
		})
		require.NoError(t, err)

		assert.Contains(t, text, "PERÍODO: 2024-01-01–2024-01-31\n")
		assert.NotContains(t, text, "| CLIENTE:")
	})

	t.Run("Origem de pacing anexa o bloco PACING_JSON com valores formatados", func(t *testing.T) {
		pacingEntry := &domain.OriginDefinition{
			Key:    "PacingOrcamento",
			Prompt: "Avalie o pacing de {cliente}.",
			Pacing: true,
		}

		rows := []domain.Row{
			{"Orcamento_Total": float64(3100), "Gasto_Acumulado": float64(1000)},
		}

		text, pacingResult, err := Assemble(pacingEntry, rows, nil, Args{
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-31",
			Cliente:    "Acme",
		})
		require.NoError(t, err)
		require.NotNil(t, pacingResult)

		assert.Equal(t, 31, pacingResult.TotalDays)
		assert.Contains(t, text, "PACING_JSON:")
		assert.Contains(t, text, `"dias_totais": 31`)
		assert.Contains(t, text, `"burn_ideal_dia": "R$ 100,00"`)
		assert.Contains(t, text, `"orcamento_restante": "R$ 2100,00"`)
		assert.Contains(t, text, `"%_consumido": "32,3%"`)
	})

	t.Run("Orçamento ausente na primeira linha soma as demais", func(t *testing.T) {
		pacingEntry := &domain.OriginDefinition{
			Key:    "PacingOrcamento",
			Prompt: "Avalie o pacing de {cliente}.",
			Pacing: true,
		}

		rows := []domain.Row{
			{"Orcamento_Total": float64(0), "Gasto_Acumulado": float64(200)},
			{"Orcamento_Total": float64(500), "Gasto_Acumulado": float64(100)},
		}

		_, pacingResult, err := Assemble(pacingEntry, rows, nil, Args{
			DataInicio: "2024-01-01",
			DataFim:    "2024-01-10",
		})
		require.NoError(t, err)
		require.NotNil(t, pacingResult)

		// Orçamento veio da soma (0 + 500); gasto veio da primeira linha (200)
		assert.Equal(t, 500.0, pacingResult.TotalBudget)
		assert.Equal(t, 200.0, pacingResult.AccumulatedSpend)
	})
}
