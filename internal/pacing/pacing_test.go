package pacing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worlddata/insights-api/internal/domain"
)

func TestCalc(t *testing.T) {
	t.Run("Mês de 31 dias na metade do período", func(t *testing.T) {
		result, err := Calc(domain.PacingInputs{
			TotalBudget:      3100,
			AccumulatedSpend: 1000,
			StartDate:        "2024-01-01",
			EndDate:          "2024-01-31",
			AsOf:             "2024-01-16",
		})
		require.NoError(t, err)

		assert.Equal(t, 31, result.TotalDays)
		assert.Equal(t, 16, result.ElapsedDays)
		assert.Equal(t, 15, result.RemainingDays)
		assert.Equal(t, 2100.0, result.RemainingBudget)
		assert.Equal(t, 62.5, result.ActualDailyBurn)
		assert.Equal(t, 100.0, result.IdealDailyBurn)
		assert.Equal(t, -37.5, result.DailyBurnDelta)
		assert.InDelta(t, 0.3226, result.PercentConsumed, 0.0001)
	})

	t.Run("Data de referência depois do fim é grampeada ao período", func(t *testing.T) {
		result, err := Calc(domain.PacingInputs{
			TotalBudget:      1000,
			AccumulatedSpend: 500,
			StartDate:        "2024-01-01",
			EndDate:          "2024-01-10",
			AsOf:             "2024-03-01",
		})
		require.NoError(t, err)

		assert.Equal(t, 10, result.TotalDays)
		assert.Equal(t, 10, result.ElapsedDays)
		assert.Equal(t, 0, result.RemainingDays)
	})

	t.Run("Sem data de referência assume o fim do período", func(t *testing.T) {
		result, err := Calc(domain.PacingInputs{
			TotalBudget:      1000,
			AccumulatedSpend: 500,
			StartDate:        "2024-01-01",
			EndDate:          "2024-01-10",
		})
		require.NoError(t, err)

		assert.Equal(t, 10, result.ElapsedDays)
	})

	t.Run("Período de um único dia conta 1, nunca 0", func(t *testing.T) {
		result, err := Calc(domain.PacingInputs{
			TotalBudget:      100,
			AccumulatedSpend: 40,
			StartDate:        "2024-02-05",
			EndDate:          "2024-02-05",
		})
		require.NoError(t, err)

		assert.Equal(t, 1, result.TotalDays)
		assert.Equal(t, 1, result.ElapsedDays)
		assert.Equal(t, 40.0, result.ActualDailyBurn)
		assert.Equal(t, 100.0, result.IdealDailyBurn)
	})

	t.Run("Gasto acima do orçamento não deixa o restante negativo", func(t *testing.T) {
		result, err := Calc(domain.PacingInputs{
			TotalBudget:      1000,
			AccumulatedSpend: 1500,
			StartDate:        "2024-01-01",
			EndDate:          "2024-01-10",
		})
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.RemainingBudget)
		assert.Equal(t, 1.5, result.PercentConsumed)
	})

	t.Run("Orçamento zero não divide por zero", func(t *testing.T) {
		result, err := Calc(domain.PacingInputs{
			TotalBudget:      0,
			AccumulatedSpend: 0,
			StartDate:        "2024-01-01",
			EndDate:          "2024-01-10",
		})
		require.NoError(t, err)

		assert.Equal(t, 0.0, result.PercentConsumed)
		assert.Equal(t, 0.0, result.IdealDailyBurn)
	})

	t.Run("Data inválida retorna erro", func(t *testing.T) {
		_, err := Calc(domain.PacingInputs{
			TotalBudget:      1000,
			AccumulatedSpend: 500,
			StartDate:        "01/01/2024",
			EndDate:          "2024-01-10",
		})
		assert.Error(t, err)
	})
}
