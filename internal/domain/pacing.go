package domain

// PacingInputs são os insumos mínimos do cálculo de pacing: dois totais
// monetários e o intervalo de datas da campanha (YYYY-MM-DD, inclusivo).
// AsOf (opcional) é a data de referência; vazio usa a data final.
type PacingInputs struct {
	TotalBudget      float64
	AccumulatedSpend float64
	StartDate        string
	EndDate          string
	AsOf             string
}

// PacingResult é o resultado do cálculo de ritmo de consumo de orçamento.
// PercentConsumed fica na escala 0–1.
type PacingResult struct {
	TotalDays        int     `json:"dias_totais"`
	ElapsedDays      int     `json:"dias_passados"`
	RemainingDays    int     `json:"dias_restantes"`
	TotalBudget      float64 `json:"orcamento_total"`
	AccumulatedSpend float64 `json:"gasto_acumulado"`
	RemainingBudget  float64 `json:"orcamento_restante"`
	PercentConsumed  float64 `json:"perc_consumido"`
	ActualDailyBurn  float64 `json:"burn_atual_dia"`
	IdealDailyBurn   float64 `json:"burn_ideal_dia"`
	DailyBurnDelta   float64 `json:"dif_burn_dia"`
}
