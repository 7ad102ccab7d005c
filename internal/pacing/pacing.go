package pacing

import (
	"time"

	"github.com/pkg/errors"
	"github.com/worlddata/insights-api/internal/domain"
	"github.com/worlddata/insights-api/pkg/utils"
)

const dateLayout = "2006-01-02"

// Calc computa o ritmo de consumo de orçamento de uma campanha a partir de
// dois totais monetários e do intervalo de datas (inclusivo). A data de
// referência (AsOf) é grampeada ao intervalo; vazia usa a data final.
//
// Todas as datas são interpretadas como meia-noite UTC — aritmética em fuso
// local desloca a contagem de dias em bordas de horário de verão.
func Calc(in domain.PacingInputs) (*domain.PacingResult, error) {
	start, err := time.ParseInLocation(dateLayout, in.StartDate, time.UTC)
	if err != nil {
		return nil, errors.Wrap(err, "data de início inválida")
	}

	end, err := time.ParseInLocation(dateLayout, in.EndDate, time.UTC)
	if err != nil {
		return nil, errors.Wrap(err, "data de fim inválida")
	}

	asOf := end
	if in.AsOf != "" {
		asOf, err = time.ParseInLocation(dateLayout, in.AsOf, time.UTC)
		if err != nil {
			return nil, errors.Wrap(err, "data de referência inválida")
		}
	}
	if asOf.After(end) {
		asOf = end
	}

	// Contagem inclusiva de dias, mínimo 1; dias passados grampeados em
	// [1, dias_totais].
	totalDays := inclusiveDays(start, end)
	elapsedDays := inclusiveDays(start, asOf)
	if elapsedDays > totalDays {
		elapsedDays = totalDays
	}
	remainingDays := totalDays - elapsedDays
	if remainingDays < 0 {
		remainingDays = 0
	}

	remainingBudget := in.TotalBudget - in.AccumulatedSpend
	if remainingBudget < 0 {
		remainingBudget = 0
	}

	// Valores monetários diários saem arredondados a duas casas
	actualBurn := 0.0
	if elapsedDays > 0 {
		actualBurn = utils.RoundWithTwoDecimalPlace(in.AccumulatedSpend / float64(elapsedDays))
	}

	idealBurn := 0.0
	if totalDays > 0 {
		idealBurn = utils.RoundWithTwoDecimalPlace(in.TotalBudget / float64(totalDays))
	}

	percentConsumed := 0.0
	if in.TotalBudget > 0 {
		percentConsumed = in.AccumulatedSpend / in.TotalBudget
	}

	return &domain.PacingResult{
		TotalDays:        totalDays,
		ElapsedDays:      elapsedDays,
		RemainingDays:    remainingDays,
		TotalBudget:      in.TotalBudget,
		AccumulatedSpend: in.AccumulatedSpend,
		RemainingBudget:  remainingBudget,
		PercentConsumed:  percentConsumed,
		ActualDailyBurn:  actualBurn,
		IdealDailyBurn:   idealBurn,
		DailyBurnDelta:   actualBurn - idealBurn,
	}, nil
}

// inclusiveDays conta os dias entre duas meias-noites UTC, incluindo as duas
// pontas, com piso em 1.
func inclusiveDays(start, end time.Time) int {
	days := int(end.Sub(start).Round(24*time.Hour).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	return days
}
