package facts

import (
	"fmt"
	"strings"

	"github.com/worlddata/insights-api/internal/domain"
)

// AggregateMetric reagrega uma métrica sobre as linhas já agrupadas pelo
// warehouse (tipicamente uma por cliente/dia) e devolve o valor-resumo do
// período: float64 para métricas numéricas, string para categóricas, nil
// quando não há dado (ausência degrada para "N/A" na formatação, nunca para
// pânico ou NaN).
func AggregateMetric(rows []domain.Row, metric domain.MetricDefinition) any {
	switch metric.Agg.Kind {
	case domain.AggSum:
		total := 0.0
		for _, row := range rows {
			if v, ok := row.Number(metric.Field); ok {
				total += v
			}
		}
		return total

	case domain.AggAvg:
		if metric.Agg.WeightBy != "" {
			return weightedAverage(rows, metric.Field, metric.Agg.WeightBy)
		}
		return average(rows, metric.Field)

	case domain.AggRatio:
		var num, den float64
		for _, row := range rows {
			num += row.NumberOrZero(metric.Agg.Num)
			den += row.NumberOrZero(metric.Agg.Den)
		}
		if den <= 0 {
			return nil
		}
		return num / den

	case domain.AggNone:
		return summarizeCategorical(DistinctValues(rows, metric.Field))
	}

	return nil
}

// average é a média aritmética dos valores presentes; nil quando não há nenhum.
func average(rows []domain.Row, field string) any {
	total := 0.0
	count := 0
	for _, row := range rows {
		if v, ok := row.Number(field); ok {
			total += v
			count++
		}
	}

	if count == 0 {
		return nil
	}

	return total / float64(count)
}

// weightedAverage calcula Σ(valor×peso)/Σ(peso), tratando valor ou peso
// ausente como 0; nil quando a soma dos pesos é 0.
func weightedAverage(rows []domain.Row, field, weightBy string) any {
	var num, den float64
	for _, row := range rows {
		num += row.NumberOrZero(field) * row.NumberOrZero(weightBy)
		den += row.NumberOrZero(weightBy)
	}

	if den <= 0 {
		return nil
	}

	return num / den
}

// DistinctValues coleta os valores distintos não vazios de um campo textual,
// preservando a ordem da primeira ocorrência.
func DistinctValues(rows []domain.Row, field string) []string {
	seen := make(map[string]struct{})
	var values []string

	for _, row := range rows {
		v, ok := row.Text(field)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}

	return values
}

// summarizeCategorical resume um campo categórico: valor único vira o próprio
// fato; múltiplos valores viram uma descrição com contagem e até 3 exemplos.
func summarizeCategorical(values []string) any {
	switch len(values) {
	case 0:
		return nil
	case 1:
		return values[0]
	}

	sample := values
	suffix := ""
	if len(values) > 3 {
		sample = values[:3]
		suffix = "..."
	}

	return fmt.Sprintf("%d segmentos: %s%s", len(values), strings.Join(sample, ", "), suffix)
}
