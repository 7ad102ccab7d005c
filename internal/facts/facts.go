package facts

import (
	"fmt"
	"sort"

	"github.com/worlddata/insights-api/internal/domain"
)

const topSegments = 3

// Build monta a sequência ordenada de fatos de uma origem: um FactRow por
// métrica declarada, seguido dos fatos sintéticos de segmentação para campos
// categóricos com mais de um valor distinto no período. É pura e determinística
// para as mesmas linhas e o mesmo registro.
func Build(rows []domain.Row, metrics []domain.MetricDefinition) []domain.FactRow {
	result := make([]domain.FactRow, 0, len(metrics))

	for _, metric := range metrics {
		raw := AggregateMetric(rows, metric)
		result = append(result, domain.FactRow{
			Label:     metric.Label,
			Field:     metric.Field,
			Raw:       raw,
			Formatted: FormatValue(metric.Format, raw),
		})
	}

	var numericMetrics []domain.MetricDefinition
	for _, metric := range metrics {
		if metric.Agg.Kind != domain.AggNone {
			numericMetrics = append(numericMetrics, metric)
		}
	}

	for _, metric := range metrics {
		if metric.Agg.Kind != domain.AggNone {
			continue
		}
		result = append(result, segmentFacts(rows, metric, numericMetrics)...)
	}

	return result
}

// segmentGroup é o recorte das linhas de um valor categórico com suas
// métricas numéricas reagregadas.
type segmentGroup struct {
	segment string
	metrics map[string]any
}

// segmentFacts expande um campo categórico com múltiplos valores em até 3
// fatos sintéticos ("<rótulo> #1..#3"), ranqueados pela primeira métrica de
// soma (ou, na falta dela, pela primeira métrica numérica). Existe para o
// prompt poder citar líderes de segmento concretos sem lógica por origem.
func segmentFacts(
	rows []domain.Row,
	categorical domain.MetricDefinition,
	numericMetrics []domain.MetricDefinition,
) []domain.FactRow {
	values := DistinctValues(rows, categorical.Field)
	if len(values) <= 1 || len(numericMetrics) == 0 {
		return nil
	}

	rankField := numericMetrics[0].Field
	for _, metric := range numericMetrics {
		if metric.Agg.Kind == domain.AggSum {
			rankField = metric.Field
			break
		}
	}

	groups := groupBySegment(rows, categorical.Field, numericMetrics)
	if len(groups) == 0 {
		return nil
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return rankValue(groups[i], rankField) > rankValue(groups[j], rankField)
	})

	if len(groups) > topSegments {
		groups = groups[:topSegments]
	}

	result := make([]domain.FactRow, 0, len(groups))
	for i, group := range groups {
		ranked, _ := group.metrics[rankField].(float64)
		result = append(result, domain.FactRow{
			Label:     fmt.Sprintf("%s #%d", categorical.Label, i+1),
			Field:     fmt.Sprintf("%s_segment_%d", categorical.Field, i+1),
			Raw:       group.segment,
			Formatted: fmt.Sprintf("%s: %s", group.segment, FormatInt(ranked)),
		})
	}

	return result
}

// groupBySegment agrupa as linhas pelo valor do campo categórico e reagrega
// todas as métricas numéricas dentro de cada grupo.
func groupBySegment(
	rows []domain.Row,
	field string,
	numericMetrics []domain.MetricDefinition,
) []segmentGroup {
	byValue := make(map[string][]domain.Row)
	var order []string

	for _, row := range rows {
		v, ok := row.Text(field)
		if !ok {
			continue
		}
		if _, seen := byValue[v]; !seen {
			order = append(order, v)
		}
		byValue[v] = append(byValue[v], row)
	}

	groups := make([]segmentGroup, 0, len(order))
	for _, segment := range order {
		segmentRows := byValue[segment]
		aggregated := make(map[string]any, len(numericMetrics))
		for _, metric := range numericMetrics {
			aggregated[metric.Field] = AggregateMetric(segmentRows, metric)
		}
		groups = append(groups, segmentGroup{segment: segment, metrics: aggregated})
	}

	return groups
}

// rankValue extrai o valor de ranqueamento de um grupo; ausente vale 0.
func rankValue(group segmentGroup, field string) float64 {
	v, _ := group.metrics[field].(float64)
	return v
}
