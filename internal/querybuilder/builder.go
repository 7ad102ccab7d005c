package querybuilder

import (
	"fmt"
	"strings"

	"github.com/worlddata/insights-api/internal/domain"
	"github.com/worlddata/insights-api/internal/origins"
)

// Classificação de colunas para CAST/SUM. É conhecimento de domínio sobre o
// schema do warehouse, mantido como tabela estática — não é inferido em tempo
// de execução. Colunas fora das duas listas caem no cast NUMERIC genérico.

var intColumns = map[string]struct{}{
	// GA4
	"sessions":        {},
	"screenpageviews": {},
	"activeusers":     {},
	"conversions":     {},
	"propertyid":      {},
	// Ads (Google/Facebook)
	"impressions":       {},
	"clicks":            {},
	"total_impressions": {},
	"total_reach":       {},
	"total_clicks":      {},
	"total_registros":   {},
	"total_purchases":   {},
	// Social (Facebook Engajamento / Instagram)
	"post_impressions":                     {},
	"post_impressions_unique":              {},
	"post_impressions_paid":                {},
	"post_impressions_organic":             {},
	"post_clicks":                          {},
	"post_engagements":                     {},
	"post_activity_by_action_type_comment": {},
	"post_activity_by_action_type_share":   {},
	"post_reactions_like_total":            {},
	"post_reactions_love_total":            {},
	"post_reactions_haha_total":            {},
	"post_reactions_wow_total":             {},
	"post_reactions_anger_total":           {},
	"post_video_views":                     {},
	"post_video_views_organic":             {},
	"views":                                {},
	"reach":                                {},
	"like_count":                           {},
	"comments_count":                       {},
	"saved":                                {},
	"total_interactions":                   {},
	"profile_visits":                       {},
	"follows":                              {},
	// Pacing
	"ID_Cliente": {},
}

var floatColumns = map[string]struct{}{
	// GA4
	"engagementrate":         {},
	"bouncerate":             {},
	"userengagementduration": {},
	"totalrevenue":           {},
	// Ads
	"spend":                 {},
	"total_spend":           {},
	"valor_total_compras":   {},
	"all_conversions_value": {},
	"cost_per_conversion":   {},
	"conversions_value":     {},
	// Pacing
	"Orcamento_Total":              {},
	"Gasto_Acumulado":              {},
	"Orcamento_Restante":           {},
	"Percentual_Consumido":         {},
	"Investimento_Diario_Ajustado": {},
}

// Colunas textuais: nunca agregam, entram cruas no SELECT.
var nonAggColumns = map[string]struct{}{
	"city":             {},
	"sessionmedium":    {},
	"sessionsource":    {},
	"devicecategory":   {},
	"pagepath":         {},
	"pagetitle":        {},
	"audiencename":     {},
	"area":             {},
	"produto":          {},
	"origem":           {},
	"Cliente":          {},
	"Status_Orcamento": {},
}

// quote envolve um identificador em crases (estilo BigQuery).
func quote(col string) string {
	return fmt.Sprintf("`%s`", col)
}

// selectExpr gera a expressão de SELECT de uma coluna base, com agregação
// quando o modo pedir: textuais e modo "none" saem cruas; numéricas saem como
// SUM(SAFE_CAST(...)) com o tipo vindo da classificação estática.
func selectExpr(col string, aggregate domain.AggregateMode) string {
	q := quote(col)

	if _, textual := nonAggColumns[col]; textual || aggregate == domain.AggregateNone {
		return q
	}

	if _, ok := intColumns[col]; ok {
		return fmt.Sprintf("SUM(SAFE_CAST(%s AS INT64)) AS %s", q, q)
	}
	if _, ok := floatColumns[col]; ok {
		return fmt.Sprintf("SUM(SAFE_CAST(%s AS FLOAT64)) AS %s", q, q)
	}

	return fmt.Sprintf("SUM(SAFE_CAST(%s AS NUMERIC)) AS %s", q, q)
}

// Query é o resultado do builder: o SQL final e o mapa de parâmetros nomeados.
// Só os VALORES são parametrizados (@start, @end, @client, @campaign_ids);
// identificadores de tabela e coluna são interpolados e por isso só podem vir
// do registro estático de origens — essa é a fronteira de confiança.
type Query struct {
	SQL    string
	Params map[string]any
}

// BuildInsightSQL monta deterministicamente a consulta analítica de uma origem
// para o intervalo [start, end] (inclusivo, YYYY-MM-DD). Cliente em branco ou
// só espaços significa "sem filtro de cliente", nunca igualdade com string
// vazia. CampaignIDs só entra quando a origem declara coluna de campanha.
func BuildInsightSQL(
	projectID string,
	entry *domain.OriginDefinition,
	start string,
	end string,
	client string,
	campaignIDs []string,
) (*Query, error) {
	cols, err := origins.BaseFields(entry.Metrics)
	if err != nil {
		return nil, err
	}

	tableFQN := fmt.Sprintf("`%s.%s.%s`", projectID, entry.Dataset, entry.Table)
	aggregate := entry.Aggregate
	if aggregate == "" {
		aggregate = domain.AggregateNone
	}

	// SELECT fixos: bucket de data (exceto no modo total) e cliente padronizado
	selectList := make([]string, 0, len(cols)+2)
	if aggregate != domain.AggregateTotal {
		selectList = append(selectList, fmt.Sprintf("DATE(%s) AS __date", quote(entry.DateField)))
	}
	selectList = append(selectList, fmt.Sprintf("CAST(%s AS STRING) AS __client", quote(entry.ClientField)))

	for _, col := range cols {
		selectList = append(selectList, selectExpr(col, aggregate))
	}

	// Filtros: o predicado de data é sempre único; o de cliente compara
	// normalizando caixa e espaços dos dois lados.
	whereParts := []string{
		fmt.Sprintf("DATE(%s) BETWEEN @start AND @end", quote(entry.DateField)),
	}

	params := map[string]any{
		"start": start,
		"end":   end,
	}

	if trimmed := strings.TrimSpace(client); trimmed != "" {
		whereParts = append(whereParts, fmt.Sprintf(
			"LOWER(TRIM(CAST(%s AS STRING))) = LOWER(TRIM(@client))", quote(entry.ClientField),
		))
		params["client"] = trimmed
	}

	if len(campaignIDs) > 0 && entry.CampaignField != "" {
		whereParts = append(whereParts, fmt.Sprintf(
			"CAST(%s AS STRING) IN UNNEST(@campaign_ids)", quote(entry.CampaignField),
		))
		params["campaign_ids"] = campaignIDs
	}

	// GROUP BY conforme o modo de agregação
	var groupBy []string
	if aggregate != domain.AggregateNone {
		if aggregate == domain.AggregateByDate {
			groupBy = append(groupBy, "__date")
		}
		groupBy = append(groupBy, "__client")
	}

	orderClause := "ORDER BY __date ASC"
	if aggregate == domain.AggregateTotal {
		orderClause = "ORDER BY __client ASC"
	}

	var sb strings.Builder
	sb.WriteString("SELECT\n  ")
	sb.WriteString(strings.Join(selectList, ",\n  "))
	sb.WriteString("\nFROM ")
	sb.WriteString(tableFQN)
	sb.WriteString("\nWHERE ")
	sb.WriteString(strings.Join(whereParts, " AND "))
	if len(groupBy) > 0 {
		sb.WriteString("\nGROUP BY ")
		sb.WriteString(strings.Join(groupBy, ", "))
	}
	sb.WriteString("\n")
	sb.WriteString(orderClause)

	return &Query{SQL: sb.String(), Params: params}, nil
}
