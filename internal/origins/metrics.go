package origins

import (
	"github.com/worlddata/insights-api/internal/domain"
)

// Métricas por origem. As taxas do GA4 são ponderadas por sessões; as
// derivadas (ratio) referenciam apenas colunas reais do dataset — BaseFields
// garante que numerador, denominador e pesos entrem no SELECT mesmo quando não
// são exibidos isoladamente.

var ga4Metrics = []domain.MetricDefinition{
	{Field: "sessions", Label: "Sessões", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "activeusers", Label: "Usuários ativos", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "screenpageviews", Label: "Pageviews", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "userengagementduration", Label: "Tempo engajado total (s)", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "engagementrate", Label: "Engagement rate", Agg: domain.WeightedAvg("sessions"), Format: domain.FormatPercent1},
	{Field: "bouncerate", Label: "Bounce rate", Agg: domain.WeightedAvg("sessions"), Format: domain.FormatPercent1},
	{Field: "conversions", Label: "Conversões", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "totalrevenue", Label: "Receita", Agg: domain.Sum(), Format: domain.FormatBRL2},
	// Campos categóricos para análise segmentada
	{Field: "devicecategory", Label: "Dispositivo", Agg: domain.Categorical(), Format: domain.FormatString},
	{Field: "city", Label: "Cidade", Agg: domain.Categorical(), Format: domain.FormatString},
	// Derivadas
	{Field: "conv_per_session", Label: "Conv./Sessão", Agg: domain.Ratio("conversions", "sessions"), Format: domain.FormatFloat2},
	{Field: "pv_per_session", Label: "PV/Sessão", Agg: domain.Ratio("screenpageviews", "sessions"), Format: domain.FormatFloat2},
	{Field: "avg_engaged_s", Label: "Tempo médio engajado (s)", Agg: domain.Ratio("userengagementduration", "activeusers"), Format: domain.FormatDurationS},
}

var googleAdsMetrics = []domain.MetricDefinition{
	{Field: "impressions", Label: "Impressões", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "clicks", Label: "Cliques", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "ctr", Label: "CTR", Agg: domain.Ratio("clicks", "impressions"), Format: domain.FormatPercent1},
	{Field: "spend", Label: "Gasto", Agg: domain.Sum(), Format: domain.FormatBRL2},
	{Field: "cpc", Label: "CPC", Agg: domain.Ratio("spend", "clicks"), Format: domain.FormatBRL2},
	{Field: "conversions", Label: "Conversões", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "cvr", Label: "Taxa de conversão", Agg: domain.Ratio("conversions", "clicks"), Format: domain.FormatPercent1},
	{Field: "cpa", Label: "CPA", Agg: domain.Ratio("spend", "conversions"), Format: domain.FormatBRL2},
	{Field: "all_conversions_value", Label: "Receita", Agg: domain.Sum(), Format: domain.FormatBRL2},
	{Field: "roas", Label: "ROAS", Agg: domain.Ratio("all_conversions_value", "spend"), Format: domain.FormatFloat2},
	{Field: "cost_per_conversion", Label: "Custo por conversão", Agg: domain.Sum(), Format: domain.FormatBRL2, Optional: true},
	{Field: "cost_per_all_conversions", Label: "Custo por todas conversões", Agg: domain.Sum(), Format: domain.FormatBRL2, Optional: true},
	{Field: "conversions_value", Label: "Valor das conversões", Agg: domain.Sum(), Format: domain.FormatBRL2, Optional: true},
}

var funilFacebookMetrics = []domain.MetricDefinition{
	{Field: "total_impressions", Label: "Impressões", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "total_reach", Label: "Alcance", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "total_clicks", Label: "Cliques", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "ctr", Label: "CTR", Agg: domain.Ratio("total_clicks", "total_impressions"), Format: domain.FormatPercent1},
	{Field: "total_spend", Label: "Gasto", Agg: domain.Sum(), Format: domain.FormatBRL2},
	{Field: "total_registros", Label: "Registros", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "total_purchases", Label: "Compras", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "valor_total_compras", Label: "Receita", Agg: domain.Sum(), Format: domain.FormatBRL2},
	{Field: "cpr", Label: "CPR", Agg: domain.Ratio("total_spend", "total_registros"), Format: domain.FormatBRL2, Optional: true},
	{Field: "cpa", Label: "CPA", Agg: domain.Ratio("total_spend", "total_purchases"), Format: domain.FormatBRL2, Optional: true},
	{Field: "roas", Label: "ROAS", Agg: domain.Ratio("valor_total_compras", "total_spend"), Format: domain.FormatFloat2},
	{Field: "ticket_medio", Label: "Ticket médio", Agg: domain.Ratio("valor_total_compras", "total_purchases"), Format: domain.FormatBRL2, Optional: true},
}

var engajamentoFacebookMetrics = []domain.MetricDefinition{
	{Field: "post_impressions", Label: "Impressões totais", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_impressions_unique", Label: "Impressões únicas", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_impressions_paid", Label: "Impressões pagas", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_impressions_organic", Label: "Impressões orgânicas", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_clicks", Label: "Cliques", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_engagements", Label: "Engajamentos", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_activity_by_action_type_comment", Label: "Comentários", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_activity_by_action_type_share", Label: "Compartilhamentos", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_reactions_like_total", Label: "Reações like", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_reactions_love_total", Label: "Reações love", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_reactions_haha_total", Label: "Reações haha", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_reactions_wow_total", Label: "Reações wow", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_reactions_anger_total", Label: "Reações anger", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_video_views", Label: "Views de vídeo (total)", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "post_video_views_organic", Label: "Views de vídeo (orgânico)", Agg: domain.Sum(), Format: domain.FormatInt},
	// Derivadas
	{Field: "er", Label: "ER", Agg: domain.Ratio("post_engagements", "post_impressions"), Format: domain.FormatPercent1, Optional: true},
	{Field: "share_rate", Label: "Share rate", Agg: domain.Ratio("post_activity_by_action_type_share", "post_impressions"), Format: domain.FormatPercent1, Optional: true},
	{Field: "comment_rate", Label: "Comment rate", Agg: domain.Ratio("post_activity_by_action_type_comment", "post_impressions"), Format: domain.FormatPercent1, Optional: true},
}

var engajamentoInstagramMetrics = []domain.MetricDefinition{
	{Field: "views", Label: "Views", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "reach", Label: "Alcance", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "like_count", Label: "Curtidas", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "comments_count", Label: "Comentários", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "saved", Label: "Salvamentos", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "total_interactions", Label: "Interações totais", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "profile_visits", Label: "Visitas ao perfil", Agg: domain.Sum(), Format: domain.FormatInt},
	{Field: "follows", Label: "Novos seguidores", Agg: domain.Sum(), Format: domain.FormatInt},
	// Derivadas
	{Field: "er", Label: "ER", Agg: domain.Ratio("total_interactions", "views"), Format: domain.FormatPercent1, Optional: true},
	{Field: "save_rate", Label: "Save rate", Agg: domain.Ratio("saved", "views"), Format: domain.FormatPercent1, Optional: true},
	{Field: "follow_rate", Label: "Follow rate", Agg: domain.Ratio("follows", "profile_visits"), Format: domain.FormatPercent1, Optional: true},
	{Field: "vtr", Label: "View-through", Agg: domain.Ratio("views", "reach"), Format: domain.FormatPercent1, Optional: true},
}

var pacingMetrics = []domain.MetricDefinition{
	{Field: "Orcamento_Total", Label: "Orçamento total (R$)", Agg: domain.Sum(), Format: domain.FormatBRL2},
	{Field: "Gasto_Acumulado", Label: "Gasto acumulado (R$)", Agg: domain.Sum(), Format: domain.FormatBRL2},
	{Field: "Orcamento_Restante", Label: "Orçamento restante (R$)", Agg: domain.Sum(), Format: domain.FormatBRL2, Optional: true},
	{Field: "Percentual_Consumido", Label: "% Consumido", Agg: domain.Avg(), Format: domain.FormatPercent1, Optional: true},
	{Field: "Dias_Restantes", Label: "Dias restantes (origem)", Agg: domain.Avg(), Format: domain.FormatFloat0, Optional: true},
	{Field: "Investimento_Diario_Ajustado", Label: "Invest. diário ajustado", Agg: domain.Avg(), Format: domain.FormatBRL2, Optional: true},
	{Field: "Status_Orcamento", Label: "Status do orçamento", Agg: domain.Categorical(), Format: domain.FormatString, Optional: true},
}
