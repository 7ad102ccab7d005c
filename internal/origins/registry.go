package origins

import (
	"sort"
	"strings"

	"github.com/worlddata/insights-api/internal/domain"
)

// registry é o mapa canônico de origens analíticas. Montado uma vez na subida
// do processo e somente leitura depois; é configuração confiável em código —
// os identificadores daqui são interpolados no SQL pelo builder, por isso
// jamais podem ser populados a partir de entrada de usuário.
var registry = map[string]domain.OriginDefinition{
	"CampanhaGoogleAnalytics": {
		Key:         "CampanhaGoogleAnalytics",
		Label:       "Campanha Google Analytics (GA4)",
		Dataset:     "ga4",
		Table:       "Consolidado_GA4",
		DateField:   "data",
		ClientField: "cliente",
		Metrics:     ga4Metrics,
		Prompt:      promptGA4,
		Aggregate:   domain.AggregateByDate,
	},
	"CampanhaGoogleAds": {
		Key:           "CampanhaGoogleAds",
		Label:         "Campanha Google Ads",
		Dataset:       "Ads",
		Table:         "Google_Daily",
		DateField:     "data",
		ClientField:   "cliente",
		CampaignField: "campaign_id",
		Metrics:       googleAdsMetrics,
		Prompt:        promptGoogleAds,
		Aggregate:     domain.AggregateByDate,
	},
	"Funil_Granular": {
		Key:         "Funil_Granular",
		Label:       "Tráfego Facebook Ads",
		Dataset:     "Ads",
		Table:       "Funil_Granular",
		DateField:   "data_inicio",
		ClientField: "account_name",
		Metrics:     funilFacebookMetrics,
		Prompt:      promptFacebookAds,
		Aggregate:   domain.AggregateByDate,
	},
	"EngajamentoFacebook": {
		Key:         "EngajamentoFacebook",
		Label:       "Growth Facebook",
		Dataset:     "Midias",
		Table:       "EngajamentoFacebook",
		DateField:   "data",
		ClientField: "cliente",
		Metrics:     engajamentoFacebookMetrics,
		Prompt:      promptEngajamentoFacebook,
		Aggregate:   domain.AggregateByDate,
	},
	"EngajamentoInstagram": {
		Key:         "EngajamentoInstagram",
		Label:       "Growth Instagram",
		Dataset:     "Midias_Instagram",
		Table:       "EngajamentoInstagram",
		DateField:   "data",
		ClientField: "cliente",
		Metrics:     engajamentoInstagramMetrics,
		Prompt:      promptEngajamentoInstagram,
		Aggregate:   domain.AggregateByDate,
	},
	"PacingOrcamento": {
		Key:         "PacingOrcamento",
		Label:       "Análise de Pacing de Orçamento",
		Dataset:     "Auxiliar",
		Table:       "OrcamentoConsolidado",
		DateField:   "Data_Inicio",
		ClientField: "Cliente",
		Metrics:     pacingMetrics,
		Prompt:      promptPacing,
		Aggregate:   domain.AggregateTotal,
		Pacing:      true,
	},
}

// Lookup resolve a chave de origem para sua definição. Chave desconhecida
// retorna *InvalidOriginError, distinguível dos demais erros para que a camada
// HTTP responda 400 em vez de 500.
func Lookup(key string) (*domain.OriginDefinition, error) {
	entry, ok := registry[key]
	if !ok {
		return nil, &InvalidOriginError{Key: key}
	}

	return &entry, nil
}

// Keys lista as chaves de origem disponíveis, em ordem estável.
func Keys() []string {
	keys := make([]string, 0, len(registry))
	for key := range registry {
		keys = append(keys, key)
	}

	sort.Strings(keys)
	return keys
}

// BaseFields deriva o conjunto mínimo de colunas FÍSICAS que o SELECT precisa
// para computar todas as métricas da lista: para ratio entram numerador e
// denominador; para média ponderada entram o campo e o peso; nos demais casos
// o próprio campo. O resultado é deduplicado preservando a ordem de inserção
// (determinismo do SQL gerado). Coluna em branco é erro de configuração e
// falha alto com *SchemaError em vez de emitir SQL malformado.
func BaseFields(metrics []domain.MetricDefinition) ([]string, error) {
	seen := make(map[string]struct{})
	fields := make([]string, 0, len(metrics))

	add := func(col string) error {
		if strings.TrimSpace(col) == "" {
			return &SchemaError{Context: "BaseFields", Detail: "coluna em branco no registro de métricas"}
		}
		if _, ok := seen[col]; !ok {
			seen[col] = struct{}{}
			fields = append(fields, col)
		}
		return nil
	}

	for _, m := range metrics {
		switch m.Agg.Kind {
		case domain.AggRatio:
			if err := add(m.Agg.Num); err != nil {
				return nil, err
			}
			if err := add(m.Agg.Den); err != nil {
				return nil, err
			}
		case domain.AggAvg:
			if err := add(m.Field); err != nil {
				return nil, err
			}
			if m.Agg.WeightBy != "" {
				if err := add(m.Agg.WeightBy); err != nil {
					return nil, err
				}
			}
		default:
			if err := add(m.Field); err != nil {
				return nil, err
			}
		}
	}

	return fields, nil
}
