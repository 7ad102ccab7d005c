package domain

// ClientSummary é um item do catálogo de clientes: totais agregados da tabela
// diária de Google Ads, com as datas do primeiro e do último dado disponível.
type ClientSummary struct {
	Name             string  `json:"name"`
	TotalCampaigns   int64   `json:"totalCampaigns"`
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalSpend       float64 `json:"totalSpend"`
	PrimeiraData     string  `json:"primeiraData"`
	UltimaData       string  `json:"ultimaData"`
}

// Campaign é um item do catálogo de campanhas, com os totais do histórico da
// campanha e a janela de datas em que ela aparece na tabela.
type Campaign struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Status           string  `json:"status"`
	Cliente          string  `json:"cliente"`
	TotalRecords     int64   `json:"totalRecords"`
	TotalImpressions int64   `json:"totalImpressions"`
	TotalClicks      int64   `json:"totalClicks"`
	TotalSpend       float64 `json:"totalSpend"`
	PrimeiraData     string  `json:"primeiraData"`
	UltimaData       string  `json:"ultimaData"`
}

// CatalogFilters restringe as listagens do catálogo. Todos os campos são
// opcionais: datas limitam o período agregado, Search filtra clientes por
// nome e Cliente filtra as campanhas de um cliente específico.
type CatalogFilters struct {
	DataInicio string
	DataFim    string
	Search     string
	Cliente    string
}

// Empty indica que nenhum filtro foi informado. Listagens sem filtro podem
// ser servidas do cache aquecido pelo agendador.
func (f CatalogFilters) Empty() bool {
	return f.DataInicio == "" && f.DataFim == "" && f.Search == "" && f.Cliente == ""
}
