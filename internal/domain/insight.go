package domain

// InsightRequest é o payload da rota de insight automatizado. Table é a chave
// da origem no registro; Cliente aceita um nome único ou uma lista separada
// por vírgula (modo multi-cliente); CampaignIDs restringe a consulta a
// campanhas específicas quando a origem declara coluna de campanha.
type InsightRequest struct {
	Table       string   `json:"table" validate:"required"`
	DataInicio  string   `json:"dataInicio" validate:"required,datetime=2006-01-02"`
	DataFim     string   `json:"dataFim" validate:"required,datetime=2006-01-02"`
	Cliente     string   `json:"cliente"`
	PagePath    string   `json:"pagepath"`
	CampaignIDs []string `json:"campaignIds"`
}

// InsightResult é a resposta de uma execução do pipeline para um cliente.
// Facts e Pacing carregam apenas valores pré-formatados; Prompt é o texto
// exato enviado ao modelo e Insight é o texto gerado.
type InsightResult struct {
	ReportID string        `json:"report_id"`
	Origin   string        `json:"origin"`
	Cliente  string        `json:"cliente,omitempty"`
	SQL      string        `json:"sql"`
	Data     []Row         `json:"data"`
	Facts    []FactRow     `json:"facts"`
	Pacing   *PacingResult `json:"pacing,omitempty"`
	Prompt   string        `json:"prompt"`
	Insight  string        `json:"insight"`
	NoData   bool          `json:"no_data,omitempty"`
}
