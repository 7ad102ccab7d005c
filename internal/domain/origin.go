package domain

// AggregateMode controla o agrupamento feito pelo builder de SQL.
type AggregateMode string

const (
	// AggregateNone retorna linhas cruas, sem GROUP BY.
	AggregateNone AggregateMode = "none"
	// AggregateByDate agrupa por dia e por cliente.
	AggregateByDate AggregateMode = "by_date"
	// AggregateTotal agrupa apenas por cliente, sem quebra por data.
	AggregateTotal AggregateMode = "total"
)

// OriginDefinition mapeia uma origem analítica lógica para a tabela física e
// descreve como consultá-la e interpretá-la. As definições são configuração
// estática, montadas uma vez na subida do processo e somente leitura depois:
// identificadores daqui são interpolados no SQL, então NUNCA podem vir de
// entrada de usuário.
type OriginDefinition struct {
	Key           string
	Label         string
	Dataset       string
	Table         string
	DateField     string
	ClientField   string
	CampaignField string // vazio quando a origem não tem coluna de campanha
	Metrics       []MetricDefinition
	Prompt        string
	Aggregate     AggregateMode
	Pacing        bool // habilita o bloco de pacing no prompt
}
