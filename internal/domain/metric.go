package domain

// AggKind define como uma métrica é agregada entre as linhas do warehouse.
type AggKind string

const (
	AggSum   AggKind = "sum"
	AggAvg   AggKind = "avg"
	AggRatio AggKind = "ratio"
	AggNone  AggKind = "none"
)

// Aggregation descreve a semântica de agregação de uma métrica.
// Para AggAvg, WeightBy (opcional) indica o campo de ponderação.
// Para AggRatio, Num e Den indicam numerador e denominador (Σnum/Σden).
type Aggregation struct {
	Kind     AggKind
	WeightBy string
	Num      string
	Den      string
}

// Format define como o valor agregado é exibido na saída.
type Format string

const (
	FormatInt       Format = "int"
	FormatFloat0    Format = "float0"
	FormatFloat1    Format = "float1"
	FormatFloat2    Format = "float2"
	FormatPercent1  Format = "percent1"
	FormatBRL2      Format = "brl2"
	FormatDurationS Format = "duration_s"
	FormatString    Format = "string"
)

// MetricDefinition descreve uma coluna analítica de uma origem: o campo físico
// no dataset (ou pseudo-campo para derivadas), o rótulo amigável, como agregar
// e como formatar. Métricas opcionais viram "N/A" quando faltar dado, sem quebrar.
type MetricDefinition struct {
	Field    string
	Label    string
	Agg      Aggregation
	Format   Format
	Optional bool
}

// Sum cria uma agregação de soma simples.
func Sum() Aggregation { return Aggregation{Kind: AggSum} }

// Avg cria uma agregação de média aritmética simples.
func Avg() Aggregation { return Aggregation{Kind: AggAvg} }

// WeightedAvg cria uma média ponderada pelo campo informado.
func WeightedAvg(weightBy string) Aggregation {
	return Aggregation{Kind: AggAvg, WeightBy: weightBy}
}

// Ratio cria uma métrica derivada Σ(num)/Σ(den).
func Ratio(num, den string) Aggregation {
	return Aggregation{Kind: AggRatio, Num: num, Den: den}
}

// Categorical marca um campo textual sem agregação numérica.
func Categorical() Aggregation { return Aggregation{Kind: AggNone} }

// FactRow é um fato rotulado e pré-formatado entregue ao modelo de linguagem.
// Raw guarda o valor agregado (float64, string ou nil); Formatted é a única
// representação que aparece no prompt.
type FactRow struct {
	Label     string `json:"label"`
	Field     string `json:"field"`
	Raw       any    `json:"raw"`
	Formatted string `json:"formatted"`
}
