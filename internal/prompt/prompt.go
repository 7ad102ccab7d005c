package prompt

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/worlddata/insights-api/internal/domain"
	"github.com/worlddata/insights-api/internal/facts"
	"github.com/worlddata/insights-api/internal/pacing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Args são os insumos do montador de prompt além da origem e das linhas.
type Args struct {
	DataInicio string
	DataFim    string
	Cliente    string
	PagePath   string
}

// fact é o par rótulo/valor que vai para o bloco FACTS_JSON. Só valores
// pré-formatados entram no prompt — o modelo nunca vê número cru, para não
// fabricar aritmética.
type fact struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// formattedPacing é o bloco PACING_JSON com os cálculos prontos e formatados.
type formattedPacing struct {
	DiasTotais        int    `json:"dias_totais"`
	DiasPassados      int    `json:"dias_passados"`
	DiasRestantes     int    `json:"dias_restantes"`
	BurnAtualDia      string `json:"burn_atual_dia"`
	BurnIdealDia      string `json:"burn_ideal_dia"`
	DifBurnDia        string `json:"dif_burn_dia"`
	OrcamentoRestante string `json:"orcamento_restante"`
	PercConsumido     string `json:"%_consumido"`
}

// Assemble monta o prompt final de uma origem: template com os placeholders
// {dataInicio}, {dataFim}, {cliente} e {pagepath} substituídos em um único
// passe, linha de período/cliente, bloco FACTS_JSON e — somente para a origem
// de pacing — o bloco PACING_JSON. Retorna também o resultado cru do pacing
// para a resposta da API.
func Assemble(
	entry *domain.OriginDefinition,
	rows []domain.Row,
	factRows []domain.FactRow,
	args Args,
) (string, *domain.PacingResult, error) {
	factList := make([]fact, 0, len(factRows))
	for _, f := range factRows {
		factList = append(factList, fact{Label: f.Label, Value: f.Formatted})
	}

	factsJSON, err := json.MarshalIndent(map[string][]fact{"facts": factList}, "", "  ")
	if err != nil {
		return "", nil, errors.Wrap(err, "erro ao serializar facts")
	}

	var pacingResult *domain.PacingResult
	pacingBlock := ""
	if entry.Pacing {
		pacingResult, err = pacingFromRows(rows, args)
		if err != nil {
			return "", nil, err
		}

		formatted := formattedPacing{
			DiasTotais:        pacingResult.TotalDays,
			DiasPassados:      pacingResult.ElapsedDays,
			DiasRestantes:     pacingResult.RemainingDays,
			BurnAtualDia:      facts.FormatBRL(pacingResult.ActualDailyBurn),
			BurnIdealDia:      facts.FormatBRL(pacingResult.IdealDailyBurn),
			DifBurnDia:        facts.FormatBRL(pacingResult.DailyBurnDelta),
			OrcamentoRestante: facts.FormatBRL(pacingResult.RemainingBudget),
			PercConsumido:     facts.FormatPercent(pacingResult.PercentConsumed),
		}

		pacingJSON, err := json.MarshalIndent(map[string]formattedPacing{"pacing": formatted}, "", "  ")
		if err != nil {
			return "", nil, errors.Wrap(err, "erro ao serializar pacing")
		}

		pacingBlock = fmt.Sprintf("\nPACING_JSON:\n%s\n", pacingJSON)
	}

	body := substitute(entry.Prompt, args)

	periodLine := fmt.Sprintf("PERÍODO: %s–%s", args.DataInicio, args.DataFim)
	if args.Cliente != "" {
		periodLine += fmt.Sprintf(" | CLIENTE: %s", args.Cliente)
	}

	text := fmt.Sprintf("%s\n\n---\n%s\nFACTS_JSON:\n%s\n%s", body, periodLine, factsJSON, pacingBlock)

	return text, pacingResult, nil
}

// substitute troca os placeholders nomeados do template em um único passe.
// O conjunto é pequeno e fixo por origem; page-path vazio vira "N/A" em vez de
// remoção condicional de linhas.
func substitute(template string, args Args) string {
	pagePath := args.PagePath
	if pagePath == "" {
		pagePath = facts.NotAvailable
	}

	return strings.NewReplacer(
		"{dataInicio}", args.DataInicio,
		"{dataFim}", args.DataFim,
		"{cliente}", args.Cliente,
		"{pagepath}", pagePath,
	).Replace(template)
}

// pacingFromRows extrai orçamento e gasto das linhas (primeira linha quando
// preenchida, senão a soma) e roda o cálculo de pacing no intervalo pedido.
func pacingFromRows(rows []domain.Row, args Args) (*domain.PacingResult, error) {
	budget := firstOrSum(rows, "Orcamento_Total")
	spend := firstOrSum(rows, "Gasto_Acumulado")

	return pacing.Calc(domain.PacingInputs{
		TotalBudget:      budget,
		AccumulatedSpend: spend,
		StartDate:        args.DataInicio,
		EndDate:          args.DataFim,
	})
}

func firstOrSum(rows []domain.Row, field string) float64 {
	if len(rows) > 0 {
		if v, ok := rows[0].Number(field); ok && v != 0 {
			return v
		}
	}

	total := 0.0
	for _, row := range rows {
		total += row.NumberOrZero(field)
	}

	return total
}
