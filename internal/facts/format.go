package facts

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/worlddata/insights-api/internal/domain"
)

// NotAvailable é a saída padrão para valor ausente, sob qualquer formato.
const NotAvailable = "N/A"

// FormatValue aplica o formato declarado da métrica ao valor agregado,
// produzindo a string de exibição em pt-BR (vírgula decimal). Agregado nulo
// formata como "N/A" em todos os formatos — nunca é erro.
func FormatValue(format domain.Format, raw any) string {
	if raw == nil {
		return NotAvailable
	}

	if s, ok := raw.(string); ok {
		if s == "" {
			return NotAvailable
		}
		return s
	}

	v, ok := asFloat(raw)
	if !ok {
		return NotAvailable
	}

	switch format {
	case domain.FormatBRL2:
		return FormatBRL(v)
	case domain.FormatPercent1:
		return FormatPercent(v)
	case domain.FormatFloat0:
		return strconv.Itoa(int(math.Round(v)))
	case domain.FormatFloat1:
		return decimalComma(fmt.Sprintf("%.1f", v))
	case domain.FormatFloat2:
		return decimalComma(fmt.Sprintf("%.2f", v))
	case domain.FormatDurationS:
		return fmt.Sprintf("%.0fs", v)
	case domain.FormatString:
		return NotAvailable
	default:
		return FormatInt(v)
	}
}

// FormatBRL formata moeda em reais com duas casas: "R$ 1234,56".
func FormatBRL(v float64) string {
	return "R$ " + decimalComma(fmt.Sprintf("%.2f", v))
}

// FormatPercent formata percentual com uma casa: "65,4%".
//
// Convenção dupla herdada da origem dos dados: valores ≤ 1 são tratados como
// fração 0–1 e multiplicados por 100; valores > 1 já chegam na escala 0–100.
// Isso é ambíguo para percentuais genuínos abaixo de 1 p.p. (0,5% é
// indistinguível de 50%) — quem tiver valores sub-1% precisa pré-escalar.
func FormatPercent(v float64) string {
	p := v
	if v <= 1 {
		p = v * 100
	}

	return decimalComma(fmt.Sprintf("%.1f", p)) + "%"
}

// FormatInt arredonda e agrupa milhares no padrão pt-BR: "1.234.567".
func FormatInt(v float64) string {
	n := int64(math.Round(v))

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return sign + strings.Join(groups, ".")
}

// decimalComma troca o separador decimal para vírgula.
func decimalComma(s string) string {
	return strings.Replace(s, ".", ",", 1)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
