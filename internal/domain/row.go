package domain

// Row é uma linha do warehouse com tipagem frouxa: campos podem faltar, vir
// nulos ou com tipos numéricos variados (o driver devolve int64, float64 ou
// string conforme a coluna). Os acessores abaixo normalizam tudo em um único
// sentinela de ausência antes de qualquer agregador tocar no valor.
type Row map[string]any

// Number devolve o valor numérico do campo. O segundo retorno é falso quando o
// campo está ausente, nulo ou não é conversível em número.
func (r Row) Number(field string) (float64, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, false
	}

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

// NumberOrZero devolve o valor numérico do campo, tratando ausência como 0.
func (r Row) NumberOrZero(field string) float64 {
	n, _ := r.Number(field)
	return n
}

// Text devolve o valor textual do campo. O segundo retorno é falso quando o
// campo está ausente, nulo ou vazio.
func (r Row) Text(field string) (string, bool) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", false
	}

	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}

	return s, true
}
