package utils

import "math"

// RoundWithTwoDecimalPlace arredonda para duas casas decimais. Usado nos
// valores monetários diários do pacing de orçamento.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}
