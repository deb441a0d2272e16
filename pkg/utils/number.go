package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// ToCents converte um valor monetário para a menor unidade da moeda,
// a convenção usada pela API do Meta para orçamentos
func ToCents(f float64) int64 {
	return int64(math.Round(f * 100))
}
