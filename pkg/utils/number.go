package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithThreeDecimalPlace é usado para taxas (churn, turnover), que pedem
// mais precisão do que valores monetários
func RoundWithThreeDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*1000) / 1000
}

// ParseLimit converte o parâmetro limit da query string. Valor não numérico ou
// negativo é ignorado (tratado como ausente), nunca rejeitado.
func ParseLimit(raw string) int {
	if raw == "" {
		return 0
	}

	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}

	return limit
}
