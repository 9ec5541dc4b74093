package utils

import "time"

// IsISODate verifica se a string está no formato yyyy-mm-dd
func IsISODate(dateStr string) bool {
	if dateStr == "" {
		return false
	}

	_, err := time.Parse(time.DateOnly, dateStr)
	return err == nil
}

// YearMonth trunca uma data ISO (yyyy-mm-dd) para yyyy-mm.
// Retorna vazio para datas curtas demais para conter o mês.
func YearMonth(dateStr string) string {
	if len(dateStr) < 7 {
		return ""
	}

	return dateStr[:7]
}
