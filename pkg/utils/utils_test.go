package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLimit(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int
	}{
		{name: "Vazio é ausente", raw: "", expected: 0},
		{name: "Valor válido", raw: "10", expected: 10},
		{name: "Não numérico é ignorado", raw: "abc", expected: 0},
		{name: "Negativo é ignorado", raw: "-5", expected: 0},
		{name: "Fracionário é ignorado", raw: "2.5", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseLimit(tt.raw))
		})
	}
}

func TestIsISODate(t *testing.T) {
	assert.True(t, IsISODate("2024-01-31"))
	assert.False(t, IsISODate("31/01/2024"))
	assert.False(t, IsISODate("2024-13-01"))
	assert.False(t, IsISODate(""))
}

func TestYearMonth(t *testing.T) {
	assert.Equal(t, "2024-01", YearMonth("2024-01-15"))
	assert.Equal(t, "2024-12", YearMonth("2024-12"))
	assert.Equal(t, "", YearMonth("2024"))
}

func TestRounding(t *testing.T) {
	assert.Equal(t, 0.67, RoundWithTwoDecimalPlace(2.0/3.0))
	assert.Equal(t, 0.667, RoundWithThreeDecimalPlace(2.0/3.0))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 1550.0, RoundWithTwoDecimalPlace(1550))
}

func TestGenerateID(t *testing.T) {
	first, err := GenerateID()
	assert.NoError(t, err)

	second, err := GenerateID()
	assert.NoError(t, err)

	assert.Len(t, first, 6)
	assert.NotEqual(t, first, second)
}
