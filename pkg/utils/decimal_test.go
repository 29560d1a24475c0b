package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{
			name:     "Formato brasileiro com milhar e decimal",
			input:    "1.234,56",
			expected: 1234.56,
		},
		{
			name:     "Formato com símbolo de moeda",
			input:    "R$ 950,00",
			expected: 950.0,
		},
		{
			name:     "Formato com ponto decimal",
			input:    "1234.56",
			expected: 1234.56,
		},
		{
			name:     "Formato americano com milhar e decimal",
			input:    "1,234.56",
			expected: 1234.56,
		},
		{
			name:     "Apenas vírgula decimal",
			input:    "99,9",
			expected: 99.9,
		},
		{
			name:     "Inteiro sem separadores",
			input:    "1500",
			expected: 1500.0,
		},
		{
			name:     "String vazia vale zero",
			input:    "",
			expected: 0,
		},
		{
			name:     "Valor ilegível vale zero",
			input:    "abc",
			expected: 0,
		},
		{
			name:     "Espaços em volta são ignorados",
			input:    "  R$ 1.000,00  ",
			expected: 1000.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, ParseDecimal(tt.input), 0.0001)
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 66.67, RoundWithTwoDecimalPlace(66.666666))
	assert.Equal(t, 33.33, RoundWithTwoDecimalPlace(33.333333))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 25.0, RoundWithTwoDecimalPlace(25.0))
}
