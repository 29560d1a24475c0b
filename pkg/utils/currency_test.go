package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{
			name:     "Valor com milhar e centavos",
			input:    1234.56,
			expected: "R$ 1.234,56",
		},
		{
			name:     "Valor redondo deve manter os centavos",
			input:    500,
			expected: "R$ 500,00",
		},
		{
			name:     "Centavos devem ser arredondados para duas casas",
			input:    10.999,
			expected: "R$ 11,00",
		},
		{
			name:     "Zero",
			input:    0,
			expected: "R$ 0,00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBRL(tt.input))
		})
	}
}
