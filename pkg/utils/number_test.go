package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{
			name:     "Zero permanece zero",
			input:    0,
			expected: 0,
		},
		{
			name:     "Arredonda para cima",
			input:    23.336,
			expected: 23.34,
		},
		{
			name:     "Arredonda para baixo",
			input:    23.333,
			expected: 23.33,
		},
		{
			name:     "Valor negativo",
			input:    -1.005,
			expected: -1,
		},
		{
			name:     "Valor já com duas casas",
			input:    150.25,
			expected: 150.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.RoundWithTwoDecimalPlace(tt.input))
		})
	}
}
