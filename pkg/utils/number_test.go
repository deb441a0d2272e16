package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToCents(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected int64
	}{
		{name: "valor inteiro", value: 150, expected: 15000},
		{name: "valor com centavos", value: 99.90, expected: 9990},
		{name: "arredonda fração de centavo", value: 10.006, expected: 1001},
		{name: "zero", value: 0, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToCents(tt.value))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 10.46, RoundWithTwoDecimalPlace(10.456))
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
}
