package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdCreative_ResolveLink(t *testing.T) {
	product := NewProduct(Product{BaseURL: "https://pay.hotmart.com/A12345"})

	tests := []struct {
		name        string
		destination string
		expected    string
	}{
		{
			name:        "destino vazio cai na página de vendas",
			destination: "",
			expected:    "https://pay.hotmart.com/A12345",
		},
		{
			name:        "chave do mapa resolve para a variante derivada",
			destination: URLCheckout,
			expected:    "https://pay.hotmart.com/A12345?ap=838e",
		},
		{
			name:        "chave desconhecida é tratada como URL literal",
			destination: "https://landing.example.com/oferta",
			expected:    "https://landing.example.com/oferta",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creative := AdCreative{LinkDestination: tt.destination}
			assert.Equal(t, tt.expected, creative.ResolveLink(product))
		})
	}
}
