package domain

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct_DerivaVariantesDeURL(t *testing.T) {
	product := NewProduct(Product{
		Name:    "Curso de Tráfego",
		BaseURL: "https://pay.hotmart.com/A12345",
	})

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{
			name:     "sales é a BaseURL sem alteração",
			key:      URLSales,
			expected: "https://pay.hotmart.com/A12345",
		},
		{
			name:     "product recebe o sufixo da página do produto",
			key:      URLProduct,
			expected: "https://pay.hotmart.com/A12345?dp=1",
		},
		{
			name:     "checkout recebe o sufixo de checkout direto",
			key:      URLCheckout,
			expected: "https://pay.hotmart.com/A12345?ap=838e",
		},
		{
			name:     "order_bump recebe o sufixo de order bump",
			key:      URLOrderBump,
			expected: "https://pay.hotmart.com/A12345?ap=25f0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := product.URL(tt.key)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestProduct_URL_ChaveDesconhecida(t *testing.T) {
	product := NewProduct(Product{BaseURL: "https://example.com/p"})

	url, ok := product.URL("landing")

	assert.False(t, ok)
	assert.Empty(t, url)
}

func TestProduct_SalesURL(t *testing.T) {
	product := NewProduct(Product{BaseURL: "https://example.com/p"})

	assert.Equal(t, "https://example.com/p", product.SalesURL())
}

// Produtos decodificados de JSON chegam sem o mapa derivado; quem decodifica
// precisa reconstruir via NewProduct.
func TestProduct_DecodificadoDeJSONNaoTemURLsDerivadas(t *testing.T) {
	var json = jsoniter.ConfigCompatibleWithStandardLibrary

	var decoded Product
	err := json.Unmarshal([]byte(`{"name":"Curso","base_url":"https://example.com/p"}`), &decoded)
	assert.NoError(t, err)

	_, ok := decoded.URL(URLSales)
	assert.False(t, ok)

	rebuilt := NewProduct(decoded)
	url, ok := rebuilt.URL(URLCheckout)
	assert.True(t, ok)
	assert.Equal(t, "https://example.com/p?ap=838e", url)
}
