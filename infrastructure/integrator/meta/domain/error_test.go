package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorResponse_IsTokenExpired(t *testing.T) {
	tests := []struct {
		name     string
		response ErrorResponse
		expected bool
	}{
		{
			name: "código 190 indica token expirado",
			response: ErrorResponse{
				Error: ErrorDetails{Code: 190, Type: "OAuthException"},
			},
			expected: true,
		},
		{
			name: "OAuthException com subcódigo de expiração",
			response: ErrorResponse{
				Error: ErrorDetails{Code: 102, Type: "OAuthException", ErrorSubcode: 463},
			},
			expected: true,
		},
		{
			name: "OAuthException sem subcódigo de expiração",
			response: ErrorResponse{
				Error: ErrorDetails{Code: 102, Type: "OAuthException", ErrorSubcode: 458},
			},
			expected: false,
		},
		{
			name: "erro comum de parâmetro inválido",
			response: ErrorResponse{
				Error: ErrorDetails{Code: 100, Type: "GraphMethodException"},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.response.IsTokenExpired())
		})
	}
}
