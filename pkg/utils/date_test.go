package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateStamp(t *testing.T) {
	stamp := DateStamp(time.Date(2025, 3, 7, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, "20250307", stamp)
}

func TestParseDate(t *testing.T) {
	t.Run("data válida", func(t *testing.T) {
		date, err := ParseDate("2025-03-07")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 3, 7, 0, 0, 0, 0, time.UTC), *date)
	})

	t.Run("string vazia retorna zero value", func(t *testing.T) {
		date, err := ParseDate("")
		assert.NoError(t, err)
		assert.True(t, date.IsZero())
	})

	t.Run("formato inválido", func(t *testing.T) {
		_, err := ParseDate("07/03/2025")
		assert.Error(t, err)
	})
}
