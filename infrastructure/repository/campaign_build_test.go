package repository

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

// stubRow simula o Scan do database/sql atribuindo valores pré-definidos
type stubRow struct {
	values []interface{}
}

func (s *stubRow) Scan(dest ...interface{}) error {
	for i, d := range dest {
		if s.values[i] == nil {
			continue
		}
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(s.values[i]))
	}
	return nil
}

func TestMarshalUploadFailures(t *testing.T) {
	t.Run("sem falhas a coluna fica NULL", func(t *testing.T) {
		data, err := marshalUploadFailures(nil)

		assert.NoError(t, err)
		assert.Nil(t, data)
	})

	t.Run("falhas são serializadas como JSON", func(t *testing.T) {
		failures := []domain.MediaUploadFailure{
			{URL: "https://cdn.example.com/broken.jpg", Kind: domain.MediaKindImage, Reason: "timeout"},
			{URL: "https://cdn.example.com/video.mp4", Kind: domain.MediaKindVideo, Reason: "(#100) Invalid parameter"},
		}

		data, err := marshalUploadFailures(failures)
		assert.NoError(t, err)

		var decoded []domain.MediaUploadFailure
		assert.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, failures, decoded)
	})
}

func TestScanBuild(t *testing.T) {
	campaignID := "cmp_001"
	createdAt := time.Date(2025, 3, 7, 10, 0, 0, 0, time.UTC)

	t.Run("recupera as falhas de upload da coluna JSONB", func(t *testing.T) {
		failures := []domain.MediaUploadFailure{
			{URL: "https://cdn.example.com/broken.jpg", Kind: domain.MediaKindImage, Reason: "timeout"},
		}

		failuresJSON, err := marshalUploadFailures(failures)
		assert.NoError(t, err)

		build, err := scanBuild(&stubRow{values: []interface{}{
			"bld_001",
			&campaignID,
			"Lancamento_20250307",
			domain.BuildStatusCompleted,
			1,
			2,
			2,
			0,
			failuresJSON,
			nil,
			createdAt,
		}})

		assert.NoError(t, err)
		assert.Equal(t, "bld_001", build.ID)
		assert.Equal(t, "cmp_001", *build.CampaignID)
		assert.Equal(t, failures, build.UploadFailures)
	})

	t.Run("coluna NULL resulta em lista vazia", func(t *testing.T) {
		build, err := scanBuild(&stubRow{values: []interface{}{
			"bld_002",
			&campaignID,
			"Lancamento_20250307",
			domain.BuildStatusCompleted,
			1,
			2,
			2,
			0,
			nil,
			nil,
			createdAt,
		}})

		assert.NoError(t, err)
		assert.Empty(t, build.UploadFailures)
	})
}
