package meta

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMediaManager_UploadMedia(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Servidor de mídia: banner.jpg responde bytes, missing.jpg responde 404
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/assets/banner.jpg" {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("fake-image-bytes"))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	mockClient := mocks.NewMockClient(ctrl)
	manager := NewMediaManager(mockClient)

	t.Run("falha de uma imagem é registrada e não aborta o lote", func(t *testing.T) {
		mockClient.EXPECT().
			UploadImage("banner.jpg", []byte("fake-image-bytes")).
			Return("hash_abc123", nil)

		result := manager.UploadMedia(
			[]string{
				server.URL + "/assets/banner.jpg",
				server.URL + "/assets/missing.jpg",
			},
			nil,
		)

		assert.Equal(t, []string{"hash_abc123"}, result.ImageHashes)
		assert.Empty(t, result.VideoIDs)
		assert.Len(t, result.Failures, 1)
		assert.Equal(t, server.URL+"/assets/missing.jpg", result.Failures[0].URL)
		assert.Equal(t, domain.MediaKindImage, result.Failures[0].Kind)
		assert.Contains(t, result.Failures[0].Reason, "404")
	})

	t.Run("vídeos são enviados por URL com o nome do arquivo", func(t *testing.T) {
		mockClient.EXPECT().
			UploadVideo("promo.mp4", "https://cdn.example.com/videos/promo.mp4").
			Return("9876543210", nil)

		result := manager.UploadMedia(nil, []string{"https://cdn.example.com/videos/promo.mp4"})

		assert.Empty(t, result.ImageHashes)
		assert.Equal(t, []string{"9876543210"}, result.VideoIDs)
		assert.Empty(t, result.Failures)
	})

	t.Run("rejeição da plataforma no upload de vídeo vira falha isolada", func(t *testing.T) {
		mockClient.EXPECT().
			UploadVideo(gomock.Any(), gomock.Any()).
			Return("", errors.New("formato não suportado"))

		result := manager.UploadMedia(nil, []string{"https://cdn.example.com/videos/bad.avi"})

		assert.Empty(t, result.VideoIDs)
		assert.Len(t, result.Failures, 1)
		assert.Equal(t, domain.MediaKindVideo, result.Failures[0].Kind)
		assert.Equal(t, "formato não suportado", result.Failures[0].Reason)
	})

	t.Run("zero mídias é um resultado válido", func(t *testing.T) {
		result := manager.UploadMedia(nil, nil)

		assert.NotNil(t, result.ImageHashes)
		assert.NotNil(t, result.VideoIDs)
		assert.Empty(t, result.ImageHashes)
		assert.Empty(t, result.VideoIDs)
		assert.Empty(t, result.Failures)
	})
}
