package meta

import (
	"fmt"
	"net/url"
	"path"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/pkg/utils"
)

// MediaManager envia as mídias do produto para a biblioteca da conta de
// anúncios. Falhas são isoladas por mídia: uma imagem que não sobe é
// registrada e pulada, nunca aborta o lote.
type MediaManager struct {
	client metaclient.Client
}

func NewMediaManager(client metaclient.Client) *MediaManager {
	return &MediaManager{
		client: client,
	}
}

// UploadMedia sobe todas as imagens e vídeos informados e devolve os
// identificadores aceitos pela plataforma junto com as falhas individuais.
// Zero mídias enviadas é um resultado válido.
func (m *MediaManager) UploadMedia(imageURLs, videoURLs []string) *domain.MediaUploadResult {
	result := &domain.MediaUploadResult{
		ImageHashes: []string{},
		VideoIDs:    []string{},
	}

	for _, imageURL := range imageURLs {
		hash, err := m.uploadImage(imageURL)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"image_url": imageURL,
				"error":     err.Error(),
			}).Warn("launch: failed to upload image, skipping asset")

			result.Failures = append(result.Failures, domain.MediaUploadFailure{
				URL:    imageURL,
				Kind:   domain.MediaKindImage,
				Reason: err.Error(),
			})
			continue
		}

		result.ImageHashes = append(result.ImageHashes, hash)
	}

	for _, videoURL := range videoURLs {
		videoID, err := m.client.UploadVideo(mediaFilename(videoURL), videoURL)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"video_url": videoURL,
				"error":     err.Error(),
			}).Warn("launch: failed to upload video, skipping asset")

			result.Failures = append(result.Failures, domain.MediaUploadFailure{
				URL:    videoURL,
				Kind:   domain.MediaKindVideo,
				Reason: err.Error(),
			})
			continue
		}

		result.VideoIDs = append(result.VideoIDs, videoID)
	}

	logrus.WithFields(logrus.Fields{
		"images_uploaded": len(result.ImageHashes),
		"videos_uploaded": len(result.VideoIDs),
		"failures":        len(result.Failures),
	}).Info("launch: media upload finished")

	return result
}

// uploadImage baixa os bytes da imagem e envia para a conta de anúncios
func (m *MediaManager) uploadImage(imageURL string) (string, error) {
	data, err := utils.MakeRequest(imageURL)
	if err != nil {
		return "", fmt.Errorf("erro ao baixar imagem: %w", err)
	}

	return m.client.UploadImage(mediaFilename(imageURL), data)
}

// mediaFilename extrai o nome do arquivo a partir da URL da mídia
func mediaFilename(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || path.Base(parsed.Path) == "/" || path.Base(parsed.Path) == "." {
		return "asset"
	}
	return path.Base(parsed.Path)
}
