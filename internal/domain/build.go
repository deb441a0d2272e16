package domain

import "time"

// MediaKind identifica o tipo de mídia enviado à plataforma
type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

// MediaUploadFailure registra uma falha isolada de upload de mídia
type MediaUploadFailure struct {
	URL    string    `json:"url"`
	Kind   MediaKind `json:"kind"`
	Reason string    `json:"reason"`
}

// MediaUploadResult é o artefato transitório de um build: os identificadores
// de mídia aceitos pela plataforma e as falhas individuais registradas.
// Zero uploads é um resultado válido.
type MediaUploadResult struct {
	ImageHashes []string             `json:"image_hashes"`
	VideoIDs    []string             `json:"video_ids"`
	Failures    []MediaUploadFailure `json:"failures,omitempty"`
}

// CampaignBuildResult é o retorno de um build de campanha bem-sucedido
type CampaignBuildResult struct {
	CampaignID     string               `json:"campaign_id"`
	CampaignName   string               `json:"campaign_name"`
	AdSetIDs       []string             `json:"ad_set_ids"`
	AdIDs          []string             `json:"ad_ids"`
	ImagesUploaded int                  `json:"images_uploaded"`
	VideosUploaded int                  `json:"videos_uploaded"`
	UploadFailures []MediaUploadFailure `json:"upload_failures,omitempty"`
}

// BuildStatus é o estado final de um build registrado no histórico
type BuildStatus string

const (
	BuildStatusCompleted BuildStatus = "completed"
	BuildStatusFailed    BuildStatus = "failed"
)

// CampaignBuild é o registro persistido de uma execução do pipeline.
// As falhas de upload ficam gravadas junto ao registro para que
// lançamentos agendados também tenham o detalhe por mídia, não só o log.
type CampaignBuild struct {
	ID             string               `json:"id"`
	CampaignID     *string              `json:"campaign_id"`
	Name           string               `json:"name"`
	Status         BuildStatus          `json:"status"`
	AdSetCount     int                  `json:"ad_set_count"`
	AdCount        int                  `json:"ad_count"`
	ImagesUploaded int                  `json:"images_uploaded"`
	VideosUploaded int                  `json:"videos_uploaded"`
	UploadFailures []MediaUploadFailure `json:"upload_failures,omitempty"`
	Error          *string              `json:"error,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}
