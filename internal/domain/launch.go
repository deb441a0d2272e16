package domain

import "time"

// LaunchCampaignRequest é o corpo de uma solicitação de lançamento de campanha
type LaunchCampaignRequest struct {
	Product  *Product            `json:"product"`
	Campaign *CampaignParameters `json:"campaign"`
}

// LaunchStatus é o estado de um lançamento agendado
type LaunchStatus string

const (
	LaunchStatusPending   LaunchStatus = "pending"
	LaunchStatusCompleted LaunchStatus = "completed"
	LaunchStatusFailed    LaunchStatus = "failed"
)

// ScheduledLaunch representa um lançamento de campanha agendado para execução futura
type ScheduledLaunch struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	RunAt     time.Time              `json:"run_at"`
	Request   *LaunchCampaignRequest `json:"request"`
	Status    LaunchStatus           `json:"status"`
	BuildID   *string                `json:"build_id,omitempty"`
	Error     *string                `json:"error,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}
