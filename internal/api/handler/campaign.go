package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/launching"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
)

const defaultListLimit = 50

// ScheduleLaunchRequest é o corpo da criação de um lançamento agendado
type ScheduleLaunchRequest struct {
	Name     string                     `json:"name"`
	RunAt    time.Time                  `json:"run_at"`
	Product  *domain.Product            `json:"product"`
	Campaign *domain.CampaignParameters `json:"campaign"`
}

// LaunchCampaign executa imediatamente o pipeline de build de campanha
func LaunchCampaign(service launching.Launcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - LaunchCampaign")

		var req domain.LaunchCampaignRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		result, err := service.LaunchCampaign(&req)
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logrus.Error(err)
		}
	}
}

// ListCampaignBuilds retorna o histórico de builds, do mais recente para o mais antigo
func ListCampaignBuilds(service launching.Launcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseLimit(r, defaultListLimit)

		builds, err := service.ListBuilds(limit)
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(builds); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// ScheduleLaunch agenda um lançamento de campanha para execução futura
func ScheduleLaunch(service launching.Launcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ScheduleLaunch")

		var req ScheduleLaunchRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		launch, err := service.ScheduleLaunch(req.Name, req.RunAt, &domain.LaunchCampaignRequest{
			Product:  req.Product,
			Campaign: req.Campaign,
		})
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(launch); err != nil {
			logrus.Error(err)
		}
	}
}

// ListScheduledLaunches retorna os lançamentos agendados
func ListScheduledLaunches(service launching.Launcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := parseLimit(r, defaultListLimit)

		launches, err := service.ListScheduledLaunches(limit)
		if err != nil {
			handleLaunchError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(launches); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// handleLaunchError trata erros de lançamento e retorna a resposta apropriada
func handleLaunchError(w http.ResponseWriter, err error) {
	logrus.Error(err)

	var launchErr *launching.LaunchError
	if errors.As(err, &launchErr) {
		apiErrors.WriteError(w, launchErr.Code, launchErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar lançamento", nil)
}

func parseLimit(r *http.Request, fallback int) int {
	limitStr := r.URL.Query().Get("limit")
	if limitStr == "" {
		return fallback
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 0 {
		return fallback
	}

	return limit
}
