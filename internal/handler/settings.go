package handler

import (
	"net/http"

	"github.com/golang-sql/civil"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/settings"
)

// SaveSettingsRequest is the body of PUT /settings. Omitted fields are kept.
type SaveSettingsRequest struct {
	OwnerID             string      `json:"owner_id" validate:"required,max=128"`
	LastFrost           *civil.Date `json:"last_frost,omitempty" swaggertype:"string" example:"2025-04-15"`
	WateringCadenceDays *int        `json:"watering_cadence_days,omitempty"`
	WateringWeeks       *int        `json:"watering_weeks,omitempty"`
}

// HandleGetSettings returns an owner's settings with defaults filled in
// @Summary Get settings
// @Tags settings
// @Produce json
// @Param owner_id query string true "Owner ID"
// @Success 200 {object} domain.UserSettings
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /settings [get]
func HandleGetSettings(settingsSvc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := GetQueryParam(r, w, ParamOwnerID)
		if !ok {
			return
		}

		got, err := settingsSvc.Get(r.Context(), ownerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSettingsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, got)
	}
}

// HandleSaveSettings merges the provided settings. Watering values below 1 are raised to 1.
// @Summary Save settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body SaveSettingsRequest true "Settings"
// @Success 200 {object} domain.UserSettings
// @Failure 400 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /settings [put]
func HandleSaveSettings(settingsSvc settings.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SaveSettingsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Save settings"); err != nil {
			return
		}

		saved, err := settingsSvc.Save(r.Context(), domain.UserSettings{
			OwnerID:             req.OwnerID,
			LastFrost:           req.LastFrost,
			WateringCadenceDays: req.WateringCadenceDays,
			WateringWeeks:       req.WateringWeeks,
		})
		if err != nil {
			respondServiceError(w, r, ErrMsgSaveSettingsFailed, err)
			return
		}
		respondJSON(w, http.StatusOK, saved)
	}
}
