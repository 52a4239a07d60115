package handler

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strings"

	"github.com/golang-sql/civil"

	"github.com/osse101/FrostPlanner_Go/internal/catalog"
	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/logger"
	"github.com/osse101/FrostPlanner_Go/internal/schedule"
	"github.com/osse101/FrostPlanner_Go/internal/settings"
	"github.com/osse101/FrostPlanner_Go/internal/window"
)

// GenerateScheduleRequest is the body of POST /schedule.
// A frost date wins over a location. Without either, the owner's saved
// frost is used, then the default frost date.
type GenerateScheduleRequest struct {
	OwnerID          string           `json:"owner_id" validate:"required,max=128"`
	FrostDate        *civil.Date      `json:"frost_date,omitempty" swaggertype:"string" example:"2025-04-15"`
	Location         *domain.Location `json:"location,omitempty"`
	Year             int              `json:"year,omitempty" validate:"omitempty,gte=1940,lte=2100"`
	DefaultFrostDate *civil.Date      `json:"default_frost_date,omitempty" swaggertype:"string"`
	PlantSlugs       []string         `json:"plant_slugs" validate:"required,min=1,max=200,dive,slug"`
	CadenceDays      *int             `json:"cadence_days,omitempty"`
	DurationWeeks    *int             `json:"duration_weeks,omitempty"`
}

// EstimateFrostRequest is the body of POST /frost/estimate
type EstimateFrostRequest struct {
	OwnerID  string           `json:"owner_id,omitempty" validate:"max=128"`
	Location *domain.Location `json:"location" validate:"required"`
	Year     int              `json:"year,omitempty" validate:"omitempty,gte=1940,lte=2100"`
}

// PreviewWindowsRequest is the body of POST /windows
type PreviewWindowsRequest struct {
	OwnerID    string      `json:"owner_id,omitempty" validate:"max=128"`
	FrostDate  *civil.Date `json:"frost_date,omitempty" swaggertype:"string" example:"2025-04-15"`
	PlantSlugs []string    `json:"plant_slugs" validate:"required,min=1,max=200,dive,slug"`
}

// PreviewWindowsResponse holds the planner rows and the timeline bounds
type PreviewWindowsResponse struct {
	FrostDate civil.Date           `json:"frost_date" swaggertype:"string"`
	Timeline  domain.DateRange     `json:"timeline"`
	Plants    []domain.PlantWindow `json:"plants"`
}

// ScheduleHandler serves the scheduling endpoints
type ScheduleHandler struct {
	scheduleSvc  schedule.Service
	settingsSvc  settings.Service
	catalogSvc   catalog.Service
	calculator   *window.Calculator
	defaultFrost civil.Date
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduleSvc schedule.Service, settingsSvc settings.Service, catalogSvc catalog.Service, defaultFrost civil.Date) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleSvc:  scheduleSvc,
		settingsSvc:  settingsSvc,
		catalogSvc:   catalogSvc,
		calculator:   window.NewCalculator(),
		defaultFrost: defaultFrost,
	}
}

// HandleGenerateSchedule materializes tasks for the requested plants
// @Summary Generate planting tasks
// @Description Resolves the frost date, computes planting windows and upserts the owner's tasks. Re-running is idempotent.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body GenerateScheduleRequest true "Schedule request"
// @Success 200 {object} domain.ScheduleResult
// @Success 207 {object} domain.ScheduleResult "Some plants failed or are unknown"
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No frost date found"
// @Failure 502 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /schedule [post]
func (h *ScheduleHandler) HandleGenerateSchedule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req GenerateScheduleRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Generate schedule"); err != nil {
		return
	}

	saved, err := h.settingsSvc.Get(ctx, req.OwnerID)
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSettingsFailed, err)
		return
	}

	prefs := saved.WateringPreferences()
	if req.CadenceDays != nil {
		prefs.CadenceDays = *req.CadenceDays
	}
	if req.DurationWeeks != nil {
		prefs.DurationWeeks = *req.DurationWeeks
	}

	frost := domain.FrostInput{
		Date:     req.FrostDate,
		Location: req.Location,
		Year:     req.Year,
		Default:  req.DefaultFrostDate,
	}
	if frost.Date == nil && frost.Location == nil {
		frost.Date = saved.LastFrost
	}
	if frost.Default == nil {
		frost.Default = &h.defaultFrost
	}

	plants, missing, err := h.catalogSvc.ResolvePlants(ctx, req.PlantSlugs)
	if err != nil {
		respondServiceError(w, r, ErrMsgGenerateScheduleFailed, err)
		return
	}

	result, err := h.scheduleSvc.GenerateSchedule(ctx, domain.ScheduleRequest{
		Frost:   frost,
		Plants:  plants,
		Prefs:   prefs,
		OwnerID: req.OwnerID,
	})
	if err != nil && (!errors.Is(err, domain.ErrPartialBatchFailure) || result == nil) {
		respondServiceError(w, r, ErrMsgGenerateScheduleFailed, err)
		return
	}
	addMissingPlants(result, req.PlantSlugs, missing)

	status := http.StatusOK
	if len(result.Failures) > 0 {
		log.Warn(MsgSchedulePartial, "owner_id", req.OwnerID, "failed", len(result.Failures))
		status = http.StatusMultiStatus
	}

	if isEstimated(result.FrostSource) {
		h.rememberFrost(ctx, req.OwnerID, result.FrostDate)
	}

	log.Info(MsgScheduleGenerated, "owner_id", req.OwnerID, "created", result.Created)
	respondJSON(w, status, result)
}

// HandleEstimateFrost estimates the last spring frost for a location
// @Summary Estimate last frost
// @Description Scans daily minimum temperatures for the latest frost day, falling back to earlier years. The result is saved to the owner's settings.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body EstimateFrostRequest true "Location and year"
// @Success 200 {object} domain.FrostResolution
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No frost date found"
// @Failure 502 {object} ErrorResponse
// @Failure 504 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /frost/estimate [post]
func (h *ScheduleHandler) HandleEstimateFrost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req EstimateFrostRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Estimate frost"); err != nil {
		return
	}

	res, err := h.scheduleSvc.ResolveFrost(ctx, domain.FrostInput{Location: req.Location, Year: req.Year})
	if err != nil {
		respondServiceError(w, r, ErrMsgEstimateFrostFailed, err)
		return
	}

	if req.OwnerID != "" {
		h.rememberFrost(ctx, req.OwnerID, res.Date)
	}

	logger.FromContext(ctx).Info(MsgFrostEstimated, "frost", res.Date.String(), "source", res.Source)
	respondJSON(w, http.StatusOK, res)
}

// HandlePreviewWindows returns planting windows without creating tasks
// @Summary Preview planting windows
// @Description Computes each plant's windows against the frost date, plus the planner timeline (8 weeks before to 12 weeks after frost)
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body PreviewWindowsRequest true "Preview request"
// @Success 200 {object} PreviewWindowsResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown plant"
// @Security ApiKeyAuth
// @Router /windows [post]
func (h *ScheduleHandler) HandlePreviewWindows(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req PreviewWindowsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Preview windows"); err != nil {
		return
	}

	frost := h.defaultFrost
	switch {
	case req.FrostDate != nil:
		frost = *req.FrostDate
	case req.OwnerID != "":
		saved, err := h.settingsSvc.Get(ctx, req.OwnerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSettingsFailed, err)
			return
		}
		if saved.LastFrost != nil {
			frost = *saved.LastFrost
		}
	}

	plants, err := h.catalogSvc.GetPlants(ctx, req.PlantSlugs)
	if err != nil {
		respondServiceError(w, r, ErrMsgPreviewWindowsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, PreviewWindowsResponse{
		FrostDate: frost,
		Timeline:  h.calculator.Timeline(frost),
		Plants:    h.scheduleSvc.PreviewWindows(ctx, frost, plants),
	})
}

// rememberFrost saves an estimated frost to the owner's settings.
// Failure is logged and does not fail the request.
func (h *ScheduleHandler) rememberFrost(ctx context.Context, ownerID string, frost civil.Date) {
	if err := h.settingsSvc.SaveEstimatedFrost(ctx, ownerID, frost); err != nil {
		logger.FromContext(ctx).Warn(MsgEstimatedFrostNotSent, "owner_id", ownerID, "error", err)
	}
}

func isEstimated(source domain.FrostSource) bool {
	return source == domain.FrostSourceEstimated || source == domain.FrostSourceFallback
}

// addMissingPlants merges unknown-slug failures into result, ordered by the
// slug's first position in the request
func addMissingPlants(result *domain.ScheduleResult, slugs []string, missing []domain.PlantFailure) {
	if len(missing) == 0 {
		return
	}
	position := make(map[string]int, len(slugs))
	for i, slug := range slugs {
		slug = strings.TrimSpace(slug)
		if _, ok := position[slug]; !ok {
			position[slug] = i
		}
	}

	failures := make([]domain.PlantFailure, 0, len(result.Failures)+len(missing))
	failures = append(failures, result.Failures...)
	failures = append(failures, missing...)
	sort.SliceStable(failures, func(i, j int) bool {
		return position[failures[i].PlantSlug] < position[failures[j].PlantSlug]
	})
	result.Failures = failures
}
