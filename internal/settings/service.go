package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/golang-sql/civil"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/logger"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
)

// Service manages per-owner planner settings
type Service interface {
	// Get returns the owner's settings with missing watering preferences
	// filled from the configured defaults
	Get(ctx context.Context, ownerID string) (*domain.UserSettings, error)
	// Save merges the provided fields and returns the resulting settings
	Save(ctx context.Context, settings domain.UserSettings) (*domain.UserSettings, error)
	// SaveEstimatedFrost records a frost date estimated for the owner
	SaveEstimatedFrost(ctx context.Context, ownerID string, frost civil.Date) error
}

// Defaults are the watering preferences used when an owner has none saved
type Defaults struct {
	CadenceDays   int
	DurationWeeks int
}

type service struct {
	store    repository.SettingsStore
	defaults Defaults
}

// NewService creates a new settings service
func NewService(store repository.SettingsStore, defaults Defaults) Service {
	if defaults.CadenceDays < MinCadenceDays {
		defaults.CadenceDays = domain.DefaultWateringCadenceDays
	}
	if defaults.DurationWeeks < MinDurationWeeks {
		defaults.DurationWeeks = domain.DefaultWateringWeeks
	}
	return &service{store: store, defaults: defaults}
}

func (s *service) Get(ctx context.Context, ownerID string) (*domain.UserSettings, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, domain.ErrMissingOwner
	}

	stored, err := s.store.GetSettings(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	out := domain.UserSettings{OwnerID: ownerID}
	if stored != nil {
		out = *stored
	}
	if out.WateringCadenceDays == nil {
		out.WateringCadenceDays = domain.IntPtr(s.defaults.CadenceDays)
	}
	if out.WateringWeeks == nil {
		out.WateringWeeks = domain.IntPtr(s.defaults.DurationWeeks)
	}
	return &out, nil
}

func (s *service) Save(ctx context.Context, settings domain.UserSettings) (*domain.UserSettings, error) {
	settings.OwnerID = strings.TrimSpace(settings.OwnerID)
	if settings.OwnerID == "" {
		return nil, domain.ErrMissingOwner
	}

	if settings.WateringCadenceDays != nil {
		settings.WateringCadenceDays = domain.IntPtr(max(*settings.WateringCadenceDays, MinCadenceDays))
	}
	if settings.WateringWeeks != nil {
		settings.WateringWeeks = domain.IntPtr(max(*settings.WateringWeeks, MinDurationWeeks))
	}

	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgSettingsSaved, "owner_id", settings.OwnerID)

	return s.Get(ctx, settings.OwnerID)
}

func (s *service) SaveEstimatedFrost(ctx context.Context, ownerID string, frost civil.Date) error {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return domain.ErrMissingOwner
	}
	if err := s.store.SaveSettings(ctx, domain.UserSettings{OwnerID: ownerID, LastFrost: &frost}); err != nil {
		return fmt.Errorf("failed to save estimated frost: %w", err)
	}
	logger.FromContext(ctx).Info(LogMsgFrostSaved, "owner_id", ownerID, "frost", frost.String())
	return nil
}
