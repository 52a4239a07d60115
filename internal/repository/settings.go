package repository

import (
	"context"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// SettingsStore defines the data access interface for owner settings.
// GetSettings returns (nil, nil) when the owner has nothing saved.
// SaveSettings merges: nil fields keep their stored value.
type SettingsStore interface {
	GetSettings(ctx context.Context, ownerID string) (*domain.UserSettings, error)
	SaveSettings(ctx context.Context, settings domain.UserSettings) error
}
