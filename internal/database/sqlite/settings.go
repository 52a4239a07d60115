package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// SettingsRepository implements repository.SettingsStore for SQLite
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettings returns an owner's settings, or nil when nothing is saved
func (r *SettingsRepository) GetSettings(ctx context.Context, ownerID string) (*domain.UserSettings, error) {
	var s domain.UserSettings
	var lastFrost sql.NullString
	var cadence, weeks sql.NullInt64
	var updatedAt int64

	err := r.db.QueryRowContext(ctx,
		`SELECT owner_id, last_frost, watering_cadence_days, watering_weeks, updated_at
		 FROM user_settings WHERE owner_id = ?`, ownerID,
	).Scan(&s.OwnerID, &lastFrost, &cadence, &weeks, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	if s.LastFrost, err = parseNullDate(lastFrost); err != nil {
		return nil, fmt.Errorf("invalid last frost for %s: %w", ownerID, err)
	}
	s.WateringCadenceDays = ptrInt(cadence)
	s.WateringWeeks = ptrInt(weeks)
	s.UpdatedAt = fromMillis(updatedAt)
	return &s, nil
}

// SaveSettings merges the provided fields into the owner's settings
func (r *SettingsRepository) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_settings (owner_id, last_frost, watering_cadence_days, watering_weeks, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(owner_id) DO UPDATE SET
			last_frost = COALESCE(excluded.last_frost, user_settings.last_frost),
			watering_cadence_days = COALESCE(excluded.watering_cadence_days, user_settings.watering_cadence_days),
			watering_weeks = COALESCE(excluded.watering_weeks, user_settings.watering_weeks),
			updated_at = excluded.updated_at`,
		settings.OwnerID,
		nullDate(settings.LastFrost),
		nullInt(settings.WateringCadenceDays),
		nullInt(settings.WateringWeeks),
		nowMillis(),
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
