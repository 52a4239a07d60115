package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// SettingsRepository implements repository.SettingsStore for PostgreSQL
type SettingsRepository struct {
	db *pgxpool.Pool
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// GetSettings returns an owner's settings, or nil when nothing is saved
func (r *SettingsRepository) GetSettings(ctx context.Context, ownerID string) (*domain.UserSettings, error) {
	query := `
		SELECT owner_id, last_frost, watering_cadence_days, watering_weeks, updated_at
		FROM user_settings
		WHERE owner_id = $1
	`

	var s domain.UserSettings
	var lastFrost pgtype.Date
	var cadence, weeks pgtype.Int4
	err := r.db.QueryRow(ctx, query, ownerID).Scan(&s.OwnerID, &lastFrost, &cadence, &weeks, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSettings, err)
	}

	s.LastFrost = civilDate(lastFrost)
	s.WateringCadenceDays = ptrInt(cadence)
	s.WateringWeeks = ptrInt(weeks)
	return &s, nil
}

// SaveSettings merges the provided fields into the owner's settings
func (r *SettingsRepository) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	query := `
		INSERT INTO user_settings (owner_id, last_frost, watering_cadence_days, watering_weeks, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (owner_id) DO UPDATE SET
			last_frost = COALESCE(EXCLUDED.last_frost, user_settings.last_frost),
			watering_cadence_days = COALESCE(EXCLUDED.watering_cadence_days, user_settings.watering_cadence_days),
			watering_weeks = COALESCE(EXCLUDED.watering_weeks, user_settings.watering_weeks),
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		settings.OwnerID,
		pgDatePtr(settings.LastFrost),
		settings.WateringCadenceDays,
		settings.WateringWeeks,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSettings, err)
	}
	return nil
}
