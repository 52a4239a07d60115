package domain

import (
	"time"

	"github.com/golang-sql/civil"
)

// Default watering preferences applied when an owner has none saved
const (
	DefaultWateringCadenceDays = 3
	DefaultWateringWeeks       = 4
)

// UserSettings holds an owner's planner settings.
// Nil fields are left unchanged when saved.
type UserSettings struct {
	OwnerID             string      `json:"owner_id"`
	LastFrost           *civil.Date `json:"last_frost,omitempty"`
	WateringCadenceDays *int        `json:"watering_cadence_days,omitempty"`
	WateringWeeks       *int        `json:"watering_weeks,omitempty"`
	UpdatedAt           time.Time   `json:"updated_at,omitempty"`
}

// WateringPreferences returns the saved preferences, filling gaps with defaults
func (s UserSettings) WateringPreferences() WateringPreferences {
	prefs := WateringPreferences{
		CadenceDays:   DefaultWateringCadenceDays,
		DurationWeeks: DefaultWateringWeeks,
	}
	if s.WateringCadenceDays != nil {
		prefs.CadenceDays = *s.WateringCadenceDays
	}
	if s.WateringWeeks != nil {
		prefs.DurationWeeks = *s.WateringWeeks
	}
	return prefs
}
