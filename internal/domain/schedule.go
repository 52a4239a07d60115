package domain

import (
	"github.com/golang-sql/civil"
)

// DateRange is a from/to pair of calendar dates. Either end may be nil.
// No ordering between From and To is enforced.
type DateRange struct {
	From *civil.Date `json:"from,omitempty"`
	To   *civil.Date `json:"to,omitempty"`
}

// ScheduleWindow is the calendar projection of one plant's offsets against a frost date
type ScheduleWindow struct {
	StartIndoors    *civil.Date `json:"start_indoors,omitempty"`
	DirectSow       *DateRange  `json:"direct_sow,omitempty"`
	Transplant      *DateRange  `json:"transplant,omitempty"`
	HarvestEstimate *civil.Date `json:"harvest_estimate,omitempty"`
}

// PlantWindow pairs a plant with its computed window (planner row)
type PlantWindow struct {
	PlantSlug string         `json:"plant_slug"`
	PlantName string         `json:"plant_name"`
	Window    ScheduleWindow `json:"window"`
}

// Location is a latitude/longitude pair in decimal degrees
type Location struct {
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
}

// FrostInput selects how the frost reference of a run is obtained.
// Date wins when set; otherwise Location (and Year, 0 meaning the current year)
// is used for estimation, with Default as the fallback when nothing is found.
type FrostInput struct {
	Date     *civil.Date `json:"date,omitempty"`
	Location *Location   `json:"location,omitempty"`
	Year     int         `json:"year,omitempty"`
	Default  *civil.Date `json:"default,omitempty"`
}

// FrostSource describes where the frost reference of a run came from
type FrostSource string

const (
	FrostSourceSupplied  FrostSource = "supplied"
	FrostSourceEstimated FrostSource = "estimated"
	FrostSourceFallback  FrostSource = "previous_year"
	FrostSourceDefault   FrostSource = "default"
)

// FrostResolution is the outcome of resolving a FrostInput
type FrostResolution struct {
	Date   civil.Date  `json:"date"`
	Source FrostSource `json:"source"`
	Year   int         `json:"year,omitempty"`
}

// WateringPreferences configures the watering series after transplant
type WateringPreferences struct {
	CadenceDays   int `json:"cadence_days" validate:"min=1"`
	DurationWeeks int `json:"duration_weeks" validate:"min=1"`
}

// ScheduleRequest is the input of one scheduling run
type ScheduleRequest struct {
	Frost   FrostInput
	Plants  []Plant
	Prefs   WateringPreferences
	OwnerID string
}

// ScheduleResult aggregates the tasks materialized in one run
type ScheduleResult struct {
	FrostDate   civil.Date              `json:"frost_date"`
	FrostSource FrostSource             `json:"frost_source"`
	Created     int                     `json:"created"`
	PerPlant    map[string][]TaskRecord `json:"per_plant"`
	Failures    []PlantFailure          `json:"failures,omitempty"`
}
