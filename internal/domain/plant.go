package domain

import (
	"strings"
	"time"
)

// DefaultPlantKey is used when a plant has neither slug nor name
const DefaultPlantKey = "plant"

// PlantOffsetProfile holds the planting offsets of a plant, in days relative to the last frost.
// A nil field means the offset is undefined for this plant.
type PlantOffsetProfile struct {
	StartOffsetDays *int `json:"start_offset_days,omitempty" yaml:"startOffsetDays"`
	DirectSowFrom   *int `json:"direct_sow_from,omitempty" yaml:"directSowFrom"`
	DirectSowTo     *int `json:"direct_sow_to,omitempty" yaml:"directSowTo"`
	TransplantFrom  *int `json:"transplant_from,omitempty" yaml:"transplantFrom"`
	TransplantTo    *int `json:"transplant_to,omitempty" yaml:"transplantTo"`
	DaysToMaturity  *int `json:"days_to_maturity,omitempty" yaml:"daysToMaturity"`
}

// IsEmpty reports whether no offset is defined
func (p PlantOffsetProfile) IsEmpty() bool {
	return p.StartOffsetDays == nil &&
		p.DirectSowFrom == nil && p.DirectSowTo == nil &&
		p.TransplantFrom == nil && p.TransplantTo == nil &&
		p.DaysToMaturity == nil
}

// Plant is a catalog entry. Only Slug, Name and Profile are used by scheduling;
// the remaining attributes are carried for the catalog.
type Plant struct {
	Slug           string             `json:"slug" yaml:"slug"`
	Name           string             `json:"name" yaml:"name"`
	ScientificName string             `json:"scientific_name,omitempty" yaml:"scientificName"`
	Family         string             `json:"family,omitempty" yaml:"family"`
	Variety        string             `json:"variety,omitempty" yaml:"variety"`
	Description    string             `json:"description,omitempty" yaml:"description"`
	Sun            string             `json:"sun,omitempty" yaml:"sun"`
	Water          string             `json:"water,omitempty" yaml:"water"`
	Soil           string             `json:"soil,omitempty" yaml:"soil"`
	FrostHardiness string             `json:"frost_hardiness,omitempty" yaml:"frostHardiness"`
	SpacingInRowIn *float64           `json:"spacing_in_row_in,omitempty" yaml:"spacingInRowIn"`
	PlantingDepth  *float64           `json:"planting_depth_in,omitempty" yaml:"plantingDepthIn"`
	Tags           []string           `json:"tags,omitempty" yaml:"tags"`
	Profile        PlantOffsetProfile `json:"profile" yaml:",inline"`
	UpdatedAt      time.Time          `json:"updated_at,omitempty" yaml:"-"`
}

// Key returns the stable identifier used in task ids.
// Falls back to the hyphenated, lower-cased name, then DefaultPlantKey.
func (p Plant) Key() string {
	if s := strings.TrimSpace(p.Slug); s != "" {
		return s
	}
	if name := strings.Join(strings.Fields(strings.ToLower(p.Name)), "-"); name != "" {
		return name
	}
	return DefaultPlantKey
}

// DisplayName returns the name used in task notes
func (p Plant) DisplayName() string {
	if n := strings.TrimSpace(p.Name); n != "" {
		return n
	}
	return p.Key()
}

// IntPtr is a helper for building profiles in code and tests
func IntPtr(v int) *int {
	return &v
}
