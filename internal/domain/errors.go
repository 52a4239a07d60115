package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Frost errors
	ErrMsgFrostNotFound = "no qualifying frost date found"

	// Preference errors
	ErrMsgInvalidPreference = "invalid watering preference"

	// Upstream errors
	ErrMsgUpstreamTimeout     = "upstream timeout"
	ErrMsgUpstreamUnavailable = "upstream unavailable"

	// Batch errors
	ErrMsgPartialBatchFailure = "one or more plants failed"

	// Plant / catalog errors
	ErrMsgPlantNotFound = "plant not found"
	ErrMsgEmptyProfile  = "plant has no planting offsets"
	ErrMsgMissingOwner  = "owner id is required"

	// Task errors
	ErrMsgTaskNotFound = "task not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Transaction errors
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrFrostNotFound signals the caller to prompt for a manual frost date
	ErrFrostNotFound = errors.New(ErrMsgFrostNotFound)

	// ErrInvalidPreference is returned when cadence or duration is below 1
	ErrInvalidPreference = errors.New(ErrMsgInvalidPreference)

	// Weather or store calls failed transiently. Surfaced for caller retry.
	ErrUpstreamTimeout     = errors.New(ErrMsgUpstreamTimeout)
	ErrUpstreamUnavailable = errors.New(ErrMsgUpstreamUnavailable)

	ErrPartialBatchFailure = errors.New(ErrMsgPartialBatchFailure)

	ErrPlantNotFound = errors.New(ErrMsgPlantNotFound)
	ErrEmptyProfile  = errors.New(ErrMsgEmptyProfile)
	ErrMissingOwner  = errors.New(ErrMsgMissingOwner)

	ErrTaskNotFound = errors.New(ErrMsgTaskNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// PlantFailure records why a single plant was skipped in a batch
type PlantFailure struct {
	PlantSlug string `json:"plant_slug"`
	Error     string `json:"error"`
	err       error
}

// NewPlantFailure wraps err for the given plant
func NewPlantFailure(slug string, err error) PlantFailure {
	return PlantFailure{PlantSlug: slug, Error: err.Error(), err: err}
}

// Unwrap returns the underlying cause
func (f PlantFailure) Unwrap() error {
	return f.err
}

// PartialBatchError is returned alongside a ScheduleResult when some plants failed.
// errors.Is(err, ErrPartialBatchFailure) reports true.
type PartialBatchError struct {
	Failures []PlantFailure
}

func (e *PartialBatchError) Error() string {
	slugs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		slugs = append(slugs, f.PlantSlug)
	}
	return fmt.Sprintf("%s: %s", ErrMsgPartialBatchFailure, strings.Join(slugs, ", "))
}

// Is reports whether target is ErrPartialBatchFailure
func (e *PartialBatchError) Is(target error) bool {
	return target == ErrPartialBatchFailure
}
