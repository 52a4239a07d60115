package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlant_Key(t *testing.T) {
	tests := []struct {
		name     string
		plant    Plant
		expected string
	}{
		{name: "slug wins", plant: Plant{Slug: "tomato-roma", Name: "Roma Tomato"}, expected: "tomato-roma"},
		{name: "name hyphenated", plant: Plant{Name: "  Sweet   Basil "}, expected: "sweet-basil"},
		{name: "fallback", plant: Plant{}, expected: DefaultPlantKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.plant.Key())
		})
	}
}

func TestPlant_DisplayName(t *testing.T) {
	assert.Equal(t, "Roma Tomato", Plant{Slug: "tomato-roma", Name: "Roma Tomato"}.DisplayName())
	assert.Equal(t, "tomato-roma", Plant{Slug: "tomato-roma"}.DisplayName())
}

func TestPlantOffsetProfile_IsEmpty(t *testing.T) {
	assert.True(t, PlantOffsetProfile{}.IsEmpty())
	assert.False(t, PlantOffsetProfile{DaysToMaturity: IntPtr(0)}.IsEmpty())
}

func TestTaskType_IsValid(t *testing.T) {
	for _, tt := range TaskTypes {
		assert.True(t, tt.IsValid(), tt)
	}
	assert.False(t, TaskType("prune").IsValid())
}

func TestUserSettings_WateringPreferences(t *testing.T) {
	assert.Equal(t, WateringPreferences{CadenceDays: 3, DurationWeeks: 4}, UserSettings{}.WateringPreferences())

	s := UserSettings{WateringCadenceDays: IntPtr(2), WateringWeeks: IntPtr(6)}
	assert.Equal(t, WateringPreferences{CadenceDays: 2, DurationWeeks: 6}, s.WateringPreferences())
}

func TestPartialBatchError(t *testing.T) {
	cause := fmt.Errorf("%w: kale", ErrEmptyProfile)
	var err error = &PartialBatchError{Failures: []PlantFailure{
		NewPlantFailure("kale", cause),
		NewPlantFailure("leek", errors.New("boom")),
	}}

	assert.ErrorIs(t, err, ErrPartialBatchFailure)
	assert.Contains(t, err.Error(), ErrMsgPartialBatchFailure)
	assert.Contains(t, err.Error(), "kale, leek")

	var partial *PartialBatchError
	assert.True(t, errors.As(err, &partial))
	assert.ErrorIs(t, partial.Failures[0].Unwrap(), ErrEmptyProfile)
}
