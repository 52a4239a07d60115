package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSlugRequest struct {
	OwnerID string   `json:"owner_id" validate:"required,max=16"`
	Slugs   []string `json:"plant_slugs" validate:"required,min=1,dive,slug"`
	Weeks   int      `json:"weeks" validate:"omitempty,min=1"`
}

func TestValidator_SlugValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{"simple", "kale", false},
		{"hyphenated", "tomato-roma", false},
		{"digits", "pepper-2", false},
		{"upper case", "Tomato", true},
		{"space", "sweet basil", true},
		{"leading hyphen", "-kale", true},
		{"double hyphen", "kale--red", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(testSlugRequest{OwnerID: "owner-1", Slugs: []string{tt.slug}})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	InitValidator()

	err := GetValidator().ValidateStruct(testSlugRequest{
		OwnerID: "this-owner-id-is-too-long",
		Slugs:   []string{"Bad Slug"},
		Weeks:   -1,
	})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "Must be at most 16", fields["owner_id"])
	assert.Equal(t, "Must be a lower-case slug such as tomato-roma", fields["plant_slugs[0]"])
	assert.Equal(t, "Must be at least 1", fields["weeks"])

	missing := FormatValidationError(GetValidator().ValidateStruct(testSlugRequest{}))
	assert.Equal(t, "This field is required", missing["owner_id"])
	assert.Equal(t, "This field is required", missing["plant_slugs"])

	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
