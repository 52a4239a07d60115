package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

const testCSV = `slug,name,scientificName,variety,sun,tags,spacingInRowIn,startOffsetDays,directSowFrom,directSowTo,transplantFrom,transplantTo,daysToMaturity,daysToMaturityMin,aliases
tomato-roma,Roma Tomato,Solanum lycopersicum,Roma,full,"fruit, warm season",24,-56,,,14,28,75,,plum tomato
,Lettuce,Lactuca sativa,,partial,,abc,,-14,7.4,,,,45,

,Basil,,,,herb,NaN,-42,,,7,,60,,
`

func TestParseCSV(t *testing.T) {
	plants, err := ParseCSV(strings.NewReader(testCSV))
	require.NoError(t, err)
	require.Len(t, plants, 3)

	roma := plants[0]
	assert.Equal(t, "tomato-roma", roma.Slug)
	assert.Equal(t, "Roma Tomato", roma.Name)
	assert.Equal(t, "Solanum lycopersicum", roma.ScientificName)
	assert.Equal(t, []string{"fruit", "warm season"}, roma.Tags)
	require.NotNil(t, roma.SpacingInRowIn)
	assert.Equal(t, 24.0, *roma.SpacingInRowIn)
	assert.Equal(t, domain.PlantOffsetProfile{
		StartOffsetDays: domain.IntPtr(-56),
		TransplantFrom:  domain.IntPtr(14),
		TransplantTo:    domain.IntPtr(28),
		DaysToMaturity:  domain.IntPtr(75),
	}, roma.Profile)

	lettuce := plants[1]
	assert.Empty(t, lettuce.Slug)
	assert.Nil(t, lettuce.SpacingInRowIn, "non-numeric cell is missing")
	assert.Nil(t, lettuce.Tags)
	assert.Equal(t, domain.IntPtr(-14), lettuce.Profile.DirectSowFrom)
	assert.Equal(t, domain.IntPtr(7), lettuce.Profile.DirectSowTo)
	assert.Equal(t, domain.IntPtr(45), lettuce.Profile.DaysToMaturity, "falls back to daysToMaturityMin")

	basil := plants[2]
	assert.Nil(t, basil.SpacingInRowIn, "NaN is missing")
	assert.Nil(t, basil.Profile.DirectSowFrom)
}

func TestParseCSV_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{name: "empty document", input: "", wantMsg: ErrMsgMissingHeader},
		{name: "no name column", input: "variety,sun\nRoma,full\n", wantMsg: ErrMsgMissingNameColumn},
		{name: "unterminated quote", input: "name,tags\nBasil,\"herb\n", wantMsg: domain.ErrMsgInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestParseCSV_HeaderWithBOM(t *testing.T) {
	plants, err := ParseCSV(strings.NewReader("\ufeffname,transplantFrom\nPepper,21\n"))
	require.NoError(t, err)
	require.Len(t, plants, 1)
	assert.Equal(t, "Pepper", plants[0].Name)
	assert.Equal(t, domain.IntPtr(21), plants[0].Profile.TransplantFrom)
}

const testYAML = `plants:
  - slug: tomato-roma
    name: Roma Tomato
    scientificName: Solanum lycopersicum
    tags: [fruit]
    startOffsetDays: -56
    transplantFrom: 14
    transplantTo: 28
    daysToMaturity: 75
  - name: Radish
    directSowFrom: -28
    daysToMaturity: 25
`

func TestParseYAML(t *testing.T) {
	plants, err := ParseYAML(strings.NewReader(testYAML))
	require.NoError(t, err)
	require.Len(t, plants, 2)

	assert.Equal(t, "tomato-roma", plants[0].Slug)
	assert.Equal(t, []string{"fruit"}, plants[0].Tags)
	assert.Equal(t, domain.IntPtr(-56), plants[0].Profile.StartOffsetDays)
	assert.Equal(t, domain.IntPtr(75), plants[0].Profile.DaysToMaturity)

	assert.Equal(t, "Radish", plants[1].Name)
	assert.Equal(t, domain.IntPtr(-28), plants[1].Profile.DirectSowFrom)
	assert.Nil(t, plants[1].Profile.TransplantFrom)
}

func TestParseYAML_Errors(t *testing.T) {
	_, err := ParseYAML(strings.NewReader("plants:\n  - name: Kale\n    colour: green\n"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	plants, err := ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, plants)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	csvPath := filepath.Join(dir, "plants.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte(testCSV), 0o600))
	plants, err := LoadFile(csvPath)
	require.NoError(t, err)
	assert.Len(t, plants, 3)

	yamlPath := filepath.Join(dir, "plants.YML")
	require.NoError(t, os.WriteFile(yamlPath, []byte(testYAML), 0o600))
	plants, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Len(t, plants, 2)

	_, err = LoadFile(filepath.Join(dir, "plants.json"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), ErrMsgUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
