package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FrostPlanner_Go/internal/database/memory"
	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/mocks"
)

func newTestService() (Service, *memory.Store) {
	store := memory.NewStore(nil)
	return NewService(store, Defaults{CadenceDays: 3, DurationWeeks: 4}), store
}

func TestGet_DefaultsWhenNothingSaved(t *testing.T) {
	svc, _ := newTestService()

	got, err := svc.Get(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", got.OwnerID)
	assert.Nil(t, got.LastFrost)
	assert.Equal(t, domain.WateringPreferences{CadenceDays: 3, DurationWeeks: 4}, got.WateringPreferences())
}

func TestSave(t *testing.T) {
	tests := []struct {
		name        string
		cadence     *int
		weeks       *int
		wantCadence int
		wantWeeks   int
	}{
		{name: "values kept", cadence: domain.IntPtr(5), weeks: domain.IntPtr(6), wantCadence: 5, wantWeeks: 6},
		{name: "zero clamped", cadence: domain.IntPtr(0), weeks: domain.IntPtr(0), wantCadence: 1, wantWeeks: 1},
		{name: "negative clamped", cadence: domain.IntPtr(-4), weeks: domain.IntPtr(2), wantCadence: 1, wantWeeks: 2},
		{name: "missing uses defaults", wantCadence: 3, wantWeeks: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()

			got, err := svc.Save(context.Background(), domain.UserSettings{
				OwnerID:             "owner-1",
				WateringCadenceDays: tt.cadence,
				WateringWeeks:       tt.weeks,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantCadence, *got.WateringCadenceDays)
			assert.Equal(t, tt.wantWeeks, *got.WateringWeeks)
		})
	}
}

func TestSave_MergesWithStored(t *testing.T) {
	svc, store := newTestService()
	ctx := context.Background()

	frost, err := civil.ParseDate("2025-04-12")
	require.NoError(t, err)

	_, err = svc.Save(ctx, domain.UserSettings{OwnerID: "owner-1", LastFrost: &frost, WateringCadenceDays: domain.IntPtr(2)})
	require.NoError(t, err)
	got, err := svc.Save(ctx, domain.UserSettings{OwnerID: "owner-1", WateringWeeks: domain.IntPtr(8)})
	require.NoError(t, err)

	require.NotNil(t, got.LastFrost)
	assert.Equal(t, frost, *got.LastFrost)
	assert.Equal(t, 2, *got.WateringCadenceDays)
	assert.Equal(t, 8, *got.WateringWeeks)

	stored, err := store.GetSettings(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, 8, *stored.WateringWeeks)
}

func TestSaveEstimatedFrost(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	frost, err := civil.ParseDate("2025-04-03")
	require.NoError(t, err)

	require.NoError(t, svc.SaveEstimatedFrost(ctx, "owner-1", frost))

	got, err := svc.Get(ctx, "owner-1")
	require.NoError(t, err)
	require.NotNil(t, got.LastFrost)
	assert.Equal(t, "2025-04-03", got.LastFrost.String())
}

func TestMissingOwner(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Get(ctx, " ")
	assert.ErrorIs(t, err, domain.ErrMissingOwner)

	_, err = svc.Save(ctx, domain.UserSettings{})
	assert.ErrorIs(t, err, domain.ErrMissingOwner)

	err = svc.SaveEstimatedFrost(ctx, "", civil.Date{Year: 2025, Month: 4, Day: 1})
	assert.ErrorIs(t, err, domain.ErrMissingOwner)
}

func TestStoreErrors(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("db down")

	store := mocks.NewMockRepositorySettingsStore(t)
	store.On("GetSettings", mock.Anything, "owner-1").Return(nil, storeErr).Once()
	store.On("SaveSettings", mock.Anything, mock.Anything).Return(storeErr).Twice()

	svc := NewService(store, Defaults{})

	_, err := svc.Get(ctx, "owner-1")
	assert.ErrorIs(t, err, storeErr)

	_, err = svc.Save(ctx, domain.UserSettings{OwnerID: "owner-1"})
	assert.ErrorIs(t, err, storeErr)

	err = svc.SaveEstimatedFrost(ctx, "owner-1", civil.Date{Year: 2025, Month: 4, Day: 1})
	assert.ErrorIs(t, err, storeErr)
}

func TestNewService_InvalidDefaults(t *testing.T) {
	store := memory.NewStore(nil)
	svc := NewService(store, Defaults{CadenceDays: 0, DurationWeeks: -2})

	got, err := svc.Get(context.Background(), "owner-1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultWateringCadenceDays, *got.WateringCadenceDays)
	assert.Equal(t, domain.DefaultWateringWeeks, *got.WateringWeeks)
}
