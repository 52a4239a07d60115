// Package storetest holds behaviour checks shared by every store implementation.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
)

func mustDate(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

func floatPtr(v float64) *float64 {
	return &v
}

// TaskStore checks merge semantics, owner scoping and completion
func TaskStore(t *testing.T, newStore func(t *testing.T) repository.TaskStore) {
	ctx := context.Background()

	t.Run("upsert inserts then merges without touching done", func(t *testing.T) {
		store := newStore(t)
		task := domain.TaskRecord{
			ID:        "tomato-roma-transplant-2025-04-15",
			Type:      domain.TaskTypeTransplant,
			DueDate:   mustDate(t, "2025-04-15"),
			Notes:     "Transplant Tomato",
			OwnerID:   "owner-a",
			PlantSlug: "tomato-roma",
		}
		require.NoError(t, store.UpsertTask(ctx, task))

		done, err := store.MarkDone(ctx, "owner-a", task.ID)
		require.NoError(t, err)
		require.True(t, done.Done)
		require.NotNil(t, done.DoneAt)
		firstDoneAt := *done.DoneAt

		task.Notes = "Transplant Roma Tomato"
		task.Done = false
		require.NoError(t, store.UpsertTask(ctx, task))

		got, err := store.GetTask(ctx, "owner-a", task.ID)
		require.NoError(t, err)
		assert.Equal(t, "Transplant Roma Tomato", got.Notes)
		assert.True(t, got.Done, "regeneration never regresses done")
		require.NotNil(t, got.DoneAt)
		assert.True(t, firstDoneAt.Equal(*got.DoneAt))
		assert.Equal(t, mustDate(t, "2025-04-15"), got.DueDate)
		assert.Equal(t, domain.TaskTypeTransplant, got.Type)
		assert.False(t, got.CreatedAt.IsZero())
	})

	t.Run("repeated upsert leaves a single record", func(t *testing.T) {
		store := newStore(t)
		task := domain.TaskRecord{
			ID: "kale-water-2025-04-01", Type: domain.TaskTypeWater,
			DueDate: mustDate(t, "2025-04-01"), Notes: "Water Kale",
			OwnerID: "owner-b", PlantSlug: "kale",
		}
		for i := 0; i < 3; i++ {
			require.NoError(t, store.UpsertTask(ctx, task))
		}

		tasks, err := store.ListTasks(ctx, "owner-b")
		require.NoError(t, err)
		assert.Len(t, tasks, 1)
	})

	t.Run("tasks are scoped by owner", func(t *testing.T) {
		store := newStore(t)
		base := domain.TaskRecord{
			ID: "pea-direct_sow-2025-03-18", Type: domain.TaskTypeDirectSow,
			DueDate: mustDate(t, "2025-03-18"), Notes: "Direct sow Pea", PlantSlug: "pea",
		}
		a, b := base, base
		a.OwnerID, b.OwnerID = "owner-c", "owner-d"
		require.NoError(t, store.UpsertTask(ctx, a))
		require.NoError(t, store.UpsertTask(ctx, b))

		_, err := store.MarkDone(ctx, "owner-c", base.ID)
		require.NoError(t, err)

		other, err := store.GetTask(ctx, "owner-d", base.ID)
		require.NoError(t, err)
		assert.False(t, other.Done)
	})

	t.Run("list orders by due date", func(t *testing.T) {
		store := newStore(t)
		for _, d := range []string{"2025-05-01", "2025-02-01", "2025-03-01"} {
			require.NoError(t, store.UpsertTask(ctx, domain.TaskRecord{
				ID: "bean-water-" + d, Type: domain.TaskTypeWater, DueDate: mustDate(t, d),
				Notes: "Water Bean", OwnerID: "owner-e", PlantSlug: "bean",
			}))
		}

		tasks, err := store.ListTasks(ctx, "owner-e")
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "2025-02-01", tasks[0].DueDate.String())
		assert.Equal(t, "2025-05-01", tasks[2].DueDate.String())

		empty, err := store.ListTasks(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("missing task", func(t *testing.T) {
		store := newStore(t)
		_, err := store.GetTask(ctx, "owner-f", "nope")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
		_, err = store.MarkDone(ctx, "owner-f", "nope")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})
}

// Catalog checks plant round trips, replacement and transactional imports
func Catalog(t *testing.T, newStore func(t *testing.T) repository.Catalog) {
	ctx := context.Background()

	tomato := domain.Plant{
		Slug:           "tomato-roma",
		Name:           "Roma Tomato",
		ScientificName: "Solanum lycopersicum",
		Family:         "Solanaceae",
		Sun:            "full",
		SpacingInRowIn: floatPtr(24),
		Tags:           []string{"fruit", "warm"},
		Profile: domain.PlantOffsetProfile{
			StartOffsetDays: domain.IntPtr(-56),
			TransplantFrom:  domain.IntPtr(14),
			TransplantTo:    domain.IntPtr(28),
			DaysToMaturity:  domain.IntPtr(75),
		},
	}

	t.Run("round trip", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpsertPlant(ctx, tomato))

		got, err := store.GetPlant(ctx, "tomato-roma")
		require.NoError(t, err)
		assert.Equal(t, tomato.Name, got.Name)
		assert.Equal(t, tomato.ScientificName, got.ScientificName)
		assert.Equal(t, tomato.Tags, got.Tags)
		assert.Equal(t, tomato.Profile, got.Profile)
		require.NotNil(t, got.SpacingInRowIn)
		assert.Equal(t, 24.0, *got.SpacingInRowIn)
		assert.Nil(t, got.PlantingDepth)
	})

	t.Run("upsert replaces by slug", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.UpsertPlant(ctx, tomato))

		updated := tomato
		updated.Profile.DaysToMaturity = nil
		updated.Name = "Roma"
		require.NoError(t, store.UpsertPlant(ctx, updated))

		plants, err := store.ListPlants(ctx)
		require.NoError(t, err)
		require.Len(t, plants, 1)
		assert.Equal(t, "Roma", plants[0].Name)
		assert.Nil(t, plants[0].Profile.DaysToMaturity)
	})

	t.Run("missing plant", func(t *testing.T) {
		store := newStore(t)
		_, err := store.GetPlant(ctx, "unknown")
		assert.ErrorIs(t, err, domain.ErrPlantNotFound)
	})

	t.Run("transaction commit and rollback", func(t *testing.T) {
		store := newStore(t)

		tx, err := store.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.UpsertPlant(ctx, domain.Plant{Slug: "kale", Name: "Kale"}))
		require.NoError(t, tx.Rollback(ctx))

		_, err = store.GetPlant(ctx, "kale")
		assert.ErrorIs(t, err, domain.ErrPlantNotFound)

		tx, err = store.BeginTx(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.UpsertPlant(ctx, domain.Plant{Slug: "kale", Name: "Kale"}))
		require.NoError(t, tx.UpsertPlant(ctx, domain.Plant{Slug: "leek", Name: "Leek"}))
		require.NoError(t, tx.Commit(ctx))
		repository.SafeRollback(ctx, tx)

		plants, err := store.ListPlants(ctx)
		require.NoError(t, err)
		require.Len(t, plants, 2)
		assert.Equal(t, "Kale", plants[0].Name)
		assert.Equal(t, "Leek", plants[1].Name)
	})
}

// SettingsStore checks merge semantics of owner settings
func SettingsStore(t *testing.T, newStore func(t *testing.T) repository.SettingsStore) {
	ctx := context.Background()

	t.Run("nothing saved", func(t *testing.T) {
		store := newStore(t)
		got, err := store.GetSettings(ctx, "owner-x")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("merge keeps unspecified fields", func(t *testing.T) {
		store := newStore(t)
		frost := mustDate(t, "2025-04-10")
		require.NoError(t, store.SaveSettings(ctx, domain.UserSettings{
			OwnerID:             "owner-y",
			LastFrost:           &frost,
			WateringCadenceDays: domain.IntPtr(2),
			WateringWeeks:       domain.IntPtr(6),
		}))
		require.NoError(t, store.SaveSettings(ctx, domain.UserSettings{
			OwnerID:             "owner-y",
			WateringCadenceDays: domain.IntPtr(5),
		}))

		got, err := store.GetSettings(ctx, "owner-y")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.NotNil(t, got.LastFrost)
		assert.Equal(t, frost, *got.LastFrost)
		assert.Equal(t, 5, *got.WateringCadenceDays)
		assert.Equal(t, 6, *got.WateringWeeks)
		assert.WithinDuration(t, time.Now(), got.UpdatedAt, time.Hour)
	})
}
