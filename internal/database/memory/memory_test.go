package memory

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
	"github.com/osse101/FrostPlanner_Go/internal/repository/storetest"
)

func TestStore_TaskStore(t *testing.T) {
	storetest.TaskStore(t, func(t *testing.T) repository.TaskStore {
		return NewStore(nil)
	})
}

func TestStore_Catalog(t *testing.T) {
	storetest.Catalog(t, func(t *testing.T) repository.Catalog {
		return NewStore(nil)
	})
}

func TestStore_SettingsStore(t *testing.T) {
	storetest.SettingsStore(t, func(t *testing.T) repository.SettingsStore {
		return NewStore(nil)
	})
}

func TestStore_TimestampsFollowClock(t *testing.T) {
	start := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(start)
	store := NewStore(clock)
	ctx := context.Background()

	task := domain.TaskRecord{ID: "kale-water-2025-04-01", OwnerID: "o", Type: domain.TaskTypeWater}
	require.NoError(t, store.UpsertTask(ctx, task))

	clock.Advance(time.Hour)
	require.NoError(t, store.UpsertTask(ctx, task))

	got, err := store.GetTask(ctx, "o", task.ID)
	require.NoError(t, err)
	assert.Equal(t, start, got.CreatedAt)
	assert.Equal(t, start.Add(time.Hour), got.UpdatedAt)
}

func TestStore_UpsertHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewStore(nil).UpsertTask(ctx, domain.TaskRecord{ID: "x", OwnerID: "o"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPlantTx_ClosedAfterCommit(t *testing.T) {
	ctx := context.Background()
	tx, err := NewStore(nil).BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	err = tx.UpsertPlant(ctx, domain.Plant{Slug: "kale"})
	require.Error(t, err)
	assert.Equal(t, domain.ErrMsgTxClosed, err.Error())
}
