package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-sql/civil"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FrostPlanner_Go/internal/config"
	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/mocks"
)

func TestInitializeRepositories(t *testing.T) {
	ctx := context.Background()
	due := civil.Date{Year: 2025, Month: 4, Day: 29}

	for _, driver := range []string{config.StoreDriverMemory, config.StoreDriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := &config.Config{
				StoreDriver: driver,
				SQLitePath:  filepath.Join(t.TempDir(), "planner.db"),
			}

			repos, err := InitializeRepositories(ctx, cfg, clockwork.NewFakeClock())
			require.NoError(t, err)
			t.Cleanup(repos.Close)

			require.NoError(t, repos.Health.CheckHealth(ctx))

			task := domain.TaskRecord{
				ID:        "kale-water-2025-04-29",
				Type:      domain.TaskTypeWater,
				DueDate:   due,
				OwnerID:   "owner-1",
				PlantSlug: "kale",
			}
			require.NoError(t, repos.Tasks.UpsertTask(ctx, task))

			got, err := repos.Tasks.ListTasks(ctx, "owner-1")
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.Equal(t, due, got[0].DueDate)

			settings, err := repos.Settings.GetSettings(ctx, "owner-1")
			require.NoError(t, err)
			assert.Nil(t, settings)
		})
	}
}

func TestInitializeRepositories_UnknownDriver(t *testing.T) {
	_, err := InitializeRepositories(context.Background(), &config.Config{StoreDriver: "mongo"}, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownStoreDriver)
}

func TestGracefulShutdown(t *testing.T) {
	svc := mocks.NewMockScheduleService(t)
	svc.On("Shutdown", mock.Anything).Return(errors.New("drain timed out")).Once()

	closed := false
	repos := &Repositories{close: func() { closed = true }}

	GracefulShutdown(context.Background(), ShutdownComponents{ScheduleService: svc, Repositories: repos})

	assert.True(t, closed, "store closed even when a service fails to drain")
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session_2025-01-01_00-00-00.log",
		"session_2025-01-02_00-00-00.log",
		"session_2025-01-03_00-00-00.log",
		"session_2025-01-04_00-00-00.log",
		"notes.txt",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"session_2025-01-03_00-00-00.log",
		"session_2025-01-04_00-00-00.log",
		"notes.txt",
	}, left)
}
