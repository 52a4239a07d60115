package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/FrostPlanner_Go/internal/config"
	"github.com/osse101/FrostPlanner_Go/internal/database"
	"github.com/osse101/FrostPlanner_Go/internal/database/memory"
	"github.com/osse101/FrostPlanner_Go/internal/database/postgres"
	"github.com/osse101/FrostPlanner_Go/internal/database/sqlite"
	"github.com/osse101/FrostPlanner_Go/internal/handler"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
)

// Repositories holds the store implementations selected by STORE_DRIVER,
// plus the readiness check and closer of the underlying connection.
type Repositories struct {
	Tasks    repository.TaskStore
	Catalog  repository.Catalog
	Settings repository.SettingsStore
	Health   handler.HealthChecker

	close func()
}

// Close releases the underlying connection
func (r *Repositories) Close() {
	if r.close != nil {
		r.close()
		slog.Info(LogMsgStoreClosed)
	}
}

// InitializeRepositories opens the configured store, applying migrations
// (postgres) or the embedded schema (sqlite) first.
func InitializeRepositories(ctx context.Context, cfg *config.Config, clock clockwork.Clock) (*Repositories, error) {
	var repos *Repositories

	switch cfg.StoreDriver {
	case config.StoreDriverPostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, database.DefaultMaxConnIdle, database.DefaultMaxConnLife)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		repos = &Repositories{
			Tasks:    postgres.NewTaskRepository(pool),
			Catalog:  postgres.NewPlantRepository(pool),
			Settings: postgres.NewSettingsRepository(pool),
			Health:   handler.HealthCheckFunc(pool.Ping),
			close:    pool.Close,
		}

	case config.StoreDriverSQLite:
		db, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		repos = &Repositories{
			Tasks:    sqlite.NewTaskRepository(db),
			Catalog:  sqlite.NewPlantRepository(db),
			Settings: sqlite.NewSettingsRepository(db),
			Health:   handler.HealthCheckFunc(db.PingContext),
			close:    func() { _ = db.Close() },
		}

	case config.StoreDriverMemory:
		slog.Warn(LogMsgMemoryStoreEphemeral)
		store := memory.NewStore(clock)
		repos = &Repositories{
			Tasks:    store,
			Catalog:  store,
			Settings: store,
			Health:   handler.HealthCheckFunc(func(context.Context) error { return nil }),
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
	}

	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver)
	return repos, nil
}
