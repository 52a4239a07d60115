package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/FrostPlanner_Go/internal/schedule"
	"github.com/osse101/FrostPlanner_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server          *server.Server
	ScheduleService schedule.Service
	Repositories    *Repositories
}

// GracefulShutdown stops the HTTP server first so no new runs start, then
// drains the schedule service's upsert workers, then closes the store.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ScheduleService != nil {
		shutdownService(ctx, ServiceNameSchedule, components.ScheduleService)
	}

	if components.Repositories != nil {
		components.Repositories.Close()
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
