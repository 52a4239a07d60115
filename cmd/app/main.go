package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	_ "github.com/osse101/FrostPlanner_Go/docs"
	"github.com/osse101/FrostPlanner_Go/internal/bootstrap"
	"github.com/osse101/FrostPlanner_Go/internal/catalog"
	"github.com/osse101/FrostPlanner_Go/internal/config"
	"github.com/osse101/FrostPlanner_Go/internal/frost"
	"github.com/osse101/FrostPlanner_Go/internal/handler"
	"github.com/osse101/FrostPlanner_Go/internal/schedule"
	"github.com/osse101/FrostPlanner_Go/internal/server"
	"github.com/osse101/FrostPlanner_Go/internal/settings"
	"github.com/osse101/FrostPlanner_Go/internal/weather"
)

// @title Frost Planner API
// @version 1.0
// @description Seasonal planting scheduler: frost estimation, planting windows and task generation.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	for _, w := range warnings {
		slog.Warn(w)
	}

	if err := run(cfg); err != nil {
		slog.Error("Application error", "error", err)
		logFile.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()
	clock := clockwork.NewRealClock()

	repos, err := bootstrap.InitializeRepositories(ctx, cfg, clock)
	if err != nil {
		return err
	}

	source := weather.NewCachedSource(
		weather.NewOpenMeteoClient(weather.OpenMeteoConfig{
			BaseURL:    cfg.WeatherBaseURL,
			RatePerSec: cfg.WeatherRatePerSec,
		}),
		cfg.WeatherCacheSize,
		cfg.WeatherCacheTTL,
	)

	scheduleService := schedule.NewService(frost.NewEstimator(source, clock), repos.Tasks, clock, schedule.Config{
		FrostRetryYears: &cfg.FrostRetryYears,
		WeatherTimeout:  cfg.WeatherTimeout,
		StoreTimeout:    cfg.StoreTimeout,
		Location:        cfg.Location,
		UpsertWorkers:   cfg.UpsertWorkers,
	})
	settingsService := settings.NewService(repos.Settings, settings.Defaults{
		CadenceDays:   cfg.DefaultCadenceDays,
		DurationWeeks: cfg.DefaultDurationWeeks,
	})
	catalogService := catalog.NewService(repos.Catalog)

	handler.InitValidator()

	srv := server.NewServer(server.Options{
		Port:             cfg.Port,
		APIKey:           cfg.APIKey,
		TrustedProxies:   cfg.TrustedProxies,
		Version:          cfg.Version,
		DefaultFrostDate: cfg.DefaultFrostDate,
		ClientRatePerSec: cfg.ClientRatePerSec,
		ClientRateBurst:  cfg.ClientRateBurst,
	}, server.Services{
		Schedule: scheduleService,
		Settings: settingsService,
		Catalog:  catalogService,
		Tasks:    repos.Tasks,
		Health:   repos.Health,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var runErr error
	select {
	case <-stop:
	case runErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownGracePeriod)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:          srv,
		ScheduleService: scheduleService,
		Repositories:    repos,
	})
	return runErr
}
