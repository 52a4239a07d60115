// Command import-plants loads a plant catalog from a CSV or YAML file into the configured store.
//
//	import-plants -file plants.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/FrostPlanner_Go/internal/bootstrap"
	"github.com/osse101/FrostPlanner_Go/internal/catalog"
	"github.com/osse101/FrostPlanner_Go/internal/config"
	"github.com/osse101/FrostPlanner_Go/internal/logger"
)

func main() {
	file := flag.String("file", "", "catalog file to import (.csv, .yaml or .yml)")
	dryRun := flag.Bool("dry-run", false, "parse and normalize only; do not write")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "usage: import-plants -file plants.csv [-dry-run]")
		os.Exit(2)
	}

	if err := run(*file, *dryRun); err != nil {
		slog.Error("Import failed", "file", *file, "error", err)
		os.Exit(1)
	}
}

func run(path string, dryRun bool) error {
	plants, err := catalog.LoadFile(path)
	if err != nil {
		return err
	}

	if dryRun {
		logger.InitLogger(logger.DevelopmentConfig())
		for _, p := range plants {
			normalized, err := catalog.Normalize(p)
			if err != nil {
				return err
			}
			slog.Info("Parsed plant", "slug", normalized.Slug, "name", normalized.Name, "empty_profile", normalized.Profile.IsEmpty())
		}
		slog.Info("Dry run complete", "plants", len(plants))
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.InitLogger(logger.NewConfig(cfg.LogLevel, cfg.LogFormat, bootstrap.ServiceName, cfg.Version, cfg.Environment, false))

	ctx := context.Background()
	repos, err := bootstrap.InitializeRepositories(ctx, cfg, clockwork.NewRealClock())
	if err != nil {
		return err
	}
	defer repos.Close()

	n, err := catalog.NewService(repos.Catalog).Import(ctx, plants)
	if err != nil {
		return err
	}
	slog.Info("Import complete", "file", path, "plants", n)
	return nil
}
