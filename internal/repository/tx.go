package repository

import (
	"context"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// CatalogTx groups catalog writes so an import applies all rows or none
type CatalogTx interface {
	UpsertPlant(ctx context.Context, plant domain.Plant) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
