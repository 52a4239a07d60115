package repository

import (
	"context"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// Catalog defines the data access interface for the plant catalog
type Catalog interface {
	ListPlants(ctx context.Context) ([]domain.Plant, error)
	GetPlant(ctx context.Context, slug string) (*domain.Plant, error)
	UpsertPlant(ctx context.Context, plant domain.Plant) error
	BeginTx(ctx context.Context) (CatalogTx, error)
}
