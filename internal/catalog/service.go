package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/logger"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
)

// Service exposes the plant catalog
type Service interface {
	ListPlants(ctx context.Context) ([]domain.Plant, error)
	// GetPlants looks up plants by slug, in the given order. Duplicates are dropped.
	GetPlants(ctx context.Context, slugs []string) ([]domain.Plant, error)
	// ResolvePlants is GetPlants for batches: unknown slugs become failures
	// instead of failing the lookup. Other store errors are still returned.
	ResolvePlants(ctx context.Context, slugs []string) ([]domain.Plant, []domain.PlantFailure, error)
	// Import upserts plants by slug in a single transaction and returns the count
	Import(ctx context.Context, plants []domain.Plant) (int, error)
}

type service struct {
	repo repository.Catalog
}

// NewService creates a new catalog service
func NewService(repo repository.Catalog) Service {
	return &service{repo: repo}
}

func (s *service) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	plants, err := s.repo.ListPlants(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list plants: %w", err)
	}
	return plants, nil
}

func (s *service) GetPlants(ctx context.Context, slugs []string) ([]domain.Plant, error) {
	plants := make([]domain.Plant, 0, len(slugs))
	for _, slug := range uniqueSlugs(slugs) {
		plant, err := s.repo.GetPlant(ctx, slug)
		if err != nil {
			return nil, err
		}
		plants = append(plants, *plant)
	}
	return plants, nil
}

func (s *service) ResolvePlants(ctx context.Context, slugs []string) ([]domain.Plant, []domain.PlantFailure, error) {
	var missing []domain.PlantFailure
	plants := make([]domain.Plant, 0, len(slugs))
	for _, slug := range uniqueSlugs(slugs) {
		plant, err := s.repo.GetPlant(ctx, slug)
		if errors.Is(err, domain.ErrPlantNotFound) {
			logger.FromContext(ctx).Warn(LogMsgUnknownPlant, "plant", slug)
			missing = append(missing, domain.NewPlantFailure(slug, err))
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		plants = append(plants, *plant)
	}
	return plants, missing, nil
}

// uniqueSlugs trims slugs and drops blanks and repeats, keeping first occurrences
func uniqueSlugs(slugs []string) []string {
	seen := make(map[string]struct{}, len(slugs))
	out := make([]string, 0, len(slugs))
	for _, slug := range slugs {
		slug = strings.TrimSpace(slug)
		if slug == "" {
			continue
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	return out
}

func (s *service) Import(ctx context.Context, plants []domain.Plant) (int, error) {
	log := logger.FromContext(ctx)

	if len(plants) == 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNoPlants)
	}

	normalized := make([]domain.Plant, 0, len(plants))
	for i, p := range plants {
		p, err := Normalize(p)
		if err != nil {
			return 0, fmt.Errorf("row %d: %w", i+1, err)
		}
		normalized = append(normalized, p)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	for i, p := range normalized {
		if err := tx.UpsertPlant(ctx, p); err != nil {
			return 0, fmt.Errorf("failed to upsert plant %s: %w", p.Slug, err)
		}
		if (i+1)%ImportProgressEvery == 0 {
			log.Info(LogMsgImportProgress, "count", i+1)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info(LogMsgImportDone, "count", len(normalized))
	return len(normalized), nil
}

// Normalize fills the slug from name and scientific name when absent and
// the name from the slug when absent
func Normalize(p domain.Plant) (domain.Plant, error) {
	p.Slug = strings.TrimSpace(p.Slug)
	p.Name = strings.TrimSpace(p.Name)
	if p.Slug == "" {
		p.Slug = DeriveSlug(p.Name, p.ScientificName)
	}
	if p.Slug == "" {
		return p, fmt.Errorf("%w: plant has neither slug nor name", domain.ErrInvalidInput)
	}
	if p.Name == "" {
		p.Name = TitleFromSlug(p.Slug)
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p, nil
}
