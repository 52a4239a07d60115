package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
)

const plantColumns = `slug, name, scientific_name, family, variety, description, sun, water, soil,
	frost_hardiness, spacing_in_row_in, planting_depth_in, tags,
	start_offset_days, direct_sow_from, direct_sow_to, transplant_from, transplant_to, days_to_maturity,
	updated_at`

// PlantRepository implements repository.Catalog for SQLite
type PlantRepository struct {
	db *sql.DB
}

// NewPlantRepository creates a new PlantRepository
func NewPlantRepository(db *sql.DB) *PlantRepository {
	return &PlantRepository{db: db}
}

// ListPlants returns the whole catalog ordered by name
func (r *PlantRepository) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+plantColumns+` FROM plants ORDER BY name, slug`)
	if err != nil {
		return nil, fmt.Errorf("failed to query plants: %w", err)
	}
	defer rows.Close()

	var plants []domain.Plant
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plant: %w", err)
		}
		plants = append(plants, *plant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return plants, nil
}

// GetPlant retrieves a plant by slug
func (r *PlantRepository) GetPlant(ctx context.Context, slug string) (*domain.Plant, error) {
	plant, err := scanPlant(r.db.QueryRowContext(ctx, `SELECT `+plantColumns+` FROM plants WHERE slug = ?`, slug))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan plant: %w", err)
	}
	return plant, nil
}

// UpsertPlant inserts or replaces a catalog entry by slug
func (r *PlantRepository) UpsertPlant(ctx context.Context, plant domain.Plant) error {
	return upsertPlant(ctx, r.db, plant)
}

// BeginTx starts a catalog transaction
func (r *PlantRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &plantTx{tx: tx}, nil
}

type plantTx struct {
	tx *sql.Tx
}

func (t *plantTx) UpsertPlant(ctx context.Context, plant domain.Plant) error {
	return upsertPlant(ctx, t.tx, plant)
}

func (t *plantTx) Commit(ctx context.Context) error {
	return t.tx.Commit()
}

// Rollback after Commit is a no-op
func (t *plantTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return err
	}
	return nil
}

func upsertPlant(ctx context.Context, db execer, plant domain.Plant) error {
	tags := plant.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}
	p := plant.Profile

	_, err = db.ExecContext(ctx,
		`INSERT INTO plants (`+plantColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(slug) DO UPDATE SET
			name = excluded.name,
			scientific_name = excluded.scientific_name,
			family = excluded.family,
			variety = excluded.variety,
			description = excluded.description,
			sun = excluded.sun,
			water = excluded.water,
			soil = excluded.soil,
			frost_hardiness = excluded.frost_hardiness,
			spacing_in_row_in = excluded.spacing_in_row_in,
			planting_depth_in = excluded.planting_depth_in,
			tags = excluded.tags,
			start_offset_days = excluded.start_offset_days,
			direct_sow_from = excluded.direct_sow_from,
			direct_sow_to = excluded.direct_sow_to,
			transplant_from = excluded.transplant_from,
			transplant_to = excluded.transplant_to,
			days_to_maturity = excluded.days_to_maturity,
			updated_at = excluded.updated_at`,
		plant.Slug, plant.Name, plant.ScientificName, plant.Family, plant.Variety, plant.Description,
		plant.Sun, plant.Water, plant.Soil, plant.FrostHardiness,
		nullFloat(plant.SpacingInRowIn), nullFloat(plant.PlantingDepth), string(tagsJSON),
		nullInt(p.StartOffsetDays), nullInt(p.DirectSowFrom), nullInt(p.DirectSowTo),
		nullInt(p.TransplantFrom), nullInt(p.TransplantTo), nullInt(p.DaysToMaturity),
		nowMillis(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert plant %s: %w", plant.Slug, err)
	}
	return nil
}

func scanPlant(row scanner) (*domain.Plant, error) {
	var plant domain.Plant
	var spacing, depth sql.NullFloat64
	var tags string
	var start, sowFrom, sowTo, tpFrom, tpTo, maturity sql.NullInt64
	var updatedAt int64

	if err := row.Scan(
		&plant.Slug, &plant.Name, &plant.ScientificName, &plant.Family, &plant.Variety, &plant.Description,
		&plant.Sun, &plant.Water, &plant.Soil, &plant.FrostHardiness,
		&spacing, &depth, &tags,
		&start, &sowFrom, &sowTo, &tpFrom, &tpTo, &maturity,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &plant.Tags); err != nil {
		return nil, fmt.Errorf("invalid tags for %s: %w", plant.Slug, err)
	}
	plant.SpacingInRowIn = ptrFloat(spacing)
	plant.PlantingDepth = ptrFloat(depth)
	plant.Profile = domain.PlantOffsetProfile{
		StartOffsetDays: ptrInt(start),
		DirectSowFrom:   ptrInt(sowFrom),
		DirectSowTo:     ptrInt(sowTo),
		TransplantFrom:  ptrInt(tpFrom),
		TransplantTo:    ptrInt(tpTo),
		DaysToMaturity:  ptrInt(maturity),
	}
	plant.UpdatedAt = fromMillis(updatedAt)
	return &plant, nil
}
