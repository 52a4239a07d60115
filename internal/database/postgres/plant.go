package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
)

const plantColumns = `slug, name, scientific_name, family, variety, description, sun, water, soil,
	frost_hardiness, spacing_in_row_in, planting_depth_in, tags,
	start_offset_days, direct_sow_from, direct_sow_to, transplant_from, transplant_to, days_to_maturity,
	updated_at`

const upsertPlantQuery = `
	INSERT INTO plants (
		slug, name, scientific_name, family, variety, description, sun, water, soil,
		frost_hardiness, spacing_in_row_in, planting_depth_in, tags,
		start_offset_days, direct_sow_from, direct_sow_to, transplant_from, transplant_to, days_to_maturity,
		updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW())
	ON CONFLICT (slug) DO UPDATE SET
		name = EXCLUDED.name,
		scientific_name = EXCLUDED.scientific_name,
		family = EXCLUDED.family,
		variety = EXCLUDED.variety,
		description = EXCLUDED.description,
		sun = EXCLUDED.sun,
		water = EXCLUDED.water,
		soil = EXCLUDED.soil,
		frost_hardiness = EXCLUDED.frost_hardiness,
		spacing_in_row_in = EXCLUDED.spacing_in_row_in,
		planting_depth_in = EXCLUDED.planting_depth_in,
		tags = EXCLUDED.tags,
		start_offset_days = EXCLUDED.start_offset_days,
		direct_sow_from = EXCLUDED.direct_sow_from,
		direct_sow_to = EXCLUDED.direct_sow_to,
		transplant_from = EXCLUDED.transplant_from,
		transplant_to = EXCLUDED.transplant_to,
		days_to_maturity = EXCLUDED.days_to_maturity,
		updated_at = NOW()
`

// PlantRepository implements repository.Catalog for PostgreSQL
type PlantRepository struct {
	db *pgxpool.Pool
}

// NewPlantRepository creates a new PlantRepository
func NewPlantRepository(db *pgxpool.Pool) *PlantRepository {
	return &PlantRepository{db: db}
}

// ListPlants returns the whole catalog ordered by name
func (r *PlantRepository) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants ORDER BY name, slug`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryPlants, err)
	}
	defer rows.Close()

	var plants []domain.Plant
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanPlant, err)
		}
		plants = append(plants, *plant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return plants, nil
}

// GetPlant retrieves a plant by slug
func (r *PlantRepository) GetPlant(ctx context.Context, slug string) (*domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE slug = $1`

	plant, err := scanPlant(r.db.QueryRow(ctx, query, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, slug)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanPlant, err)
	}
	return plant, nil
}

// UpsertPlant inserts or replaces a catalog entry by slug
func (r *PlantRepository) UpsertPlant(ctx context.Context, plant domain.Plant) error {
	return upsertPlant(ctx, r.db, plant)
}

// BeginTx starts a catalog transaction
func (r *PlantRepository) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	return &plantTx{tx: tx}, nil
}

// plantTx implements repository.CatalogTx over a pgx transaction
type plantTx struct {
	tx pgx.Tx
}

func (t *plantTx) UpsertPlant(ctx context.Context, plant domain.Plant) error {
	return upsertPlant(ctx, t.tx, plant)
}

func (t *plantTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *plantTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func upsertPlant(ctx context.Context, db execer, plant domain.Plant) error {
	tags := plant.Tags
	if tags == nil {
		tags = []string{}
	}
	p := plant.Profile

	_, err := db.Exec(ctx, upsertPlantQuery,
		plant.Slug,
		plant.Name,
		plant.ScientificName,
		plant.Family,
		plant.Variety,
		plant.Description,
		plant.Sun,
		plant.Water,
		plant.Soil,
		plant.FrostHardiness,
		plant.SpacingInRowIn,
		plant.PlantingDepth,
		tags,
		p.StartOffsetDays,
		p.DirectSowFrom,
		p.DirectSowTo,
		p.TransplantFrom,
		p.TransplantTo,
		p.DaysToMaturity,
	)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertPlant, plant.Slug, err)
	}
	return nil
}

func scanPlant(row pgx.Row) (*domain.Plant, error) {
	var plant domain.Plant
	var spacing, depth pgtype.Float8
	var start, sowFrom, sowTo, tpFrom, tpTo, maturity pgtype.Int4

	err := row.Scan(
		&plant.Slug,
		&plant.Name,
		&plant.ScientificName,
		&plant.Family,
		&plant.Variety,
		&plant.Description,
		&plant.Sun,
		&plant.Water,
		&plant.Soil,
		&plant.FrostHardiness,
		&spacing,
		&depth,
		&plant.Tags,
		&start,
		&sowFrom,
		&sowTo,
		&tpFrom,
		&tpTo,
		&maturity,
		&plant.UpdatedAt,
	)
	if err != nil {
		return nil, err
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
	return &plant, nil
}
