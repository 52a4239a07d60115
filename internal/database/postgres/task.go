package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

const taskColumns = `owner_id, id, plant_slug, type, due_date, notes, done, done_at, created_at, updated_at`

// TaskRepository implements repository.TaskStore for PostgreSQL
type TaskRepository struct {
	db *pgxpool.Pool
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// UpsertTask inserts a task or merges it into the existing row.
// done and done_at are never written here.
func (r *TaskRepository) UpsertTask(ctx context.Context, task domain.TaskRecord) error {
	query := `
		INSERT INTO tasks (owner_id, id, plant_slug, type, due_date, notes, done, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW(), NOW())
		ON CONFLICT (owner_id, id) DO UPDATE SET
			plant_slug = EXCLUDED.plant_slug,
			type = EXCLUDED.type,
			due_date = EXCLUDED.due_date,
			notes = EXCLUDED.notes,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query,
		task.OwnerID,
		task.ID,
		task.PlantSlug,
		string(task.Type),
		pgDate(task.DueDate),
		task.Notes,
	)
	if err != nil {
		return fmt.Errorf("%s %s: %w", ErrMsgFailedToUpsertTask, task.ID, err)
	}
	return nil
}

// GetTask retrieves a single task for an owner
func (r *TaskRepository) GetTask(ctx context.Context, ownerID, id string) (*domain.TaskRecord, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1 AND id = $2`

	task, err := scanTask(r.db.QueryRow(ctx, query, ownerID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanTask, err)
	}
	return task, nil
}

// ListTasks returns an owner's tasks ordered by due date
func (r *TaskRepository) ListTasks(ctx context.Context, ownerID string) ([]domain.TaskRecord, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1 ORDER BY due_date, id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryTasks, err)
	}
	defer rows.Close()

	var tasks []domain.TaskRecord
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanTask, err)
		}
		tasks = append(tasks, *task)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgRowIteration, err)
	}

	return tasks, nil
}

// MarkDone flags a task as done. The first completion time is kept.
func (r *TaskRepository) MarkDone(ctx context.Context, ownerID, id string) (*domain.TaskRecord, error) {
	query := `
		UPDATE tasks
		SET done = TRUE, done_at = COALESCE(done_at, NOW()), updated_at = NOW()
		WHERE owner_id = $1 AND id = $2
		RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRow(ctx, query, ownerID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanTask, err)
	}
	return task, nil
}

func scanTask(row pgx.Row) (*domain.TaskRecord, error) {
	var task domain.TaskRecord
	var taskType string
	var due pgtype.Date
	var doneAt pgtype.Timestamptz

	err := row.Scan(
		&task.OwnerID,
		&task.ID,
		&task.PlantSlug,
		&taskType,
		&due,
		&task.Notes,
		&task.Done,
		&doneAt,
		&task.CreatedAt,
		&task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.Type = domain.TaskType(taskType)
	if d := civilDate(due); d != nil {
		task.DueDate = *d
	}
	task.DoneAt = ptrTime(doneAt)
	return &task, nil
}
