package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/golang-sql/civil"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

const taskColumns = `owner_id, id, plant_slug, type, due_date, notes, done, done_at, created_at, updated_at`

// TaskRepository implements repository.TaskStore for SQLite
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// UpsertTask inserts a task or merges it into the existing row, leaving done untouched
func (r *TaskRepository) UpsertTask(ctx context.Context, task domain.TaskRecord) error {
	now := nowMillis()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (owner_id, id, plant_slug, type, due_date, notes, done, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)
		 ON CONFLICT(owner_id, id) DO UPDATE SET
			plant_slug = excluded.plant_slug,
			type = excluded.type,
			due_date = excluded.due_date,
			notes = excluded.notes,
			updated_at = excluded.updated_at`,
		task.OwnerID, task.ID, task.PlantSlug, string(task.Type), task.DueDate.String(), task.Notes, now, now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert task %s: %w", task.ID, err)
	}
	return nil
}

// GetTask retrieves a single task for an owner
func (r *TaskRepository) GetTask(ctx context.Context, ownerID, id string) (*domain.TaskRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM tasks WHERE owner_id = ? AND id = ?`, ownerID, id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan task: %w", err)
	}
	return task, nil
}

// ListTasks returns an owner's tasks ordered by due date
func (r *TaskRepository) ListTasks(ctx context.Context, ownerID string) ([]domain.TaskRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE owner_id = ? ORDER BY due_date, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.TaskRecord
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return tasks, nil
}

// MarkDone flags a task as done. The first completion time is kept.
func (r *TaskRepository) MarkDone(ctx context.Context, ownerID, id string) (*domain.TaskRecord, error) {
	now := nowMillis()
	res, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET done = 1, done_at = COALESCE(done_at, ?), updated_at = ?
		 WHERE owner_id = ? AND id = ?`,
		now, now, ownerID, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to mark task done: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	return r.GetTask(ctx, ownerID, id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*domain.TaskRecord, error) {
	var task domain.TaskRecord
	var taskType, due string
	var doneAt sql.NullInt64
	var createdAt, updatedAt int64

	if err := row.Scan(
		&task.OwnerID,
		&task.ID,
		&task.PlantSlug,
		&taskType,
		&due,
		&task.Notes,
		&task.Done,
		&doneAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	d, err := civil.ParseDate(due)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q: %w", due, err)
	}
	task.Type = domain.TaskType(taskType)
	task.DueDate = d
	if doneAt.Valid {
		t := fromMillis(doneAt.Int64)
		task.DoneAt = &t
	}
	task.CreatedAt = fromMillis(createdAt)
	task.UpdatedAt = fromMillis(updatedAt)
	return &task, nil
}
