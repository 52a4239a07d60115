package repository

import (
	"context"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// TaskStore defines the data access interface for planner tasks.
// Tasks are keyed by (owner, id). UpsertTask merges: on conflict it overwrites
// type, due date, notes and plant, and never touches done, done_at or created_at.
type TaskStore interface {
	UpsertTask(ctx context.Context, task domain.TaskRecord) error
	GetTask(ctx context.Context, ownerID, id string) (*domain.TaskRecord, error)
	ListTasks(ctx context.Context, ownerID string) ([]domain.TaskRecord, error)
	MarkDone(ctx context.Context, ownerID, id string) (*domain.TaskRecord, error)
}
