// Package memory implements the repositories in process memory.
// Used for STORE_DRIVER=memory and as the reference store in tests.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/repository"
)

type taskKey struct {
	owner string
	id    string
}

// Store holds tasks, plants and settings behind a single lock
type Store struct {
	mu       sync.RWMutex
	clock    clockwork.Clock
	tasks    map[taskKey]domain.TaskRecord
	plants   map[string]domain.Plant
	settings map[string]domain.UserSettings
}

// NewStore creates an empty store using clock for timestamps
func NewStore(clock clockwork.Clock) *Store {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Store{
		clock:    clock,
		tasks:    make(map[taskKey]domain.TaskRecord),
		plants:   make(map[string]domain.Plant),
		settings: make(map[string]domain.UserSettings),
	}
}

// UpsertTask inserts a task or merges it, leaving done, done_at and created_at untouched
func (s *Store) UpsertTask(ctx context.Context, task domain.TaskRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	key := taskKey{owner: task.OwnerID, id: task.ID}
	existing, ok := s.tasks[key]
	if !ok {
		task.Done = false
		task.DoneAt = nil
		task.CreatedAt = now
		task.UpdatedAt = now
		s.tasks[key] = task
		return nil
	}

	existing.Type = task.Type
	existing.DueDate = task.DueDate
	existing.Notes = task.Notes
	existing.PlantSlug = task.PlantSlug
	existing.UpdatedAt = now
	s.tasks[key] = existing
	return nil
}

// GetTask retrieves a single task for an owner
func (s *Store) GetTask(ctx context.Context, ownerID, id string) (*domain.TaskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[taskKey{owner: ownerID, id: id}]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	return &task, nil
}

// ListTasks returns an owner's tasks ordered by due date, then id
func (s *Store) ListTasks(ctx context.Context, ownerID string) ([]domain.TaskRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []domain.TaskRecord
	for key, task := range s.tasks {
		if key.owner == ownerID {
			tasks = append(tasks, task)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].DueDate != tasks[j].DueDate {
			return tasks[i].DueDate.Before(tasks[j].DueDate)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

// MarkDone flags a task as done. The first completion time is kept.
func (s *Store) MarkDone(ctx context.Context, ownerID, id string) (*domain.TaskRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := taskKey{owner: ownerID, id: id}
	task, ok := s.tasks[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	now := s.clock.Now()
	if task.DoneAt == nil {
		task.DoneAt = &now
	}
	task.Done = true
	task.UpdatedAt = now
	s.tasks[key] = task
	return &task, nil
}

// ListPlants returns the whole catalog ordered by name
func (s *Store) ListPlants(ctx context.Context) ([]domain.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	plants := make([]domain.Plant, 0, len(s.plants))
	for _, p := range s.plants {
		plants = append(plants, p)
	}
	sort.Slice(plants, func(i, j int) bool {
		if plants[i].Name != plants[j].Name {
			return plants[i].Name < plants[j].Name
		}
		return plants[i].Slug < plants[j].Slug
	})
	return plants, nil
}

// GetPlant retrieves a plant by slug
func (s *Store) GetPlant(ctx context.Context, slug string) (*domain.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plants[slug]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrPlantNotFound, slug)
	}
	return &p, nil
}

// UpsertPlant inserts or replaces a catalog entry by slug
func (s *Store) UpsertPlant(ctx context.Context, plant domain.Plant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putPlantLocked(plant)
	return nil
}

func (s *Store) putPlantLocked(plant domain.Plant) {
	plant.UpdatedAt = s.clock.Now()
	s.plants[plant.Slug] = plant
}

// BeginTx buffers plant writes until Commit
func (s *Store) BeginTx(ctx context.Context) (repository.CatalogTx, error) {
	return &plantTx{store: s}, nil
}

type plantTx struct {
	store   *Store
	pending []domain.Plant
	closed  bool
}

func (t *plantTx) UpsertPlant(ctx context.Context, plant domain.Plant) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.pending = append(t.pending, plant)
	return nil
}

func (t *plantTx) Commit(ctx context.Context) error {
	if t.closed {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.closed = true

	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	for _, p := range t.pending {
		t.store.putPlantLocked(p)
	}
	return nil
}

// Rollback after Commit is a no-op
func (t *plantTx) Rollback(ctx context.Context) error {
	t.closed = true
	t.pending = nil
	return nil
}

// GetSettings returns an owner's settings, or nil when nothing is saved
func (s *Store) GetSettings(ctx context.Context, ownerID string) (*domain.UserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.settings[ownerID]
	if !ok {
		return nil, nil
	}
	return &settings, nil
}

// SaveSettings merges the provided fields into the owner's settings
func (s *Store) SaveSettings(ctx context.Context, settings domain.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.settings[settings.OwnerID]
	merged.OwnerID = settings.OwnerID
	if settings.LastFrost != nil {
		d := *settings.LastFrost
		merged.LastFrost = &d
	}
	if settings.WateringCadenceDays != nil {
		merged.WateringCadenceDays = domain.IntPtr(*settings.WateringCadenceDays)
	}
	if settings.WateringWeeks != nil {
		merged.WateringWeeks = domain.IntPtr(*settings.WateringWeeks)
	}
	merged.UpdatedAt = s.clock.Now()
	s.settings[settings.OwnerID] = merged
	return nil
}

// Compile-time checks
var (
	_ repository.TaskStore     = (*Store)(nil)
	_ repository.Catalog       = (*Store)(nil)
	_ repository.SettingsStore = (*Store)(nil)
)
