package domain

import (
	"time"

	"github.com/golang-sql/civil"
)

// TaskType identifies the kind of schedulable work
type TaskType string

const (
	TaskTypeSeedIndoors TaskType = "seed_indoors"
	TaskTypeDirectSow   TaskType = "direct_sow"
	TaskTypeTransplant  TaskType = "transplant"
	TaskTypeHarvest     TaskType = "harvest"
	TaskTypeWater       TaskType = "water"
)

// TaskTypes lists every task type in materialization order
var TaskTypes = []TaskType{
	TaskTypeSeedIndoors,
	TaskTypeDirectSow,
	TaskTypeTransplant,
	TaskTypeHarvest,
	TaskTypeWater,
}

// IsValid reports whether t is a known task type
func (t TaskType) IsValid() bool {
	for _, known := range TaskTypes {
		if t == known {
			return true
		}
	}
	return false
}

// TaskRecord is the unit of schedulable work.
// ID is derived from (plant slug, type, due date) and is the idempotency key.
// Done and DoneAt are owned by the task list; regeneration never writes them.
type TaskRecord struct {
	ID        string     `json:"id"`
	Type      TaskType   `json:"type"`
	DueDate   civil.Date `json:"due_date"`
	Notes     string     `json:"notes"`
	Done      bool       `json:"done"`
	DoneAt    *time.Time `json:"done_at,omitempty"`
	OwnerID   string     `json:"owner_id"`
	PlantSlug string     `json:"plant_slug"`
	CreatedAt time.Time  `json:"created_at,omitempty"`
	UpdatedAt time.Time  `json:"updated_at,omitempty"`
}
