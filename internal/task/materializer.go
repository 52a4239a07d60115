package task

import (
	"fmt"

	"github.com/golang-sql/civil"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// Input is everything needed to materialize one plant's tasks
type Input struct {
	PlantSlug string
	PlantName string
	Window    domain.ScheduleWindow
	Prefs     domain.WateringPreferences
	Today     civil.Date
	OwnerID   string
}

// Materializer turns schedule windows into task records (no DB dependencies)
type Materializer struct{}

// NewMaterializer creates a new task materializer
func NewMaterializer() *Materializer {
	return &Materializer{}
}

// ID returns the idempotency key of a task
func ID(plantSlug string, taskType domain.TaskType, due civil.Date) string {
	return fmt.Sprintf("%s-%s-%s", plantSlug, taskType, due.String())
}

// MaterializeTasks emits one task per resolved window field followed by the
// watering series, deduplicated by id. Prefs must already be validated (>= 1).
func (m *Materializer) MaterializeTasks(in Input) []domain.TaskRecord {
	var tasks []domain.TaskRecord
	seen := make(map[string]struct{})

	emit := func(taskType domain.TaskType, due *civil.Date, notes string) {
		if due == nil {
			return
		}
		id := ID(in.PlantSlug, taskType, *due)
		if _, dup := seen[id]; dup {
			return
		}
		seen[id] = struct{}{}
		tasks = append(tasks, domain.TaskRecord{
			ID:        id,
			Type:      taskType,
			DueDate:   *due,
			Notes:     notes,
			OwnerID:   in.OwnerID,
			PlantSlug: in.PlantSlug,
		})
	}

	w := in.Window
	emit(domain.TaskTypeSeedIndoors, w.StartIndoors, fmt.Sprintf(NoteSeedIndoors, in.PlantName))
	emit(domain.TaskTypeDirectSow, rangeFrom(w.DirectSow), fmt.Sprintf(NoteDirectSow, in.PlantName))
	emit(domain.TaskTypeTransplant, rangeFrom(w.Transplant), fmt.Sprintf(NoteTransplant, in.PlantName))
	emit(domain.TaskTypeHarvest, w.HarvestEstimate, fmt.Sprintf(NoteHarvest, in.PlantName))

	if start := rangeFrom(w.Transplant); start != nil {
		for _, due := range WateringDates(*start, in.Prefs, in.Today) {
			emit(domain.TaskTypeWater, &due, fmt.Sprintf(NoteWater, in.PlantName))
		}
	}

	return tasks
}

// WateringDates steps from start by the cadence across durationWeeks*7 days
// inclusive and keeps the dates not before today. The series stays anchored
// to start; past steps are dropped, not shifted.
func WateringDates(start civil.Date, prefs domain.WateringPreferences, today civil.Date) []civil.Date {
	if prefs.CadenceDays < 1 || prefs.DurationWeeks < 1 {
		return nil
	}
	totalDays := prefs.DurationWeeks * DaysPerWeek

	var dates []civil.Date
	for offset := 0; offset <= totalDays; offset += prefs.CadenceDays {
		d := start.AddDays(offset)
		if d.Before(today) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

func rangeFrom(r *domain.DateRange) *civil.Date {
	if r == nil {
		return nil
	}
	return r.From
}
