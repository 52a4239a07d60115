package window

import (
	"github.com/golang-sql/civil"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
)

// Planner timeline bounds around the frost date
const (
	TimelineDaysBefore = 56 // 8 weeks
	TimelineDaysAfter  = 84 // 12 weeks
)

// Calculator projects planting offsets onto the calendar (no DB dependencies)
type Calculator struct{}

// NewCalculator creates a new window calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// ComputeWindows resolves every defined offset of profile against frost.
// It never fails: undefined offsets yield nil outputs.
func (c *Calculator) ComputeWindows(frost civil.Date, profile domain.PlantOffsetProfile) domain.ScheduleWindow {
	w := domain.ScheduleWindow{
		StartIndoors: offsetDate(frost, profile.StartOffsetDays),
		DirectSow:    offsetRange(frost, profile.DirectSowFrom, profile.DirectSowTo),
		Transplant:   offsetRange(frost, profile.TransplantFrom, profile.TransplantTo),
	}

	earliest := earliestEstablishment(frost, profile)
	if earliest != nil && profile.DaysToMaturity != nil {
		harvest := earliest.AddDays(*profile.DaysToMaturity)
		w.HarvestEstimate = &harvest
	}

	return w
}

// Timeline returns the planner display range for frost
func (c *Calculator) Timeline(frost civil.Date) domain.DateRange {
	start := frost.AddDays(-TimelineDaysBefore)
	end := frost.AddDays(TimelineDaysAfter)
	return domain.DateRange{From: &start, To: &end}
}

// earliestEstablishment is the earlier of the direct-sow and transplant start dates
func earliestEstablishment(frost civil.Date, profile domain.PlantOffsetProfile) *civil.Date {
	directFrom := offsetDate(frost, profile.DirectSowFrom)
	transplantFrom := offsetDate(frost, profile.TransplantFrom)

	switch {
	case directFrom == nil:
		return transplantFrom
	case transplantFrom == nil:
		return directFrom
	case transplantFrom.Before(*directFrom):
		return transplantFrom
	default:
		return directFrom
	}
}

func offsetDate(frost civil.Date, offset *int) *civil.Date {
	if offset == nil {
		return nil
	}
	d := frost.AddDays(*offset)
	return &d
}

func offsetRange(frost civil.Date, from, to *int) *domain.DateRange {
	if from == nil && to == nil {
		return nil
	}
	return &domain.DateRange{
		From: offsetDate(frost, from),
		To:   offsetDate(frost, to),
	}
}
