// Package frost estimates the last spring frost date from historical temperatures.
package frost

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/golang-sql/civil"
	"github.com/jonboulle/clockwork"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/logger"
	"github.com/osse101/FrostPlanner_Go/internal/weather"
)

// Estimator derives a last-frost date for a location and year
type Estimator struct {
	source weather.Source
	clock  clockwork.Clock
}

// NewEstimator creates a new frost estimator. The clock bounds the scanned
// season to days that have already ended; nil uses the real clock.
func NewEstimator(source weather.Source, clock clockwork.Clock) *Estimator {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Estimator{source: source, clock: clock}
}

// Season returns the date range scanned for the given year
func Season(year int) (civil.Date, civil.Date) {
	from := civil.Date{Year: year, Month: time.Month(SeasonStartMonth), Day: SeasonStartDay}
	to := civil.Date{Year: year, Month: time.Month(SeasonEndMonth), Day: SeasonEndDay}
	return from, to
}

// elapsedSeason clips Season(year) to end no later than yesterday (UTC).
// ok is false when no day of the season has ended yet.
func (e *Estimator) elapsedSeason(year int) (from, to civil.Date, ok bool) {
	from, to = Season(year)
	yesterday := civil.DateOf(e.clock.Now().UTC()).AddDays(-1)
	if yesterday.Before(to) {
		to = yesterday
	}
	return from, to, !to.Before(from)
}

// EstimateLastFrost returns the latest day in January through June of year whose
// minimum temperature was at or below freezing. Only days that have ended are
// scanned, so a current-year estimate covers the season so far.
// Returns domain.ErrFrostNotFound when the series has no such day.
func (e *Estimator) EstimateLastFrost(ctx context.Context, lat, lon float64, year int) (civil.Date, error) {
	log := logger.FromContext(ctx)
	from, to, ok := e.elapsedSeason(year)
	if !ok {
		log.Debug(LogMsgSeasonNotStarted, "year", year)
		return civil.Date{}, fmt.Errorf("%w: %d", domain.ErrFrostNotFound, year)
	}

	log.Debug(LogMsgEstimatingFrost, "lat", lat, "lon", lon, "year", year, "to", to.String())

	readings, err := e.source.FetchDailyMinTemperatures(ctx, lat, lon, from, to)
	if err != nil {
		return civil.Date{}, err
	}

	last, ok := LatestFrost(readings)
	if !ok {
		log.Debug(LogMsgNoFrostFound, "year", year, "readings", len(readings))
		return civil.Date{}, fmt.Errorf("%w: %d", domain.ErrFrostNotFound, year)
	}

	log.Debug(LogMsgFrostEstimated, "year", year, "frost", last.String())
	return last, nil
}

// LatestFrost scans readings in date order and returns the last frost day.
// Readings without a finite value neither set nor clear the result.
func LatestFrost(readings []weather.DailyReading) (civil.Date, bool) {
	sorted := make([]weather.DailyReading, len(readings))
	copy(sorted, readings)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	var last civil.Date
	found := false
	for _, r := range sorted {
		if r.MinTempC == nil {
			continue
		}
		v := *r.MinTempC
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v <= FreezingPointC {
			last = r.Date
			found = true
		}
	}
	return last, found
}
