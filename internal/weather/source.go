// Package weather provides historical daily temperature series for frost estimation.
package weather

import (
	"context"

	"github.com/golang-sql/civil"
)

// DailyReading is one day of a historical series.
// MinTempC is nil when the source has no usable reading for the date.
type DailyReading struct {
	Date     civil.Date
	MinTempC *float64
}

// Source fetches daily minimum temperatures for a location.
// Implementations return a partial or empty series when data is missing and
// an error only on transport failure.
type Source interface {
	FetchDailyMinTemperatures(ctx context.Context, lat, lon float64, from, to civil.Date) ([]DailyReading, error)
}
