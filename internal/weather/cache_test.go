package weather

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSource struct {
	calls    int
	readings []DailyReading
	err      error
}

func (s *countingSource) FetchDailyMinTemperatures(ctx context.Context, lat, lon float64, from, to civil.Date) ([]DailyReading, error) {
	s.calls++
	return s.readings, s.err
}

func TestCachedSource_HitsAfterFirstFetch(t *testing.T) {
	cold := -2.0
	next := &countingSource{readings: []DailyReading{{Date: civilDate(t, "2025-03-01"), MinTempC: &cold}}}
	cache := NewCachedSource(next, 8, time.Hour)
	from, to := civilDate(t, "2025-01-01"), civilDate(t, "2025-06-30")

	first, err := cache.FetchDailyMinTemperatures(context.Background(), 45.0, -93.0, from, to)
	require.NoError(t, err)
	second, err := cache.FetchDailyMinTemperatures(context.Background(), 45.00001, -93.0, from, to)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, next.calls, "coordinates equal at 4 decimals share an entry")
	assert.Equal(t, 1, cache.Len())
}

func TestCachedSource_DistinctRanges(t *testing.T) {
	next := &countingSource{}
	cache := NewCachedSource(next, 8, time.Hour)

	_, _ = cache.FetchDailyMinTemperatures(context.Background(), 45, -93, civilDate(t, "2025-01-01"), civilDate(t, "2025-06-30"))
	_, _ = cache.FetchDailyMinTemperatures(context.Background(), 45, -93, civilDate(t, "2024-01-01"), civilDate(t, "2024-06-30"))

	assert.Equal(t, 2, next.calls)
}

func TestCachedSource_ErrorsNotCached(t *testing.T) {
	next := &countingSource{err: errors.New("boom")}
	cache := NewCachedSource(next, 8, time.Hour)
	from, to := civilDate(t, "2025-01-01"), civilDate(t, "2025-06-30")

	_, err := cache.FetchDailyMinTemperatures(context.Background(), 45, -93, from, to)
	assert.Error(t, err)
	_, err = cache.FetchDailyMinTemperatures(context.Background(), 45, -93, from, to)
	assert.Error(t, err)

	assert.Equal(t, 2, next.calls)
	assert.Equal(t, 0, cache.Len())
}
