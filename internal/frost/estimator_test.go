package frost

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/golang-sql/civil"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/weather"
	"github.com/osse101/FrostPlanner_Go/mocks"
)

func date(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	require.NoError(t, err)
	return d
}

// afterSeason is a clock for which the whole 2025 season has ended
func afterSeason() clockwork.Clock {
	return clockwork.NewFakeClockAt(time.Date(2025, time.August, 1, 12, 0, 0, 0, time.UTC))
}

func reading(t *testing.T, s string, v float64) weather.DailyReading {
	return weather.DailyReading{Date: date(t, s), MinTempC: &v}
}

func noReading(t *testing.T, s string) weather.DailyReading {
	return weather.DailyReading{Date: date(t, s)}
}

func TestLatestFrost(t *testing.T) {
	tests := []struct {
		name     string
		readings func(t *testing.T) []weather.DailyReading
		expected string
		found    bool
	}{
		{
			name: "latest freezing day wins",
			readings: func(t *testing.T) []weather.DailyReading {
				return []weather.DailyReading{
					reading(t, "2025-03-01", -4),
					reading(t, "2025-04-10", -0.5),
					reading(t, "2025-04-20", 3.2),
					reading(t, "2025-05-01", 8),
				}
			},
			expected: "2025-04-10",
			found:    true,
		},
		{
			name: "zero counts as frost",
			readings: func(t *testing.T) []weather.DailyReading {
				return []weather.DailyReading{
					reading(t, "2025-04-01", -2),
					reading(t, "2025-04-18", 0),
				}
			},
			expected: "2025-04-18",
			found:    true,
		},
		{
			name: "missing readings neither set nor clear",
			readings: func(t *testing.T) []weather.DailyReading {
				return []weather.DailyReading{
					reading(t, "2025-04-05", -1),
					noReading(t, "2025-04-06"),
					reading(t, "2025-04-07", math.NaN()),
					reading(t, "2025-04-08", 5),
				}
			},
			expected: "2025-04-05",
			found:    true,
		},
		{
			name: "unordered input is scanned by date",
			readings: func(t *testing.T) []weather.DailyReading {
				return []weather.DailyReading{
					reading(t, "2025-04-22", -1),
					reading(t, "2025-02-01", -8),
					reading(t, "2025-05-10", 12),
				}
			},
			expected: "2025-04-22",
			found:    true,
		},
		{
			name: "no freezing day",
			readings: func(t *testing.T) []weather.DailyReading {
				return []weather.DailyReading{
					reading(t, "2025-03-01", 4),
					noReading(t, "2025-03-02"),
				}
			},
			found: false,
		},
		{
			name:     "empty series",
			readings: func(t *testing.T) []weather.DailyReading { return nil },
			found:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := LatestFrost(tt.readings(t))
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, got.String())
			}
		})
	}
}

func TestLatestFrost_DoesNotReorderInput(t *testing.T) {
	in := []weather.DailyReading{
		reading(t, "2025-04-22", -1),
		reading(t, "2025-02-01", -8),
	}
	_, _ = LatestFrost(in)
	assert.Equal(t, "2025-04-22", in[0].Date.String())
}

func TestSeason(t *testing.T) {
	from, to := Season(2024)
	assert.Equal(t, "2024-01-01", from.String())
	assert.Equal(t, "2024-06-30", to.String())
}

func TestEstimateLastFrost(t *testing.T) {
	ctx := context.Background()
	from, to := Season(2025)

	t.Run("returns latest frost", func(t *testing.T) {
		src := mocks.NewMockWeatherSource(t)
		src.On("FetchDailyMinTemperatures", mock.Anything, 45.0, -93.0, from, to).
			Return([]weather.DailyReading{reading(t, "2025-04-12", -1.1), reading(t, "2025-04-30", 2)}, nil)

		got, err := NewEstimator(src, afterSeason()).EstimateLastFrost(ctx, 45.0, -93.0, 2025)
		require.NoError(t, err)
		assert.Equal(t, date(t, "2025-04-12"), got)
	})

	t.Run("not found", func(t *testing.T) {
		src := mocks.NewMockWeatherSource(t)
		src.On("FetchDailyMinTemperatures", mock.Anything, 1.3, 103.8, from, to).
			Return([]weather.DailyReading{reading(t, "2025-01-15", 24)}, nil)

		_, err := NewEstimator(src, afterSeason()).EstimateLastFrost(ctx, 1.3, 103.8, 2025)
		assert.ErrorIs(t, err, domain.ErrFrostNotFound)
	})

	t.Run("upstream error is returned unchanged", func(t *testing.T) {
		src := mocks.NewMockWeatherSource(t)
		src.On("FetchDailyMinTemperatures", mock.Anything, 45.0, -93.0, from, to).
			Return(nil, domain.ErrUpstreamTimeout)

		_, err := NewEstimator(src, afterSeason()).EstimateLastFrost(ctx, 45.0, -93.0, 2025)
		assert.ErrorIs(t, err, domain.ErrUpstreamTimeout)
		assert.NotErrorIs(t, err, domain.ErrFrostNotFound)
	})
}

func TestEstimateLastFrost_SeasonInProgress(t *testing.T) {
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC))

	t.Run("scan stops at yesterday", func(t *testing.T) {
		src := mocks.NewMockWeatherSource(t)
		src.On("FetchDailyMinTemperatures", mock.Anything, 45.0, -93.0, date(t, "2026-01-01"), date(t, "2026-03-09")).
			Return([]weather.DailyReading{reading(t, "2026-03-02", -6)}, nil).Once()

		got, err := NewEstimator(src, clock).EstimateLastFrost(ctx, 45.0, -93.0, 2026)
		require.NoError(t, err)
		assert.Equal(t, date(t, "2026-03-02"), got)
	})

	t.Run("past years keep the full season", func(t *testing.T) {
		from, to := Season(2025)
		src := mocks.NewMockWeatherSource(t)
		src.On("FetchDailyMinTemperatures", mock.Anything, 45.0, -93.0, from, to).
			Return([]weather.DailyReading{reading(t, "2025-04-10", -1)}, nil).Once()

		got, err := NewEstimator(src, clock).EstimateLastFrost(ctx, 45.0, -93.0, 2025)
		require.NoError(t, err)
		assert.Equal(t, date(t, "2025-04-10"), got)
	})

	t.Run("future year is not fetched", func(t *testing.T) {
		src := mocks.NewMockWeatherSource(t)

		_, err := NewEstimator(src, clock).EstimateLastFrost(ctx, 45.0, -93.0, 2027)
		assert.ErrorIs(t, err, domain.ErrFrostNotFound)
		src.AssertNotCalled(t, "FetchDailyMinTemperatures", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("new year's day has no elapsed days", func(t *testing.T) {
		src := mocks.NewMockWeatherSource(t)
		newYear := clockwork.NewFakeClockAt(time.Date(2026, time.January, 1, 10, 0, 0, 0, time.UTC))

		_, err := NewEstimator(src, newYear).EstimateLastFrost(ctx, 45.0, -93.0, 2026)
		assert.ErrorIs(t, err, domain.ErrFrostNotFound)
	})
}
