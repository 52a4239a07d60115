package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-sql/civil"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/FrostPlanner_Go/internal/logger"
	"github.com/osse101/FrostPlanner_Go/internal/metrics"
)

// CachedSource memoizes successful series lookups in an expiring LRU.
// Historical archive data does not change, so entries only age out to bound memory.
type CachedSource struct {
	next Source
	lru  *expirable.LRU[string, []DailyReading]
}

// NewCachedSource wraps next with a cache of the given size and TTL
func NewCachedSource(next Source, size int, ttl time.Duration) *CachedSource {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedSource{
		next: next,
		lru:  expirable.NewLRU[string, []DailyReading](size, nil, ttl),
	}
}

// FetchDailyMinTemperatures implements Source
func (c *CachedSource) FetchDailyMinTemperatures(ctx context.Context, lat, lon float64, from, to civil.Date) ([]DailyReading, error) {
	key := cacheKey(lat, lon, from, to)
	if readings, ok := c.lru.Get(key); ok {
		metrics.WeatherCacheHits.Inc()
		logger.FromContext(ctx).Debug(LogMsgCacheHit, "key", key)
		return readings, nil
	}

	readings, err := c.next.FetchDailyMinTemperatures(ctx, lat, lon, from, to)
	if err != nil {
		return nil, err
	}
	c.lru.Add(key, readings)
	return readings, nil
}

// Len returns the number of cached series
func (c *CachedSource) Len() int {
	return c.lru.Len()
}

// cacheKey rounds coordinates to the precision sent upstream
func cacheKey(lat, lon float64, from, to civil.Date) string {
	return fmt.Sprintf("%.4f:%.4f:%s:%s", lat, lon, from, to)
}
