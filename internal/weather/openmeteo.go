package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	"golang.org/x/time/rate"

	"github.com/osse101/FrostPlanner_Go/internal/domain"
	"github.com/osse101/FrostPlanner_Go/internal/logger"
	"github.com/osse101/FrostPlanner_Go/internal/metrics"
)

// OpenMeteoConfig configures the Open-Meteo archive client
type OpenMeteoConfig struct {
	BaseURL    string
	RatePerSec int
	HTTPClient *http.Client
}

// OpenMeteoClient reads daily minimum temperatures from the Open-Meteo archive API
type OpenMeteoClient struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewOpenMeteoClient creates a new archive client
func NewOpenMeteoClient(cfg OpenMeteoConfig) *OpenMeteoClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultArchiveBaseURL
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = DefaultRatePerSec
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}
	return &OpenMeteoClient{
		baseURL: cfg.BaseURL,
		http:    cfg.HTTPClient,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.RatePerSec),
	}
}

type archiveResponse struct {
	Daily struct {
		Time    []string `json:"time"`
		MinTemp []any    `json:"temperature_2m_min"`
	} `json:"daily"`
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}

// FetchDailyMinTemperatures implements Source
func (c *OpenMeteoClient) FetchDailyMinTemperatures(ctx context.Context, lat, lon float64, from, to civil.Date) ([]DailyReading, error) {
	log := logger.FromContext(ctx)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, classifyTransportError(err)
	}

	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', 4, 64))
	q.Set("start_date", from.String())
	q.Set("end_date", to.String())
	q.Set("daily", DailyMinVariable)
	q.Set("timezone", DefaultTimezone)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build archive request: %w", err)
	}

	log.Debug(LogMsgFetchingArchive, "lat", lat, "lon", lon, "from", from.String(), "to", to.String())

	start := time.Now()
	resp, err := c.http.Do(req)
	metrics.WeatherRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		log.Warn(LogMsgArchiveFailed, "error", err)
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	var parsed archiveResponse
	if len(body) > 0 {
		if err := json.Unmarshal(body, &parsed); err != nil && resp.StatusCode == http.StatusOK {
			return nil, fmt.Errorf("%w: malformed archive response: %v", domain.ErrUpstreamUnavailable, err)
		}
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest && isDateOutOfRange(parsed.Reason):
		log.Info(LogMsgDatesOutOfRange, "from", from.String(), "to", to.String(), "reason", parsed.Reason)
		return []DailyReading{}, nil
	case resp.StatusCode == http.StatusBadRequest:
		return nil, fmt.Errorf("%w: archive rejected request: %s", domain.ErrInvalidInput, parsed.Reason)
	case resp.StatusCode != http.StatusOK:
		log.Warn(LogMsgArchiveFailed, "status", resp.StatusCode, "reason", parsed.Reason)
		return nil, fmt.Errorf("%w: archive returned status %d", domain.ErrUpstreamUnavailable, resp.StatusCode)
	}

	readings := toReadings(parsed.Daily.Time, parsed.Daily.MinTemp)
	log.Debug(LogMsgArchiveFetched, "days", len(readings))
	return readings, nil
}

// isDateOutOfRange reports whether a 400 reason is about the date parameters
func isDateOutOfRange(reason string) bool {
	return strings.Contains(reason, ReasonDateOutOfRange) && strings.Contains(reason, "_date")
}

// toReadings pairs dates with values. Missing or non-numeric values become nil readings;
// unparseable dates are skipped.
func toReadings(times []string, values []any) []DailyReading {
	readings := make([]DailyReading, 0, len(times))
	for i, ts := range times {
		d, err := civil.ParseDate(ts)
		if err != nil {
			continue
		}
		r := DailyReading{Date: d}
		if i < len(values) {
			if v, ok := values[i].(float64); ok && !math.IsNaN(v) && !math.IsInf(v, 0) {
				r.MinTempC = &v
			}
		}
		readings = append(readings, r)
	}
	return readings
}

// classifyTransportError maps context and network failures onto domain upstream errors
func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamTimeout, err)
	}
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrUpstreamUnavailable, err)
}
