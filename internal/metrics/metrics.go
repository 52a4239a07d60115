package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Scheduling Metrics
var (
	ScheduleRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameScheduleRuns,
			Help: HelpTextScheduleRuns,
		},
		[]string{LabelOutcome},
	)

	TasksMaterialized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTasksMaterialized,
			Help: HelpTextTasksMaterialized,
		},
		[]string{LabelType},
	)

	PlantFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePlantFailures,
			Help: HelpTextPlantFailures,
		},
	)

	FrostResolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameFrostResolutions,
			Help: HelpTextFrostResolutions,
		},
		[]string{LabelSource},
	)

	StoreUpsertErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStoreUpsertErrors,
			Help: HelpTextStoreUpsertErrors,
		},
	)
)

// Weather Metrics
var (
	WeatherRequestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameWeatherRequestDuration,
			Help:    HelpTextWeatherRequestDuration,
			Buckets: UpstreamLatencyBuckets,
		},
	)

	WeatherCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameWeatherCacheHits,
			Help: HelpTextWeatherCacheHits,
		},
	)
)
