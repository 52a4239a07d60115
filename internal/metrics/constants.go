package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Scheduling metric names
const (
	MetricNameScheduleRuns      = "schedule_runs_total"
	MetricNameTasksMaterialized = "tasks_materialized_total"
	MetricNamePlantFailures     = "plant_failures_total"
	MetricNameFrostResolutions  = "frost_resolutions_total"
	MetricNameStoreUpsertErrors = "store_upsert_errors_total"
)

// Weather metric names
const (
	MetricNameWeatherRequestDuration = "weather_request_duration_seconds"
	MetricNameWeatherCacheHits       = "weather_cache_hits_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Scheduling metric help text
const (
	HelpTextScheduleRuns      = "Total number of schedule generation runs by outcome"
	HelpTextTasksMaterialized = "Total number of tasks materialized by type"
	HelpTextPlantFailures     = "Total number of plants skipped during schedule generation"
	HelpTextFrostResolutions  = "Total number of frost date resolutions by source"
	HelpTextStoreUpsertErrors = "Total number of failed task upserts"
)

// Weather metric help text
const (
	HelpTextWeatherRequestDuration = "Weather archive request latency in seconds"
	HelpTextWeatherCacheHits       = "Total number of weather lookups served from cache"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
	LabelSource  = "source"
)

// Schedule run outcomes
const (
	OutcomeSuccess = "success"
	OutcomePartial = "partial"
	OutcomeError   = "error"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// UpstreamLatencyBuckets covers archive lookups, which are slower than local handlers
var UpstreamLatencyBuckets = []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30}
