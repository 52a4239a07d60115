package weather

import "time"

// Open-Meteo archive defaults
const (
	DefaultArchiveBaseURL = "https://archive-api.open-meteo.com/v1/archive"
	DailyMinVariable      = "temperature_2m_min"
	DefaultTimezone       = "auto"
	DefaultRatePerSec     = 5
	DefaultCacheSize      = 256
	DefaultCacheTTL       = 24 * time.Hour
)

// Log messages
const (
	LogMsgFetchingArchive = "Fetching historical temperatures"
	LogMsgArchiveFetched  = "Historical temperatures fetched"
	LogMsgArchiveFailed   = "Historical temperature fetch failed"
	LogMsgCacheHit        = "Weather cache hit"
	LogMsgDatesOutOfRange = "Archive has no data for the requested dates"
)

// ReasonDateOutOfRange marks an archive rejection of start_date or end_date.
// The archive answers 400 for days it does not hold yet.
const ReasonDateOutOfRange = "out of allowed range"
