package config

import "time"

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverSQLite   = "sqlite"
	StoreDriverMemory   = "memory"
)

// Defaults
const (
	DefaultPort                = 8080
	DefaultLogLevel            = "info"
	DefaultLogFormat           = "text"
	DefaultLogDir              = "logs"
	DefaultEnvironment         = "dev"
	DefaultVersion             = "dev"
	DefaultStoreDriver         = StoreDriverPostgres
	DefaultDBName              = "frostplanner"
	DefaultDBMaxConns          = 10
	DefaultSQLitePath          = "data/frostplanner.db"
	DefaultWeatherBaseURL      = "https://archive-api.open-meteo.com/v1/archive"
	DefaultWeatherTimeout      = 10 * time.Second
	DefaultWeatherRatePerSec   = 5
	DefaultWeatherCacheSize    = 256
	DefaultWeatherCacheTTL     = 24 * time.Hour
	DefaultStoreTimeout        = 5 * time.Second
	DefaultUpsertWorkers       = 4
	DefaultFrostRetryYears     = 1
	DefaultTimezone            = "UTC"
	DefaultCadenceDays         = 3
	DefaultDurationWeeks       = 4
	DefaultFrostDate           = "2025-04-15"
	DefaultShutdownGracePeriod = 15 * time.Second
	DefaultClientRatePerSec    = 10.0
	DefaultClientRateBurst     = 40
)
