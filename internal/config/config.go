package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/golang-sql/civil"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string
	APIKey      string // API key for authentication

	TrustedProxies   []string
	ClientRatePerSec float64
	ClientRateBurst  int

	StoreDriver string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBMaxConns  int
	SQLitePath  string

	WeatherBaseURL    string
	WeatherTimeout    time.Duration
	WeatherRatePerSec int
	WeatherCacheSize  int
	WeatherCacheTTL   time.Duration

	StoreTimeout    time.Duration
	UpsertWorkers   int
	FrostRetryYears int

	Timezone             string
	Location             *time.Location
	DefaultCadenceDays   int
	DefaultDurationWeeks int
	DefaultFrostDate     civil.Date
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv("LOG_FORMAT", DefaultLogFormat)),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies:   getEnvAsList("TRUSTED_PROXIES"),
		ClientRatePerSec: getEnvAsFloat("CLIENT_RATE_PER_SEC", DefaultClientRatePerSec),
		ClientRateBurst:  getEnvAsInt("CLIENT_RATE_BURST", DefaultClientRateBurst),

		StoreDriver: strings.ToLower(getEnv("STORE_DRIVER", DefaultStoreDriver)),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:  getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		SQLitePath:  getEnv("SQLITE_PATH", DefaultSQLitePath),

		WeatherBaseURL:    getEnv("WEATHER_BASE_URL", DefaultWeatherBaseURL),
		WeatherTimeout:    getEnvAsDuration("WEATHER_TIMEOUT", DefaultWeatherTimeout),
		WeatherRatePerSec: getEnvAsInt("WEATHER_RATE_PER_SEC", DefaultWeatherRatePerSec),
		WeatherCacheSize:  getEnvAsInt("WEATHER_CACHE_SIZE", DefaultWeatherCacheSize),
		WeatherCacheTTL:   getEnvAsDuration("WEATHER_CACHE_TTL", DefaultWeatherCacheTTL),

		StoreTimeout:    getEnvAsDuration("STORE_TIMEOUT", DefaultStoreTimeout),
		UpsertWorkers:   getEnvAsInt("UPSERT_WORKERS", DefaultUpsertWorkers),
		FrostRetryYears: getEnvAsInt("FROST_RETRY_YEARS", DefaultFrostRetryYears),

		Timezone:             getEnv("TIMEZONE", DefaultTimezone),
		DefaultCadenceDays:   getEnvAsInt("DEFAULT_CADENCE_DAYS", DefaultCadenceDays),
		DefaultDurationWeeks: getEnvAsInt("DEFAULT_DURATION_WEEKS", DefaultDurationWeeks),
	}

	portStr := getEnv("PORT", strconv.Itoa(DefaultPort))
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API_KEY environment variable must be set for security")
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres, StoreDriverSQLite, StoreDriverMemory:
	default:
		return nil, fmt.Errorf("invalid STORE_DRIVER %q: expected %s, %s or %s",
			cfg.StoreDriver, StoreDriverPostgres, StoreDriverSQLite, StoreDriverMemory)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE value: %w", err)
	}
	cfg.Location = loc

	frost, err := civil.ParseDate(getEnv("DEFAULT_FROST_DATE", DefaultFrostDate))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_FROST_DATE value: %w", err)
	}
	cfg.DefaultFrostDate = frost

	if cfg.DefaultCadenceDays < 1 || cfg.DefaultDurationWeeks < 1 {
		return nil, fmt.Errorf("DEFAULT_CADENCE_DAYS and DEFAULT_DURATION_WEEKS must be at least 1")
	}
	if cfg.ClientRatePerSec <= 0 || cfg.ClientRateBurst < 1 {
		return nil, fmt.Errorf("CLIENT_RATE_PER_SEC and CLIENT_RATE_BURST must be positive")
	}
	if cfg.FrostRetryYears < 0 {
		return nil, fmt.Errorf("FROST_RETRY_YEARS must not be negative")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable, falling back to the default
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsFloat parses a float environment variable, falling back to the default
func getEnvAsFloat(key string, defaultValue float64) float64 {
	value, err := strconv.ParseFloat(getEnv(key, ""), 64)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// getEnvAsDuration parses a duration environment variable ("10s", "1h"), falling back to the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
