package schedule

// Defaults applied when Config leaves a field unset
const (
	DefaultFrostRetryYears = 1
	DefaultUpsertWorkers   = 4
	DefaultUpsertQueueSize = 64
)

// Log messages
const (
	LogMsgGenerateScheduleCalled = "GenerateSchedule called"
	LogMsgScheduleGenerated      = "Schedule generated"
	LogMsgFrostResolved          = "Frost date resolved"
	LogMsgFrostFallbackYear      = "No frost found, trying previous year"
	LogMsgFrostDefaultUsed       = "No frost found, using default frost date"
	LogMsgPlantSkipped           = "Plant skipped"
	LogMsgUpsertFailed           = "Failed to upsert task"
)

// Error messages
const (
	ErrMsgFrostInputMissing = "neither a frost date nor a location was given"
)
