package settings

// Minimum accepted watering preferences; smaller values are clamped
const (
	MinCadenceDays   = 1
	MinDurationWeeks = 1
)

// Log messages
const (
	LogMsgSettingsSaved = "Settings saved"
	LogMsgFrostSaved    = "Estimated frost saved to settings"
)
