package handler

// Generic HTTP error messages for client responses.
// These messages do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// Operation error messages
	ErrMsgGenerateScheduleFailed = "Failed to generate schedule"
	ErrMsgEstimateFrostFailed    = "Failed to estimate frost date"
	ErrMsgPreviewWindowsFailed   = "Failed to preview planting windows"
	ErrMsgListPlantsFailed       = "Failed to list plants"
	ErrMsgListTasksFailed        = "Failed to list tasks"
	ErrMsgMarkDoneFailed         = "Failed to complete task"
	ErrMsgGetSettingsFailed      = "Failed to get settings"
	ErrMsgSaveSettingsFailed     = "Failed to save settings"
)

// Success messages for API responses
const (
	MsgScheduleGenerated     = "Schedule generated"
	MsgSchedulePartial       = "Schedule generated with failures"
	MsgFrostEstimated        = "Frost date estimated"
	MsgTaskCompleted         = "Task completed"
	MsgEstimatedFrostNotSent = "Estimated frost could not be saved to settings"
)

// Query and path parameter names
const (
	ParamOwnerID = "owner_id"
	ParamTaskID  = "id"
)
