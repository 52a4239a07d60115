package postgres

// Error Messages
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	ErrMsgFailedToUpsertTask       = "failed to upsert task"
	ErrMsgFailedToQueryTasks       = "failed to query tasks"
	ErrMsgFailedToScanTask         = "failed to scan task"
	ErrMsgFailedToUpsertPlant      = "failed to upsert plant"
	ErrMsgFailedToQueryPlants      = "failed to query plants"
	ErrMsgFailedToScanPlant        = "failed to scan plant"
	ErrMsgFailedToSaveSettings     = "failed to save settings"
	ErrMsgFailedToGetSettings      = "failed to get settings"
	ErrMsgRowIteration             = "row iteration error"
)
