package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// Log messages for worker pool operations
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgPoolDraining    = "Worker pool stopping, cancelling queued jobs"
)

// ErrMsgPoolStopped is returned when a job is submitted after Stop
const ErrMsgPoolStopped = "worker pool stopped"

// Pool defaults
const (
	DefaultWorkers   = 4
	DefaultQueueSize = 64
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
