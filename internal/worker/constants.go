package worker

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerJobDone   = "Worker job completed"
	LogMsgWorkerQueueFull = "Worker queue full, dropping job"
)

// Log messages - maintenance jobs
const (
	LogMsgStatsRefreshed = "Stats gauges refreshed"
	LogMsgSessionsPurged = "Expired sessions purged"
)

// Job names
const (
	JobNameStatsRefresh = "stats_refresh"
	JobNameSessionPurge = "session_purge"
)

// Error contexts
const (
	ErrContextStatsRefresh = "failed to refresh stats snapshot"
	ErrContextSessionPurge = "failed to purge expired sessions"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
