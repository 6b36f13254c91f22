package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "casino_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older log files kept alongside the new one
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCasino      = "Starting casino engine"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Storage
// =============================================================================

const (
	LogMsgStorageInitialized = "Storage initialized"
	LogMsgMigrationsApplied  = "Database migrations applied"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrate      = "failed to run migrations"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// NATSClientName identifies this process to the NATS server
	NATSClientName = "casino-engine"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgNATSBridgeEnabled          = "NATS bridge enabled"
	LogMsgNATSBridgeDisabled         = "NATS_URL not set, events stay in-process"
	ErrMsgFailedConnectNATS          = "failed to connect event bridge"
	ErrMsgFailedCreateDeadLetter     = "failed to create dead-letter writer"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgStatsHandlerRegistered     = "Stats counter handler registered"
)

// =============================================================================
// Background Jobs
// =============================================================================

const (
	// JobWorkers is the number of goroutines executing scheduled jobs
	JobWorkers = 2

	// JobQueueSize bounds pending scheduled jobs; ticks beyond it are dropped
	JobQueueSize = 16

	LogMsgJobsScheduled       = "Background jobs scheduled"
	LogMsgSessionPurgeSkipped = "Session store expires entries itself, purge job not scheduled"
	ErrMsgFailedScheduleJob   = "failed to schedule job"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownJobs           = "Stopping background jobs..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgSchedulerStopFailed        = "Scheduler did not stop in time"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgDeadLetterCloseFailed      = "Dead-letter writer close failed"
)
