package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyGameType = "game_type"
)

// Retry configuration constants
const (
	// RetryInitialDelay is the delay before the first retry
	RetryInitialDelay = 2 * time.Second

	// RetryMaxAttempts is the default maximum number of retry attempts
	RetryMaxAttempts = 5
)

// Dead letter file configuration
const (
	DeadLetterFilePermissions = 0o644
	DeadLetterDirPermissions  = 0o755

	// DeadLetterMaxLineBytes caps a single entry when reading a dead-letter file
	DeadLetterMaxLineBytes = 1 << 20

	ErrMsgDeadLetterOpen  = "failed to open dead-letter file"
	ErrMsgDeadLetterParse = "malformed dead-letter entry"
)

// Payload decoding errors
const (
	ErrMsgNilPayload    = "event payload is nil"
	ErrMsgPayloadEncode = "failed to re-encode event payload"
	ErrMsgPayloadDecode = "failed to decode event payload"
)

// Log message constants
const (
	LogMsgEventPublishFailed    = "Event publish failed, retrying in background"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventDeadLettered     = "Event dead-lettered"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgNATSPublishFailed     = "Failed to mirror event to NATS"
	LogMsgNATSConnected         = "Connected to NATS"
	LogMsgNATSDisconnected      = "Disconnected from NATS"

	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay calculates the exponential backoff delay for retry attempts.
// Implements exponential backoff: 2s, 4s, 8s, 16s, 32s
// Formula: initialDelay * 2^(attempt-1)
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
