package stats

// Log messages
const (
	LogMsgSnapshotComputed       = "Stats snapshot computed"
	LogMsgCounterIncrementFailed = "Failed to increment settlement counter"
)

// Error contexts
const (
	ErrContextQueryHistory  = "failed to query history"
	ErrContextGetUser       = "failed to get user"
	ErrContextAchievements  = "failed to list achievements"
	ErrContextReadCounter   = "failed to read counter"
	ErrContextDecodePayload = "failed to decode game settled payload"
)
