package minebomb

// Board limits
const (
	MinBombs = 3
	MaxBombs = 10
)

// Multiplier curve: 1 + diamonds * DiamondStep * (bombs / BombScale)
const (
	DiamondStep = "0.3"
	BombScale   = 5
)

// Log messages
const (
	LogMsgBoardStarted  = "Minebomb board started"
	LogMsgBombHit       = "Minebomb bomb revealed"
	LogMsgCashedOut     = "Minebomb cashed out"
	LogMsgRestoreFailed = "Failed to restore minebomb session after settlement error"
)

// Error contexts
const (
	ErrContextSaveSession  = "failed to save minebomb session"
	ErrContextClearSession = "failed to clear minebomb session"
	ErrContextSettle       = "failed to settle minebomb board"
	ErrContextRefund       = "failed to refund bet after session save error"
)
