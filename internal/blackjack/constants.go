package blackjack

// Shoe size bounds, in decks
const (
	MinDecks = 1
	MaxDecks = 8
)

// Payouts
const (
	WinPayoutFactor = 2   // a win returns the bet plus an equal amount
	WinMultiplier   = 1.0 // recorded in history for a win
)

// Log messages
const (
	LogMsgHandDealt     = "Blackjack hand dealt"
	LogMsgHandResolved  = "Blackjack hand resolved"
	LogMsgRestoreFailed = "Failed to restore blackjack session after settlement error"
)

// Error contexts
const (
	ErrContextSaveSession  = "failed to save blackjack session"
	ErrContextClearSession = "failed to clear blackjack session"
	ErrContextSettle       = "failed to settle blackjack hand"
	ErrContextRefund       = "failed to refund bet after session save error"
)
