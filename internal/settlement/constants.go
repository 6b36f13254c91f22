package settlement

// Log messages
const (
	LogMsgBetPlaced      = "Bet placed"
	LogMsgBetRefunded    = "Bet refunded"
	LogMsgGameSettled    = "Game settled"
	LogMsgPublishFailed  = "Failed to publish settlement event"
	LogMsgSnapshotFailed = "Failed to compute stats snapshot after settlement"
)

// Error contexts
const (
	ErrContextGetBalance    = "failed to get balance"
	ErrContextDebit         = "failed to debit bet"
	ErrContextRefund        = "failed to refund bet"
	ErrContextCredit        = "failed to credit payout"
	ErrContextAppendHistory = "failed to append history"
	ErrContextEncodeDetails = "failed to encode game details"
	ErrContextBeginTx       = "failed to begin transaction"
	ErrContextCommit        = "failed to commit settlement"
)
