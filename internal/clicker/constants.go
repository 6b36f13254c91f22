package clicker

// Upgrade tracks
const (
	TrackClick   = "click"
	TrackAuto    = "auto"
	TrackFactory = "factory"
	TrackBank    = "bank"
)

// Tracks lists every upgrade track in display order
var Tracks = []string{TrackClick, TrackAuto, TrackFactory, TrackBank}

// Cost growth factor per purchase, by track
var growthFactors = map[string]string{
	TrackClick:   "1.5",
	TrackAuto:    "1.8",
	TrackFactory: "2.0",
	TrackBank:    "2.5",
}

// Log messages
const (
	LogMsgUpgradePurchased = "Clicker upgrade purchased"
	LogMsgPassiveCollected = "Passive income collected"
	LogMsgPublishFailed    = "Failed to publish clicker upgrade event"
)

// Error contexts
const (
	ErrContextBeginTx        = "failed to begin transaction"
	ErrContextGetClickerData = "failed to get clicker data"
	ErrContextSaveClicker    = "failed to save clicker data"
	ErrContextGetBalance     = "failed to get balance"
	ErrContextCredit         = "failed to credit clicker earnings"
	ErrContextDebit          = "failed to debit upgrade cost"
	ErrContextCommit         = "failed to commit clicker update"
)
