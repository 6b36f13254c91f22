package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "game.settled")
const (
	// EventTypeGameSettled is published once a wager has been resolved and written to history
	EventTypeGameSettled = "game.settled"

	// EventTypeUserRegistered is published when a new account is created
	EventTypeUserRegistered = "user.registered"

	// EventTypeClickerUpgraded is published after a clicker upgrade purchase
	EventTypeClickerUpgraded = "clicker.upgraded"
)

// GameSettledPayload is the event payload for game.settled events
type GameSettledPayload struct {
	HistoryID  string     `json:"history_id"`
	UserID     string     `json:"user_id"`
	GameType   GameType   `json:"game_type"`
	Bet        int        `json:"bet"`
	Result     GameResult `json:"result"`
	Payout     int        `json:"payout"`
	Profit     int        `json:"profit"`
	Multiplier float64    `json:"multiplier"`
	Balance    int        `json:"balance"`
	Timestamp  int64      `json:"timestamp"`
}

// UserRegisteredPayload is the event payload for user.registered events
type UserRegisteredPayload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

// ClickerUpgradedPayload is the event payload for clicker.upgraded events
type ClickerUpgradedPayload struct {
	UserID   string `json:"user_id"`
	Track    string `json:"track"`
	Cost     int    `json:"cost"`
	NewLevel int    `json:"new_level"`
}
