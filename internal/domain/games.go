package domain

import (
	"encoding/json"
	"time"
)

// GameType identifies one of the wager games
type GameType string

const (
	GameBlackjack GameType = "blackjack"
	GameRoulette  GameType = "roulette"
	GameMinebomb  GameType = "minebomb"
	GameSlots     GameType = "slots"
)

// AllGameTypes lists every wager game in display order
var AllGameTypes = []GameType{GameBlackjack, GameRoulette, GameMinebomb, GameSlots}

// Valid reports whether g is a known game type
func (g GameType) Valid() bool {
	switch g {
	case GameBlackjack, GameRoulette, GameMinebomb, GameSlots:
		return true
	}
	return false
}

// GameResult is the terminal outcome of a wager
type GameResult string

const (
	ResultWin  GameResult = "win"
	ResultLose GameResult = "lose"
	ResultDraw GameResult = "draw"
)

// MinBet is the smallest accepted wager for every game
const MinBet = 10

// GameHistory is an immutable ledger entry written once per completed game
type GameHistory struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	GameType   GameType        `json:"game_type"`
	BetAmount  int             `json:"bet"`
	Result     GameResult      `json:"result"`
	Profit     int             `json:"profit"`
	Multiplier float64         `json:"multiplier"`
	Details    json.RawMessage `json:"details,omitempty"`
	CreatedAt  time.Time       `json:"date"`
}

// SortOrder controls history ordering by creation time
type SortOrder int

const (
	NewestFirst SortOrder = iota
	OldestFirst
)

// HistoryFilter narrows a history query. Empty fields match everything.
type HistoryFilter struct {
	UserID   string
	GameType GameType
}

// RecentHistoryLimit is how many records the history view returns
const RecentHistoryLimit = 20

// Settlement describes how a completed game changed the player's balance
type Settlement struct {
	HistoryID  string         `json:"history_id"`
	Result     GameResult     `json:"result"`
	Payout     int            `json:"payout"`
	Profit     int            `json:"profit"`
	Multiplier float64        `json:"multiplier"`
	Balance    int            `json:"money"`
	Stats      *StatsSnapshot `json:"stats"`
}

// Outcome is a resolved game handed to the settlement engine
type Outcome struct {
	UserID     string
	GameType   GameType
	Bet        int
	Result     GameResult
	Payout     int
	Multiplier float64
	Details    interface{}
}

// Profit is the signed change in balance relative to the bet
func (o Outcome) Profit() int {
	return o.Payout - o.Bet
}
