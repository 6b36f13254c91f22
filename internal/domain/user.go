package domain

import "time"

// StartingBalance is the money granted to a freshly registered user
const StartingBalance = 5000

// User represents a registered player and their balance
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Money     int       `json:"money"`
	CreatedAt time.Time `json:"created_at"`
}

// ClickerData holds a user's progression in the clicker minigame.
// Each upgrade track has a level and the cost of its next purchase.
type ClickerData struct {
	UserID       string `json:"user_id"`
	ClickPower   int    `json:"click_power"`
	ClickLevel   int    `json:"click_level"`
	AutoLevel    int    `json:"auto_level"`
	FactoryLevel int    `json:"factory_level"`
	BankLevel    int    `json:"bank_level"`
	ClickCost    int    `json:"click_cost"`
	AutoCost     int    `json:"auto_cost"`
	FactoryCost  int    `json:"factory_cost"`
	BankCost     int    `json:"bank_cost"`
	TotalClicks  int64  `json:"total_clicks"`
	TotalEarned  int64  `json:"total_earned"`
}

// NewClickerData returns the base clicker progression for a new user
func NewClickerData(userID string) *ClickerData {
	return &ClickerData{
		UserID:      userID,
		ClickPower:  1,
		ClickLevel:  1,
		ClickCost:   10,
		AutoCost:    50,
		FactoryCost: 200,
		BankCost:    1000,
	}
}

// PassiveIncome is the amount credited per passive tick
func (c *ClickerData) PassiveIncome() int {
	return c.AutoLevel + 5*c.FactoryLevel + 20*c.BankLevel
}

// Achievement is a catalog entry. Nothing evaluates the condition; it is stored as data only.
type Achievement struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	Reward         int    `json:"reward"`
	ConditionType  string `json:"condition_type,omitempty"`
	ConditionValue int    `json:"condition_value,omitempty"`
}

// AchievementCatalog is the seeded achievement list, in ID order
var AchievementCatalog = []Achievement{
	{ID: 1, Name: "Premier pas", Description: "Joue ta première partie", Icon: "🎮", Reward: 100},
	{ID: 2, Name: "Gagnant", Description: "Gagne 10 parties", Icon: "🏆", Reward: 500},
	{ID: 3, Name: "Chanceux", Description: "Gagne avec un multiplicateur x50+", Icon: "🍀", Reward: 1000},
	{ID: 4, Name: "Millionnaire", Description: "Atteins 10,000$", Icon: "💰", Reward: 2000},
	{ID: 5, Name: "Série de victoires", Description: "Gagne 5 parties d'affilée", Icon: "🔥", Reward: 1500},
}

// UserAchievement links a user to an achievement they hold
type UserAchievement struct {
	UserID        string    `json:"user_id"`
	AchievementID int       `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// Counter keys for the global counter table
const (
	CounterGamesSettled       = "games_settled"
	CounterGamesSettledPrefix = "games_settled:"
)
