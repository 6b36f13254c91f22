package domain

// GameBreakdown summarises one game type
type GameBreakdown struct {
	Games   int   `json:"games"`
	Wins    int   `json:"wins"`
	Wagered int64 `json:"wagered"`
	Won     int64 `json:"won"`
}

// StatsSnapshot is the aggregate over a set of history records.
// BiggestLoss is reported as a positive magnitude.
type StatsSnapshot struct {
	TotalGames    int                        `json:"total_games"`
	TotalWins     int                        `json:"total_wins"`
	TotalLosses   int                        `json:"total_losses"`
	BiggestWin    int                        `json:"biggest_win"`
	BiggestLoss   int                        `json:"biggest_loss"`
	TotalWagered  int64                      `json:"total_wagered"`
	TotalWinnings int64                      `json:"total_winnings"`
	ByGame        map[GameType]GameBreakdown `json:"games"`
}

// UserStats extends a snapshot with per-player ratios
type UserStats struct {
	StatsSnapshot
	WinRate   float64 `json:"win_rate"`
	NetProfit int64   `json:"net_profit"`
}

// StatsScope selects which history a snapshot reduces
type StatsScope struct {
	UserID string // empty means global
}

// GlobalScope is the scope covering all players
var GlobalScope = StatsScope{}
