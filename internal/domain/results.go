package domain

// BlackjackStartResult is returned after the opening deal
type BlackjackStartResult struct {
	PlayerHand  []Card `json:"player_hand"`
	DealerHand  []Card `json:"dealer_hand"`
	PlayerTotal int    `json:"player_total"`
	NumDecks    int    `json:"num_decks"`
	Balance     int    `json:"money"`
}

// BlackjackHitResult is returned after the player draws a card
type BlackjackHitResult struct {
	PlayerHand  []Card `json:"player_hand"`
	PlayerTotal int    `json:"player_total"`
	Bust        bool   `json:"bust"`
}

// BlackjackStandResult is returned once the dealer has played out and the hand is settled
type BlackjackStandResult struct {
	PlayerHand  []Card      `json:"player_hand"`
	DealerHand  []Card      `json:"dealer_hand"`
	PlayerTotal int         `json:"player_total"`
	DealerTotal int         `json:"dealer_total"`
	Settlement  *Settlement `json:"settlement"`
}

// BlackjackDetails is the history payload for a blackjack hand
type BlackjackDetails struct {
	PlayerHand  []Card `json:"player_hand"`
	DealerHand  []Card `json:"dealer_hand"`
	PlayerTotal int    `json:"player_total"`
	DealerTotal int    `json:"dealer_total"`
}

// Roulette bet modes
const (
	RouletteModeColor  = "color"
	RouletteModeNumber = "number"
)

// Roulette colors
const (
	ColorRed   = "Red"
	ColorBlack = "Black"
	ColorGreen = "Green"
)

// RouletteResult is returned from a roulette spin
type RouletteResult struct {
	Number     int         `json:"number"`
	Color      string      `json:"color"`
	Mode       string      `json:"mode"`
	Choice     string      `json:"choice"`
	Won        bool        `json:"won"`
	Settlement *Settlement `json:"settlement"`
}

// RouletteDetails is the history payload for a roulette spin
type RouletteDetails struct {
	Number int    `json:"number"`
	Color  string `json:"color"`
	Choice string `json:"choice"`
}

// MinebombStartResult is returned when a board is laid out
type MinebombStartResult struct {
	Bombs   int `json:"bombs"`
	Cells   int `json:"cells"`
	Balance int `json:"money"`
}

// Minebomb reveal outcomes
const (
	RevealBomb    = "bomb"
	RevealDiamond = "diamond"
)

// MinebombRevealResult is returned after uncovering a cell.
// Grid and Settlement are only set when a bomb ends the game.
type MinebombRevealResult struct {
	Type          string      `json:"type"`
	Index         int         `json:"index"`
	Multiplier    float64     `json:"multiplier,omitempty"`
	PotentialWin  int         `json:"potential_win,omitempty"`
	DiamondsFound int         `json:"diamonds_found"`
	Grid          []string    `json:"grid,omitempty"`
	Settlement    *Settlement `json:"settlement,omitempty"`
}

// MinebombCashoutResult is returned when the player takes their winnings
type MinebombCashoutResult struct {
	Diamonds   int         `json:"diamonds"`
	Multiplier float64     `json:"multiplier"`
	Settlement *Settlement `json:"settlement"`
}

// MinebombDetails is the history payload for a minebomb board
type MinebombDetails struct {
	Bombs    int `json:"bombs"`
	Diamonds int `json:"diamonds"`
}

// SlotsResult represents the outcome of a slots spin
type SlotsResult struct {
	Reels      [3]string   `json:"reels"`
	Multiplier float64     `json:"multiplier"`
	Message    string      `json:"message"`
	Settlement *Settlement `json:"settlement"`
}

// SlotsDetails is the history payload for a slots spin
type SlotsDetails struct {
	Reels [3]string `json:"reels"`
}

// ClickerState is the clicker view returned to callers
type ClickerState struct {
	Data          *ClickerData `json:"data"`
	PassiveIncome int          `json:"passive_income"`
	Balance       int          `json:"money"`
}

// ClickResult is returned after a manual click
type ClickResult struct {
	Earned  int          `json:"earned"`
	Balance int          `json:"money"`
	Data    *ClickerData `json:"data"`
}

// UpgradeResult is returned after purchasing a clicker upgrade
type UpgradeResult struct {
	Track   string       `json:"upgrade_type"`
	Cost    int          `json:"cost"`
	Balance int          `json:"money"`
	Data    *ClickerData `json:"data"`
}

// PassiveResult is returned after a passive income tick
type PassiveResult struct {
	Earned  int `json:"earned"`
	Balance int `json:"money"`
}
