package domain

// Card is a playing card. Rank is one of A, 2..10, J, Q, K.
type Card struct {
	Rank string `json:"value"`
	Suit string `json:"suit"`
}

// SessionKey identifies a transient game session
type SessionKey struct {
	UserID   string
	GameType GameType
}

// String renders the key for storage backends
func (k SessionKey) String() string {
	return k.UserID + ":" + string(k.GameType)
}

// BlackjackSession is the serializable state of an in-progress blackjack hand.
// Shoe holds the undealt cards; cards are drawn from the end.
type BlackjackSession struct {
	Bet        int    `json:"bet"`
	NumDecks   int    `json:"num_decks"`
	Shoe       []Card `json:"shoe"`
	PlayerHand []Card `json:"player_hand"`
	DealerHand []Card `json:"dealer_hand"`
}

// Minebomb cell kinds
const (
	CellSafe = "safe"
	CellBomb = "bomb"
)

// MinebombGridSize is the number of cells on the board
const MinebombGridSize = 25

// MinebombSession is the serializable state of an in-progress minebomb board
type MinebombSession struct {
	Bet           int      `json:"bet"`
	Bombs         int      `json:"bombs"`
	Grid          []string `json:"grid"`
	Revealed      []int    `json:"revealed"`
	DiamondsFound int      `json:"diamonds_found"`
}

// IsRevealed reports whether index has already been uncovered
func (s *MinebombSession) IsRevealed(index int) bool {
	for _, r := range s.Revealed {
		if r == index {
			return true
		}
	}
	return false
}
