// Package cards evaluates blackjack hands and builds shoes.
package cards

import (
	"strconv"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/rng"
)

// Suits in deck-building order: ♥, ♦, ♣, ♠
var Suits = []string{"♥", "♦", "♣", "♠"}

// Ranks in deck-building order: A, 2-10, J, Q, K
var Ranks = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// DeckSize is the number of cards in one standard deck
const DeckSize = 52

// Blackjack thresholds
const (
	Blackjack       = 21
	DealerStandsOn  = 17
	aceHigh         = 11
	faceValue       = 10
	softAceDiscount = 10
)

// CardValue returns the blackjack value of a card: faces count 10, an ace 11,
// numerals their face value. Unknown ranks count 0.
func CardValue(c domain.Card) int {
	switch c.Rank {
	case "J", "Q", "K":
		return faceValue
	case "A":
		return aceHigh
	}
	v, err := strconv.Atoi(c.Rank)
	if err != nil {
		return 0
	}
	return v
}

// HandTotal sums a hand, demoting aces from 11 to 1 while the hand would bust
func HandTotal(hand []domain.Card) int {
	total, aces := 0, 0
	for _, c := range hand {
		total += CardValue(c)
		if c.Rank == "A" {
			aces++
		}
	}
	for total > Blackjack && aces > 0 {
		total -= softAceDiscount
		aces--
	}
	return total
}

// IsBust reports whether a hand is over 21 after soft-ace reduction
func IsBust(hand []domain.Card) bool {
	return HandTotal(hand) > Blackjack
}

// NewShoe returns decks standard decks in suit-major order, unshuffled
func NewShoe(decks int) []domain.Card {
	shoe := make([]domain.Card, 0, decks*DeckSize)
	for d := 0; d < decks; d++ {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				shoe = append(shoe, domain.Card{Rank: rank, Suit: suit})
			}
		}
	}
	return shoe
}

// ShuffledShoe builds and fully shuffles a shoe of decks decks
func ShuffledShoe(src rng.Source, decks int) []domain.Card {
	shoe := NewShoe(decks)
	rng.Shuffle(src, shoe)
	return shoe
}

// Draw pops the last card of shoe. ok is false when the shoe is empty.
func Draw(shoe []domain.Card) (card domain.Card, rest []domain.Card, ok bool) {
	if len(shoe) == 0 {
		return domain.Card{}, shoe, false
	}
	last := len(shoe) - 1
	return shoe[last], shoe[:last], true
}
