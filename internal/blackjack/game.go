package blackjack

import (
	"github.com/osse101/Casino_Go/internal/cards"
	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/rng"
)

// Deal builds a fresh shoe of 1-8 decks and deals player, dealer, player, dealer
func Deal(src rng.Source, bet int) *domain.BlackjackSession {
	decks := rng.IntRange(src, MinDecks, MaxDecks)
	sess := &domain.BlackjackSession{
		Bet:      bet,
		NumDecks: decks,
		Shoe:     cards.ShuffledShoe(src, decks),
	}
	for i := 0; i < 2; i++ {
		sess.PlayerHand = append(sess.PlayerHand, draw(sess, src))
		sess.DealerHand = append(sess.DealerHand, draw(sess, src))
	}
	return sess
}

// Hit draws one card into the player's hand. Busting does not end the hand.
func Hit(sess *domain.BlackjackSession, src rng.Source) domain.Card {
	c := draw(sess, src)
	sess.PlayerHand = append(sess.PlayerHand, c)
	return c
}

// PlayDealer draws for the dealer until it reaches 17 or more
func PlayDealer(sess *domain.BlackjackSession, src rng.Source) {
	for cards.HandTotal(sess.DealerHand) < cards.DealerStandsOn {
		sess.DealerHand = append(sess.DealerHand, draw(sess, src))
	}
}

// Resolve decides the hand from the final totals
func Resolve(playerTotal, dealerTotal int) domain.GameResult {
	switch {
	case playerTotal > cards.Blackjack:
		return domain.ResultLose
	case dealerTotal > cards.Blackjack || playerTotal > dealerTotal:
		return domain.ResultWin
	case playerTotal < dealerTotal:
		return domain.ResultLose
	default:
		return domain.ResultDraw
	}
}

// Payout returns the amount credited and the recorded multiplier for result
func Payout(result domain.GameResult, bet int) (int, float64) {
	switch result {
	case domain.ResultWin:
		return bet * WinPayoutFactor, WinMultiplier
	case domain.ResultDraw:
		return bet, 0
	default:
		return 0, 0
	}
}

// draw takes the next card, reshuffling a fresh shoe of the same size when it runs dry
func draw(sess *domain.BlackjackSession, src rng.Source) domain.Card {
	c, rest, ok := cards.Draw(sess.Shoe)
	if !ok {
		sess.Shoe = cards.ShuffledShoe(src, max(sess.NumDecks, MinDecks))
		c, rest, _ = cards.Draw(sess.Shoe)
	}
	sess.Shoe = rest
	return c
}
