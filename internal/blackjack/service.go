// Package blackjack runs a single-hand blackjack game against a dealer who
// stands on 17. Hand state lives in a transient session between requests.
package blackjack

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/osse101/Casino_Go/internal/cards"
	"github.com/osse101/Casino_Go/internal/concurrency"
	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/repository"
	"github.com/osse101/Casino_Go/internal/rng"
	"github.com/osse101/Casino_Go/internal/session"
	"github.com/osse101/Casino_Go/internal/settlement"
)

// Service defines the interface for blackjack operations
type Service interface {
	Start(ctx context.Context, userID string, bet int) (*domain.BlackjackStartResult, error)
	Hit(ctx context.Context, userID string) (*domain.BlackjackHitResult, error)
	Stand(ctx context.Context, userID string) (*domain.BlackjackStandResult, error)
}

type service struct {
	settlement settlement.Service
	sessions   repository.Sessions
	rng        rng.Source
	locks      *concurrency.LockManager
}

// NewService creates a new blackjack service
func NewService(settle settlement.Service, sessions repository.Sessions, src rng.Source, locks *concurrency.LockManager) Service {
	return &service{
		settlement: settle,
		sessions:   sessions,
		rng:        src,
		locks:      locks,
	}
}

func sessionKey(userID string) domain.SessionKey {
	return domain.SessionKey{UserID: userID, GameType: domain.GameBlackjack}
}

// Start debits bet and deals a new hand. Any hand already in progress is replaced and its bet forfeited.
func (s *service) Start(ctx context.Context, userID string, bet int) (*domain.BlackjackStartResult, error) {
	key := sessionKey(userID)
	unlock := s.locks.Lock(key.String())
	defer unlock()

	if err := s.settlement.ValidateBet(ctx, userID, bet); err != nil {
		return nil, err
	}

	sess := Deal(s.rng, bet)

	balance, err := s.settlement.PlaceBet(ctx, userID, bet)
	if err != nil {
		return nil, err
	}
	if err := session.Save(ctx, s.sessions, key, sess); err != nil {
		if _, refundErr := s.settlement.RefundBet(ctx, userID, bet); refundErr != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextRefund, errors.Join(err, refundErr))
		}
		return nil, fmt.Errorf("%s: %w", ErrContextSaveSession, err)
	}

	logger.FromContext(ctx).Info(LogMsgHandDealt, "user_id", userID, "bet", bet, "decks", sess.NumDecks)

	return &domain.BlackjackStartResult{
		PlayerHand:  sess.PlayerHand,
		DealerHand:  sess.DealerHand,
		PlayerTotal: cards.HandTotal(sess.PlayerHand),
		NumDecks:    sess.NumDecks,
		Balance:     balance,
	}, nil
}

// Hit draws a card for the player. The hand stays open even when it busts.
func (s *service) Hit(ctx context.Context, userID string) (*domain.BlackjackHitResult, error) {
	key := sessionKey(userID)
	unlock := s.locks.Lock(key.String())
	defer unlock()

	sess, err := session.Load[domain.BlackjackSession](ctx, s.sessions, key)
	if err != nil {
		return nil, err
	}

	Hit(sess, s.rng)

	if err := session.Save(ctx, s.sessions, key, sess); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveSession, err)
	}

	total := cards.HandTotal(sess.PlayerHand)
	return &domain.BlackjackHitResult{
		PlayerHand:  sess.PlayerHand,
		PlayerTotal: total,
		Bust:        total > cards.Blackjack,
	}, nil
}

// Stand plays out the dealer, settles the hand and ends the session
func (s *service) Stand(ctx context.Context, userID string) (*domain.BlackjackStandResult, error) {
	key := sessionKey(userID)
	unlock := s.locks.Lock(key.String())
	defer unlock()

	sess, err := session.Load[domain.BlackjackSession](ctx, s.sessions, key)
	if err != nil {
		return nil, err
	}
	before := *sess
	before.DealerHand = slices.Clone(sess.DealerHand)

	PlayDealer(sess, s.rng)

	playerTotal := cards.HandTotal(sess.PlayerHand)
	dealerTotal := cards.HandTotal(sess.DealerHand)
	result := Resolve(playerTotal, dealerTotal)
	payout, multiplier := Payout(result, sess.Bet)

	if err := s.sessions.ClearSession(ctx, key); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextClearSession, err)
	}

	settled, err := s.settlement.Settle(ctx, domain.Outcome{
		UserID:     userID,
		GameType:   domain.GameBlackjack,
		Bet:        sess.Bet,
		Result:     result,
		Payout:     payout,
		Multiplier: multiplier,
		Details: domain.BlackjackDetails{
			PlayerHand:  sess.PlayerHand,
			DealerHand:  sess.DealerHand,
			PlayerTotal: playerTotal,
			DealerTotal: dealerTotal,
		},
	})
	if err != nil {
		// put the hand back as it was so the stand can be retried
		if restoreErr := session.Save(ctx, s.sessions, key, &before); restoreErr != nil {
			logger.FromContext(ctx).Error(LogMsgRestoreFailed, "user_id", userID, "error", restoreErr)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextSettle, err)
	}

	logger.FromContext(ctx).Info(LogMsgHandResolved,
		"user_id", userID,
		"result", result,
		"player_total", playerTotal,
		"dealer_total", dealerTotal)

	return &domain.BlackjackStandResult{
		PlayerHand:  sess.PlayerHand,
		DealerHand:  sess.DealerHand,
		PlayerTotal: playerTotal,
		DealerTotal: dealerTotal,
		Settlement:  settled,
	}, nil
}
