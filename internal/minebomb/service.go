// Package minebomb runs the mine-sweep wager: the player uncovers cells on a
// 5x5 board, each diamond raising the multiplier, until they cash out or hit a bomb.
package minebomb

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/Casino_Go/internal/concurrency"
	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/repository"
	"github.com/osse101/Casino_Go/internal/rng"
	"github.com/osse101/Casino_Go/internal/session"
	"github.com/osse101/Casino_Go/internal/settlement"
)

// Service defines the interface for minebomb operations
type Service interface {
	Start(ctx context.Context, userID string, bet, bombs int) (*domain.MinebombStartResult, error)
	Reveal(ctx context.Context, userID string, index int) (*domain.MinebombRevealResult, error)
	Cashout(ctx context.Context, userID string) (*domain.MinebombCashoutResult, error)
}

type service struct {
	settlement settlement.Service
	sessions   repository.Sessions
	rng        rng.Source
	locks      *concurrency.LockManager
}

// NewService creates a new minebomb service
func NewService(settle settlement.Service, sessions repository.Sessions, src rng.Source, locks *concurrency.LockManager) Service {
	return &service{
		settlement: settle,
		sessions:   sessions,
		rng:        src,
		locks:      locks,
	}
}

func sessionKey(userID string) domain.SessionKey {
	return domain.SessionKey{UserID: userID, GameType: domain.GameMinebomb}
}

// Start debits bet and lays out a new board, replacing any board in progress
func (s *service) Start(ctx context.Context, userID string, bet, bombs int) (*domain.MinebombStartResult, error) {
	key := sessionKey(userID)
	unlock := s.locks.Lock(key.String())
	defer unlock()

	if err := s.settlement.ValidateBet(ctx, userID, bet); err != nil {
		return nil, err
	}
	if err := ValidateBombs(bombs); err != nil {
		return nil, err
	}

	sess := NewBoard(s.rng, bet, bombs)

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

	logger.FromContext(ctx).Info(LogMsgBoardStarted, "user_id", userID, "bet", bet, "bombs", bombs)

	return &domain.MinebombStartResult{
		Bombs:   bombs,
		Cells:   len(sess.Grid),
		Balance: balance,
	}, nil
}

// Reveal uncovers one cell. A bomb loses the bet and ends the board.
func (s *service) Reveal(ctx context.Context, userID string, index int) (*domain.MinebombRevealResult, error) {
	key := sessionKey(userID)
	unlock := s.locks.Lock(key.String())
	defer unlock()

	sess, err := session.Load[domain.MinebombSession](ctx, s.sessions, key)
	if err != nil {
		return nil, err
	}
	if err := CheckReveal(sess, index); err != nil {
		return nil, err
	}
	before := snapshot(sess)

	if !Reveal(sess, index) {
		if err := session.Save(ctx, s.sessions, key, sess); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextSaveSession, err)
		}
		potential, multiplier := PotentialWin(sess.Bet, sess.DiamondsFound, sess.Bombs)
		return &domain.MinebombRevealResult{
			Type:          domain.RevealDiamond,
			Index:         index,
			Multiplier:    multiplier,
			PotentialWin:  potential,
			DiamondsFound: sess.DiamondsFound,
		}, nil
	}

	settled, err := s.finish(ctx, key, before, domain.Outcome{
		UserID:   userID,
		GameType: domain.GameMinebomb,
		Bet:      sess.Bet,
		Result:   domain.ResultLose,
		Details:  domain.MinebombDetails{Bombs: sess.Bombs, Diamonds: sess.DiamondsFound},
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgBombHit, "user_id", userID, "index", index, "diamonds", sess.DiamondsFound)

	return &domain.MinebombRevealResult{
		Type:          domain.RevealBomb,
		Index:         index,
		DiamondsFound: sess.DiamondsFound,
		Grid:          sess.Grid,
		Settlement:    settled,
	}, nil
}

// Cashout pays floor(bet*multiplier) for the diamonds found so far and ends the board
func (s *service) Cashout(ctx context.Context, userID string) (*domain.MinebombCashoutResult, error) {
	key := sessionKey(userID)
	unlock := s.locks.Lock(key.String())
	defer unlock()

	sess, err := session.Load[domain.MinebombSession](ctx, s.sessions, key)
	if err != nil {
		return nil, err
	}

	payout, multiplier := PotentialWin(sess.Bet, sess.DiamondsFound, sess.Bombs)
	settled, err := s.finish(ctx, key, sess, domain.Outcome{
		UserID:     userID,
		GameType:   domain.GameMinebomb,
		Bet:        sess.Bet,
		Result:     domain.ResultWin,
		Payout:     payout,
		Multiplier: multiplier,
		Details:    domain.MinebombDetails{Bombs: sess.Bombs, Diamonds: sess.DiamondsFound},
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgCashedOut, "user_id", userID, "diamonds", sess.DiamondsFound, "payout", payout)

	return &domain.MinebombCashoutResult{
		Diamonds:   sess.DiamondsFound,
		Multiplier: multiplier,
		Settlement: settled,
	}, nil
}

// finish clears the board and settles it. If settlement fails the board is put back as restore.
func (s *service) finish(ctx context.Context, key domain.SessionKey, restore *domain.MinebombSession, outcome domain.Outcome) (*domain.Settlement, error) {
	if err := s.sessions.ClearSession(ctx, key); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextClearSession, err)
	}

	settled, err := s.settlement.Settle(ctx, outcome)
	if err != nil {
		if restoreErr := session.Save(ctx, s.sessions, key, restore); restoreErr != nil {
			logger.FromContext(ctx).Error(LogMsgRestoreFailed, "user_id", key.UserID, "error", restoreErr)
		}
		return nil, fmt.Errorf("%s: %w", ErrContextSettle, err)
	}
	return settled, nil
}

func snapshot(sess *domain.MinebombSession) *domain.MinebombSession {
	cp := *sess
	cp.Revealed = append([]int{}, sess.Revealed...)
	return &cp
}
