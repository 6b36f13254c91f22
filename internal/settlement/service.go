// Package settlement moves money for wagers: bets are debited when placed and
// payouts credited, with exactly one history record, when the game resolves.
package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/event"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/repository"
)

// Snapshotter produces the global stats returned with every settlement
type Snapshotter interface {
	GlobalSnapshot(ctx context.Context) (*domain.StatsSnapshot, error)
}

// Service defines the settlement operations shared by all games
type Service interface {
	// ValidateBet checks bet against the minimum and the user's balance without mutating anything
	ValidateBet(ctx context.Context, userID string, bet int) error
	// PlaceBet validates and debits bet, returning the new balance
	PlaceBet(ctx context.Context, userID string, bet int) (int, error)
	// RefundBet returns a placed bet whose game never started
	RefundBet(ctx context.Context, userID string, bet int) (int, error)
	// Settle pays out a game whose bet was already placed
	Settle(ctx context.Context, outcome domain.Outcome) (*domain.Settlement, error)
	// SettleInstant debits, pays out and records a single-shot game in one transaction
	SettleInstant(ctx context.Context, outcome domain.Outcome) (*domain.Settlement, error)
}

type service struct {
	store repository.Store
	stats Snapshotter
	bus   event.Bus
}

// NewService creates a settlement service. bus may be nil.
func NewService(store repository.Store, stats Snapshotter, bus event.Bus) Service {
	return &service{store: store, stats: stats, bus: bus}
}

func (s *service) ValidateBet(ctx context.Context, userID string, bet int) error {
	if bet < domain.MinBet {
		return fmt.Errorf("%w: minimum bet is %d", domain.ErrInvalidBet, domain.MinBet)
	}
	balance, err := s.store.GetBalance(ctx, userID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextGetBalance, err)
	}
	if bet > balance {
		return fmt.Errorf("%w: bet %d exceeds balance %d", domain.ErrInvalidBet, bet, balance)
	}
	return nil
}

func (s *service) PlaceBet(ctx context.Context, userID string, bet int) (int, error) {
	if err := s.ValidateBet(ctx, userID, bet); err != nil {
		return 0, err
	}
	balance, err := s.store.Debit(ctx, userID, bet)
	if err != nil {
		return 0, wrapDebitError(err)
	}
	logger.FromContext(ctx).Info(LogMsgBetPlaced, "user_id", userID, "bet", bet, "balance", balance)
	return balance, nil
}

func (s *service) RefundBet(ctx context.Context, userID string, bet int) (int, error) {
	balance, err := s.store.Credit(ctx, userID, bet)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrContextRefund, err)
	}
	logger.FromContext(ctx).Warn(LogMsgBetRefunded, "user_id", userID, "bet", bet, "balance", balance)
	return balance, nil
}

func (s *service) Settle(ctx context.Context, outcome domain.Outcome) (*domain.Settlement, error) {
	return s.settle(ctx, outcome, false)
}

func (s *service) SettleInstant(ctx context.Context, outcome domain.Outcome) (*domain.Settlement, error) {
	if err := s.ValidateBet(ctx, outcome.UserID, outcome.Bet); err != nil {
		return nil, err
	}
	return s.settle(ctx, outcome, true)
}

func (s *service) settle(ctx context.Context, outcome domain.Outcome, debit bool) (*domain.Settlement, error) {
	details, err := json.Marshal(outcome.Details)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextEncodeDetails, err)
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	var balance int
	if debit {
		if balance, err = tx.Debit(ctx, outcome.UserID, outcome.Bet); err != nil {
			return nil, wrapDebitError(err)
		}
	}
	if outcome.Payout > 0 || !debit {
		if balance, err = tx.Credit(ctx, outcome.UserID, outcome.Payout); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextCredit, err)
		}
	}

	record := &domain.GameHistory{
		UserID:     outcome.UserID,
		GameType:   outcome.GameType,
		BetAmount:  outcome.Bet,
		Result:     outcome.Result,
		Profit:     outcome.Profit(),
		Multiplier: outcome.Multiplier,
		Details:    details,
	}
	if err := tx.AppendHistory(ctx, record); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAppendHistory, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCommit, err)
	}

	result := &domain.Settlement{
		HistoryID:  record.ID,
		Result:     outcome.Result,
		Payout:     outcome.Payout,
		Profit:     record.Profit,
		Multiplier: outcome.Multiplier,
		Balance:    balance,
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgGameSettled,
		"user_id", outcome.UserID,
		"game", outcome.GameType,
		"bet", outcome.Bet,
		"result", outcome.Result,
		"profit", result.Profit,
		"balance", balance)

	// the money has moved; failures past this point are logged, never returned
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewGameSettledEvent(outcome, result)); err != nil {
			log.Warn(LogMsgPublishFailed, "history_id", result.HistoryID, "error", err)
		}
	}
	if s.stats != nil {
		snap, err := s.stats.GlobalSnapshot(ctx)
		if err != nil {
			log.Warn(LogMsgSnapshotFailed, "error", err)
		}
		result.Stats = snap
	}

	return result, nil
}

// A racing debit that finds too little money is still a bad wager from the player's view
func wrapDebitError(err error) error {
	if errors.Is(err, domain.ErrInsufficientFunds) {
		return fmt.Errorf("%w: %w", domain.ErrInvalidBet, err)
	}
	return fmt.Errorf("%s: %w", ErrContextDebit, err)
}
