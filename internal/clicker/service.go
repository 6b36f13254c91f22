// Package clicker implements the incremental clicker economy: manual clicks,
// purchasable upgrade tracks and caller-driven passive income.
package clicker

import (
	"context"
	"fmt"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/event"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/repository"
)

// Service defines the interface for clicker operations
type Service interface {
	GetData(ctx context.Context, userID string) (*domain.ClickerState, error)
	Click(ctx context.Context, userID string) (*domain.ClickResult, error)
	BuyUpgrade(ctx context.Context, userID, track string) (*domain.UpgradeResult, error)
	CollectPassive(ctx context.Context, userID string) (*domain.PassiveResult, error)
}

type service struct {
	store repository.Store
	bus   event.Bus
}

// NewService creates a new clicker service. bus may be nil.
func NewService(store repository.Store, bus event.Bus) Service {
	return &service{store: store, bus: bus}
}

func (s *service) GetData(ctx context.Context, userID string) (*domain.ClickerState, error) {
	data, err := s.store.GetClickerData(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetClickerData, err)
	}
	balance, err := s.store.GetBalance(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetBalance, err)
	}
	return &domain.ClickerState{
		Data:          data,
		PassiveIncome: data.PassiveIncome(),
		Balance:       balance,
	}, nil
}

// Click credits the current click power
func (s *service) Click(ctx context.Context, userID string) (*domain.ClickResult, error) {
	var result *domain.ClickResult
	err := s.withTx(ctx, func(tx repository.Tx) error {
		data, err := tx.GetClickerData(ctx, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextGetClickerData, err)
		}

		earned := data.ClickPower
		balance, err := tx.Credit(ctx, userID, earned)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextCredit, err)
		}

		data.TotalClicks++
		data.TotalEarned += int64(earned)
		if err := tx.UpdateClickerData(ctx, data); err != nil {
			return fmt.Errorf("%s: %w", ErrContextSaveClicker, err)
		}

		result = &domain.ClickResult{Earned: earned, Balance: balance, Data: data}
		return nil
	})
	return result, err
}

// BuyUpgrade debits the track's current cost, levels it up and reprices it
func (s *service) BuyUpgrade(ctx context.Context, userID, track string) (*domain.UpgradeResult, error) {
	if _, ok := growthFactors[track]; !ok {
		return nil, fmt.Errorf("%w: unknown upgrade %q", domain.ErrInvalidParameters, track)
	}

	var (
		result   *domain.UpgradeResult
		newLevel int
	)
	err := s.withTx(ctx, func(tx repository.Tx) error {
		data, err := tx.GetClickerData(ctx, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextGetClickerData, err)
		}

		cost, err := CostOf(data, track)
		if err != nil {
			return err
		}
		balance, err := tx.Debit(ctx, userID, cost)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextDebit, err)
		}

		if newLevel, err = ApplyUpgrade(data, track); err != nil {
			return err
		}
		if err := tx.UpdateClickerData(ctx, data); err != nil {
			return fmt.Errorf("%s: %w", ErrContextSaveClicker, err)
		}

		result = &domain.UpgradeResult{Track: track, Cost: cost, Balance: balance, Data: data}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgUpgradePurchased, "user_id", userID, "track", track, "cost", result.Cost, "level", newLevel)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewClickerUpgradedEvent(userID, track, result.Cost, newLevel)); err != nil {
			log.Warn(LogMsgPublishFailed, "user_id", userID, "error", err)
		}
	}
	return result, nil
}

// CollectPassive credits one tick of passive income. Nothing is written when income is zero.
func (s *service) CollectPassive(ctx context.Context, userID string) (*domain.PassiveResult, error) {
	data, err := s.store.GetClickerData(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetClickerData, err)
	}
	if data.PassiveIncome() == 0 {
		balance, err := s.store.GetBalance(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrContextGetBalance, err)
		}
		return &domain.PassiveResult{Earned: 0, Balance: balance}, nil
	}

	var result *domain.PassiveResult
	err = s.withTx(ctx, func(tx repository.Tx) error {
		// re-read inside the transaction so a concurrent upgrade is not overwritten
		data, err := tx.GetClickerData(ctx, userID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextGetClickerData, err)
		}

		income := data.PassiveIncome()
		balance, err := tx.Credit(ctx, userID, income)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrContextCredit, err)
		}

		data.TotalEarned += int64(income)
		if err := tx.UpdateClickerData(ctx, data); err != nil {
			return fmt.Errorf("%s: %w", ErrContextSaveClicker, err)
		}

		result = &domain.PassiveResult{Earned: income, Balance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgPassiveCollected, "user_id", userID, "earned", result.Earned)
	return result, nil
}

func (s *service) withTx(ctx context.Context, fn func(tx repository.Tx) error) error {
	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextBeginTx, err)
	}
	defer repository.SafeRollback(ctx, tx)

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrContextCommit, err)
	}
	return nil
}
