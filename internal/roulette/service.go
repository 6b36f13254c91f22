// Package roulette implements the single-zero roulette wheel with color and straight-up number bets.
package roulette

import (
	"context"
	"fmt"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/rng"
	"github.com/osse101/Casino_Go/internal/settlement"
)

// Service defines the interface for roulette operations
type Service interface {
	Spin(ctx context.Context, userID string, bet int, mode, choice string) (*domain.RouletteResult, error)
}

type service struct {
	settlement settlement.Service
	rng        rng.Source
}

// NewService creates a new roulette service
func NewService(settle settlement.Service, src rng.Source) Service {
	return &service{settlement: settle, rng: src}
}

func (s *service) Spin(ctx context.Context, userID string, bet int, mode, choice string) (*domain.RouletteResult, error) {
	if err := s.settlement.ValidateBet(ctx, userID, bet); err != nil {
		return nil, err
	}
	wager, err := ParseBet(mode, choice)
	if err != nil {
		return nil, err
	}

	number := Draw(s.rng)
	color := ColorOf(number)
	won, multiplier := Resolve(wager, number)

	outcome := domain.Outcome{
		UserID:     userID,
		GameType:   domain.GameRoulette,
		Bet:        bet,
		Result:     domain.ResultLose,
		Multiplier: multiplier,
		Details: domain.RouletteDetails{
			Number: number,
			Color:  color,
			Choice: wager.Choice(),
		},
	}
	if won {
		outcome.Result = domain.ResultWin
		outcome.Payout = int(float64(bet) * multiplier)
	}

	settled, err := s.settlement.SettleInstant(ctx, outcome)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSettle, err)
	}

	logger.FromContext(ctx).Debug(LogMsgSpin, "user_id", userID, "number", number, "color", color, "won", won)

	return &domain.RouletteResult{
		Number:     number,
		Color:      color,
		Mode:       wager.Mode,
		Choice:     wager.Choice(),
		Won:        won,
		Settlement: settled,
	}, nil
}
