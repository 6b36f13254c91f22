package slots

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/rng"
	"github.com/osse101/Casino_Go/internal/settlement"
)

// Service defines the interface for slots operations
type Service interface {
	Spin(ctx context.Context, userID string, bet int) (*domain.SlotsResult, error)
}

type service struct {
	settlement settlement.Service
	rng        rng.Source
	printer    *message.Printer
}

// NewService creates a new slots service
func NewService(settle settlement.Service, src rng.Source) Service {
	return &service{
		settlement: settle,
		rng:        src,
		printer:    message.NewPrinter(language.English),
	}
}

// Spin debits bet, draws three reels and settles the result in one transaction
func (s *service) Spin(ctx context.Context, userID string, bet int) (*domain.SlotsResult, error) {
	// a rejected bet must not consume draws
	if err := s.settlement.ValidateBet(ctx, userID, bet); err != nil {
		return nil, err
	}

	reels := s.spinReels()
	payout, multiplier, trigger := calculatePayout(reels, bet)

	outcome := domain.Outcome{
		UserID:     userID,
		GameType:   domain.GameSlots,
		Bet:        bet,
		Result:     domain.ResultLose,
		Payout:     payout,
		Multiplier: multiplier,
		Details:    domain.SlotsDetails{Reels: reels},
	}
	if payout > 0 {
		outcome.Result = domain.ResultWin
	}

	settled, err := s.settlement.SettleInstant(ctx, outcome)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSettle, err)
	}

	logger.FromContext(ctx).Debug(LogMsgSpin, "user_id", userID, "reels", reels[:], "trigger", trigger)

	return &domain.SlotsResult{
		Reels:      reels,
		Multiplier: multiplier,
		Message:    s.formatMessage(bet, payout, trigger),
		Settlement: settled,
	}, nil
}

// spinReels draws three independent uniform symbols
func (s *service) spinReels() [3]string {
	var reels [3]string
	for i := range reels {
		reels[i] = rng.Pick(s.rng, Symbols)
	}
	return reels
}

// calculatePayout determines the payout amount, multiplier, and trigger type
func calculatePayout(reels [3]string, bet int) (payout int, multiplier float64, trigger string) {
	r1, r2, r3 := reels[0], reels[1], reels[2]

	if r1 == r2 && r2 == r3 {
		m, ok := PayoutMultipliers[r1]
		if !ok {
			m = DefaultTripleMultiplier
		}
		return int(float64(bet) * m), m, determineWinType(m)
	}

	if r1 == r2 || r2 == r3 || r1 == r3 {
		return int(float64(bet) * TwoMatchMultiplier), TwoMatchMultiplier, TriggerNormal
	}

	return 0, 0, TriggerNormal
}

// determineWinType classifies the win based on multiplier
func determineWinType(multiplier float64) string {
	switch {
	case multiplier >= 100.0:
		return TriggerMegaJackpot
	case multiplier >= JackpotThreshold:
		return TriggerJackpot
	case multiplier >= BigWinThreshold:
		return TriggerBigWin
	default:
		return TriggerNormal
	}
}

// formatMessage creates a user-facing message for the result
func (s *service) formatMessage(bet, payout int, trigger string) string {
	if payout == 0 {
		return s.printer.Sprintf("Better luck next time! You lost %d money.", bet)
	}

	net := payout - bet
	switch trigger {
	case TriggerMegaJackpot:
		return s.printer.Sprintf("🌟 MEGA JACKPOT! 🌟 You won %d money (net +%d)!", payout, net)
	case TriggerJackpot:
		return s.printer.Sprintf("💎 JACKPOT! 💎 You won %d money (net +%d)!", payout, net)
	case TriggerBigWin:
		return s.printer.Sprintf("🎉 BIG WIN! You won %d money (net +%d)!", payout, net)
	default:
		return s.printer.Sprintf("You won %d money (net +%d)!", payout, net)
	}
}
