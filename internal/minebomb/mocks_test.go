package minebomb

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Casino_Go/internal/domain"
)

// MockSettlement is a mock implementation of settlement.Service
type MockSettlement struct {
	mock.Mock
}

func (m *MockSettlement) ValidateBet(ctx context.Context, userID string, bet int) error {
	args := m.Called(ctx, userID, bet)
	return args.Error(0)
}

func (m *MockSettlement) PlaceBet(ctx context.Context, userID string, bet int) (int, error) {
	args := m.Called(ctx, userID, bet)
	return args.Int(0), args.Error(1)
}

func (m *MockSettlement) RefundBet(ctx context.Context, userID string, bet int) (int, error) {
	args := m.Called(ctx, userID, bet)
	return args.Int(0), args.Error(1)
}

func (m *MockSettlement) Settle(ctx context.Context, outcome domain.Outcome) (*domain.Settlement, error) {
	args := m.Called(ctx, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}

func (m *MockSettlement) SettleInstant(ctx context.Context, outcome domain.Outcome) (*domain.Settlement, error) {
	args := m.Called(ctx, outcome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settlement), args.Error(1)
}
