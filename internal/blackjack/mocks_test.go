package blackjack

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

// MockSessions is a mock implementation of repository.Sessions
type MockSessions struct {
	mock.Mock
}

func (m *MockSessions) LoadSession(ctx context.Context, key domain.SessionKey) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	var state []byte
	if args.Get(0) != nil {
		state = args.Get(0).([]byte)
	}
	return state, args.Bool(1), args.Error(2)
}

func (m *MockSessions) SaveSession(ctx context.Context, key domain.SessionKey, state []byte) error {
	args := m.Called(ctx, key, state)
	return args.Error(0)
}

func (m *MockSessions) ClearSession(ctx context.Context, key domain.SessionKey) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}
