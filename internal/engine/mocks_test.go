package engine

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Casino_Go/internal/domain"
)

type MockBlackjack struct {
	mock.Mock
}

func (m *MockBlackjack) Start(ctx context.Context, userID string, bet int) (*domain.BlackjackStartResult, error) {
	args := m.Called(ctx, userID, bet)
	if r := args.Get(0); r != nil {
		return r.(*domain.BlackjackStartResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlackjack) Hit(ctx context.Context, userID string) (*domain.BlackjackHitResult, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.(*domain.BlackjackHitResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockBlackjack) Stand(ctx context.Context, userID string) (*domain.BlackjackStandResult, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.(*domain.BlackjackStandResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMinebomb struct {
	mock.Mock
}

func (m *MockMinebomb) Start(ctx context.Context, userID string, bet, bombs int) (*domain.MinebombStartResult, error) {
	args := m.Called(ctx, userID, bet, bombs)
	if r := args.Get(0); r != nil {
		return r.(*domain.MinebombStartResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMinebomb) Reveal(ctx context.Context, userID string, index int) (*domain.MinebombRevealResult, error) {
	args := m.Called(ctx, userID, index)
	if r := args.Get(0); r != nil {
		return r.(*domain.MinebombRevealResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockMinebomb) Cashout(ctx context.Context, userID string) (*domain.MinebombCashoutResult, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.(*domain.MinebombCashoutResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockRoulette struct {
	mock.Mock
}

func (m *MockRoulette) Spin(ctx context.Context, userID string, bet int, mode, choice string) (*domain.RouletteResult, error) {
	args := m.Called(ctx, userID, bet, mode, choice)
	if r := args.Get(0); r != nil {
		return r.(*domain.RouletteResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSlots struct {
	mock.Mock
}

func (m *MockSlots) Spin(ctx context.Context, userID string, bet int) (*domain.SlotsResult, error) {
	args := m.Called(ctx, userID, bet)
	if r := args.Get(0); r != nil {
		return r.(*domain.SlotsResult), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockSnapshotter struct {
	mock.Mock
}

func (m *MockSnapshotter) Snapshot(ctx context.Context, scope domain.StatsScope) (*domain.StatsSnapshot, error) {
	args := m.Called(ctx, scope)
	if r := args.Get(0); r != nil {
		return r.(*domain.StatsSnapshot), args.Error(1)
	}
	return nil, args.Error(1)
}
