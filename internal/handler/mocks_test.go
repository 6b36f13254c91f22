package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/engine"
	"github.com/osse101/Casino_Go/internal/user"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CacheStats() user.CacheStats {
	return m.Called().Get(0).(user.CacheStats)
}

type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) StartGame(ctx context.Context, gameType domain.GameType, params engine.Params) (*engine.StartResult, error) {
	args := m.Called(ctx, gameType, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.StartResult), args.Error(1)
}

func (m *MockEngine) ApplyAction(ctx context.Context, gameType domain.GameType, action string, params engine.Params) (*engine.ActionResult, error) {
	args := m.Called(ctx, gameType, action, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*engine.ActionResult), args.Error(1)
}

func (m *MockEngine) StatsSnapshot(ctx context.Context, scope domain.StatsScope) (*domain.StatsSnapshot, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSnapshot), args.Error(1)
}

type MockClickerService struct {
	mock.Mock
}

func (m *MockClickerService) GetData(ctx context.Context, userID string) (*domain.ClickerState, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClickerState), args.Error(1)
}

func (m *MockClickerService) Click(ctx context.Context, userID string) (*domain.ClickResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClickResult), args.Error(1)
}

func (m *MockClickerService) BuyUpgrade(ctx context.Context, userID, track string) (*domain.UpgradeResult, error) {
	args := m.Called(ctx, userID, track)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UpgradeResult), args.Error(1)
}

func (m *MockClickerService) CollectPassive(ctx context.Context, userID string) (*domain.PassiveResult, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PassiveResult), args.Error(1)
}

type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GlobalSnapshot(ctx context.Context) (*domain.StatsSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSnapshot), args.Error(1)
}

func (m *MockStatsService) UserSnapshot(ctx context.Context, userID string) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockStatsService) Snapshot(ctx context.Context, scope domain.StatsScope) (*domain.StatsSnapshot, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatsSnapshot), args.Error(1)
}

func (m *MockStatsService) RecentHistory(ctx context.Context, userID string) ([]domain.GameHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GameHistory), args.Error(1)
}

func (m *MockStatsService) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Achievement), args.Error(1)
}

func (m *MockStatsService) SettledCounters(ctx context.Context) (map[string]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}
