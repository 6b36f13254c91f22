package stats

import (
	"context"
	"fmt"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/repository"
)

// Repository is the persistence the stats service reads from
type Repository interface {
	repository.History
	repository.Counters
	repository.Achievements
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// Service defines the interface for stats operations.
// Nothing is cached: every call reduces the ledger afresh.
type Service interface {
	GlobalSnapshot(ctx context.Context) (*domain.StatsSnapshot, error)
	UserSnapshot(ctx context.Context, userID string) (*domain.UserStats, error)
	Snapshot(ctx context.Context, scope domain.StatsScope) (*domain.StatsSnapshot, error)
	RecentHistory(ctx context.Context, userID string) ([]domain.GameHistory, error)
	Achievements(ctx context.Context) ([]domain.Achievement, error)
	SettledCounters(ctx context.Context) (map[string]int64, error)
}

type service struct {
	repo Repository
}

// NewService creates a new stats service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GlobalSnapshot(ctx context.Context) (*domain.StatsSnapshot, error) {
	return s.Snapshot(ctx, domain.GlobalScope)
}

func (s *service) UserSnapshot(ctx context.Context, userID string) (*domain.UserStats, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetUser, err)
	}
	snap, err := s.Snapshot(ctx, domain.StatsScope{UserID: userID})
	if err != nil {
		return nil, err
	}
	return WithRatios(snap), nil
}

func (s *service) Snapshot(ctx context.Context, scope domain.StatsScope) (*domain.StatsSnapshot, error) {
	records, err := s.repo.QueryHistory(ctx, domain.HistoryFilter{UserID: scope.UserID}, domain.OldestFirst, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextQueryHistory, err)
	}
	snap := Aggregate(records)
	logger.FromContext(ctx).Debug(LogMsgSnapshotComputed, "user_id", scope.UserID, "games", snap.TotalGames)
	return snap, nil
}

// RecentHistory returns the user's last games, newest first
func (s *service) RecentHistory(ctx context.Context, userID string) ([]domain.GameHistory, error) {
	if _, err := s.repo.GetUserByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetUser, err)
	}
	records, err := s.repo.QueryHistory(ctx, domain.HistoryFilter{UserID: userID}, domain.NewestFirst, domain.RecentHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextQueryHistory, err)
	}
	return records, nil
}

func (s *service) Achievements(ctx context.Context) ([]domain.Achievement, error) {
	list, err := s.repo.ListAchievements(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextAchievements, err)
	}
	return list, nil
}

// SettledCounters reads the settlement counters maintained by the event handler
func (s *service) SettledCounters(ctx context.Context) (map[string]int64, error) {
	keys := []string{domain.CounterGamesSettled}
	for _, g := range domain.AllGameTypes {
		keys = append(keys, domain.CounterGamesSettledPrefix+string(g))
	}

	out := make(map[string]int64, len(keys))
	for _, k := range keys {
		v, err := s.repo.GetCounter(ctx, k)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", ErrContextReadCounter, k, err)
		}
		out[k] = v
	}
	return out, nil
}
