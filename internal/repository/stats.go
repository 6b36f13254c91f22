package repository

import (
	"context"

	"github.com/osse101/Casino_Go/internal/domain"
)

// Counters defines the interface for the global key/value counter table
type Counters interface {
	IncrementCounter(ctx context.Context, key string, delta int64) (int64, error)
	GetCounter(ctx context.Context, key string) (int64, error)
}

// Achievements exposes the achievement catalog. Nothing grants achievements.
type Achievements interface {
	ListAchievements(ctx context.Context) ([]domain.Achievement, error)
	ListUserAchievements(ctx context.Context, userID string) ([]domain.UserAchievement, error)
}
