package repository

import (
	"context"

	"github.com/osse101/Casino_Go/internal/domain"
)

// Tx defines the interface for transactional operations
type Tx interface {
	Debit(ctx context.Context, userID string, amount int) (int, error)
	Credit(ctx context.Context, userID string, amount int) (int, error)
	AppendHistory(ctx context.Context, record *domain.GameHistory) error
	GetClickerData(ctx context.Context, userID string) (*domain.ClickerData, error)
	UpdateClickerData(ctx context.Context, data *domain.ClickerData) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Store is the full persistence surface used by the engine
type Store interface {
	Account
	History
	Clicker
	Counters
	Achievements
	BeginTx(ctx context.Context) (Tx, error)
	Ping(ctx context.Context) error
}
