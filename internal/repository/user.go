package repository

import (
	"context"

	"github.com/osse101/Casino_Go/internal/domain"
)

// Account defines the interface for user and balance persistence.
// Debit fails with domain.ErrInsufficientFunds when amount exceeds the balance,
// and both Debit and Credit fail with domain.ErrInvalidAmount for negative amounts.
type Account interface {
	CreateUser(ctx context.Context, username string, startingBalance int) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetBalance(ctx context.Context, userID string) (int, error)
	Debit(ctx context.Context, userID string, amount int) (int, error)
	Credit(ctx context.Context, userID string, amount int) (int, error)
}
