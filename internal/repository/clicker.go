package repository

import (
	"context"

	"github.com/osse101/Casino_Go/internal/domain"
)

// Clicker defines the interface for clicker progression persistence
type Clicker interface {
	GetClickerData(ctx context.Context, userID string) (*domain.ClickerData, error)
	UpdateClickerData(ctx context.Context, data *domain.ClickerData) error
}
