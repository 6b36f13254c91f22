package repository

import (
	"context"

	"github.com/osse101/Casino_Go/internal/domain"
)

// History defines the interface for the game ledger.
// A limit of zero or less returns every matching record.
type History interface {
	AppendHistory(ctx context.Context, record *domain.GameHistory) error
	QueryHistory(ctx context.Context, filter domain.HistoryFilter, order domain.SortOrder, limit int) ([]domain.GameHistory, error)
}
