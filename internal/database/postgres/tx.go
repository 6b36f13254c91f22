package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
)

// SafeRollback rolls back a transaction and logs any error that isn't ErrTxClosed
func SafeRollback(ctx context.Context, tx pgx.Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}

// pgTx implements repository.Tx over a pgx transaction
type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) Debit(ctx context.Context, userID string, amount int) (int, error) {
	return debit(ctx, t.tx, userID, amount)
}

func (t *pgTx) Credit(ctx context.Context, userID string, amount int) (int, error) {
	return credit(ctx, t.tx, userID, amount)
}

func (t *pgTx) AppendHistory(ctx context.Context, record *domain.GameHistory) error {
	return appendHistory(ctx, t.tx, record)
}

// GetClickerData locks the row so a concurrent click cannot overwrite this transaction's update
func (t *pgTx) GetClickerData(ctx context.Context, userID string) (*domain.ClickerData, error) {
	return getClickerData(ctx, t.tx, userID, true)
}

func (t *pgTx) UpdateClickerData(ctx context.Context, data *domain.ClickerData) error {
	return updateClickerData(ctx, t.tx, data)
}

func (t *pgTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

// Rollback reports an already finished transaction as domain.ErrTxClosed
func (t *pgTx) Rollback(ctx context.Context) error {
	if err := t.tx.Rollback(ctx); err != nil {
		if errors.Is(err, pgx.ErrTxClosed) {
			return domain.ErrTxClosed
		}
		return err
	}
	return nil
}
