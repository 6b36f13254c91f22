package repository

import (
	"context"
	"errors"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
)

// SafeRollback is deferred after BeginTx. Rolling back a committed transaction
// is the normal path and stays silent; any other failure is logged.
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, domain.ErrTxClosed) {
		logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
	}
}
