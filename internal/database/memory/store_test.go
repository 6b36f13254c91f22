package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/repository"
	"github.com/osse101/Casino_Go/internal/testing/storetest"
)

func TestStore_Contract(t *testing.T) {
	storetest.Run(t, func(t *testing.T) repository.Store { return NewStore() })
}

func TestStore_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	u, err := store.CreateUser(ctx, "racer", 1000)
	require.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Debit(ctx, u.ID, 30); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	balance, err := store.GetBalance(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 33, succeeded)
	assert.Equal(t, 10, balance)
}

func TestTx_ClosedAfterCommit(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	require.NoError(t, tx.Commit(ctx))

	err = tx.Rollback(ctx)
	require.Error(t, err)
	assert.Equal(t, domain.ErrMsgTxClosed, err.Error())

	_, err = tx.Debit(ctx, "x", 1)
	assert.Error(t, err)

	// store is usable again once the tx is closed
	_, err = store.CreateUser(ctx, "after", 0)
	assert.NoError(t, err)
}

func TestQueryHistory_TiesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	u, err := store.CreateUser(ctx, "tie", 0)
	require.NoError(t, err)

	for _, bet := range []int{10, 20, 30} {
		require.NoError(t, store.AppendHistory(ctx, &domain.GameHistory{UserID: u.ID, GameType: domain.GameSlots, BetAmount: bet}))
	}
	// force identical timestamps
	for i := range store.history {
		store.history[i].CreatedAt = store.history[0].CreatedAt
	}

	newest, err := store.QueryHistory(ctx, domain.HistoryFilter{}, domain.NewestFirst, 2)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	assert.Equal(t, 30, newest[0].BetAmount)
	assert.Equal(t, 20, newest[1].BetAmount)
}
