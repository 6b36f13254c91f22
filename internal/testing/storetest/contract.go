// Package storetest runs the behaviour every repository.Store implementation must share.
package storetest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/repository"
)

// Factory returns a fresh, empty store for one subtest
type Factory func(t *testing.T) repository.Store

var userSeq int

// NewUser registers a uniquely named user with balance money
func NewUser(t *testing.T, store repository.Store, money int) *domain.User {
	t.Helper()
	userSeq++
	u, err := store.CreateUser(context.Background(), fmt.Sprintf("player-%d-%d", time.Now().UnixNano(), userSeq), money)
	require.NoError(t, err)
	return u
}

// Run exercises the full Store contract against stores built by newStore
func Run(t *testing.T, newStore Factory) {
	t.Run("Accounts", func(t *testing.T) { testAccounts(t, newStore(t)) })
	t.Run("DebitCredit", func(t *testing.T) { testDebitCredit(t, newStore(t)) })
	t.Run("History", func(t *testing.T) { testHistory(t, newStore(t)) })
	t.Run("Clicker", func(t *testing.T) { testClicker(t, newStore(t)) })
	t.Run("Counters", func(t *testing.T) { testCounters(t, newStore(t)) })
	t.Run("Achievements", func(t *testing.T) { testAchievements(t, newStore(t)) })
	t.Run("TxCommit", func(t *testing.T) { testTxCommit(t, newStore(t)) })
	t.Run("TxRollback", func(t *testing.T) { testTxRollback(t, newStore(t)) })
}

func testAccounts(t *testing.T, store repository.Store) {
	ctx := context.Background()

	u, err := store.CreateUser(ctx, "alice", domain.StartingBalance)
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, domain.StartingBalance, u.Money)
	assert.False(t, u.CreatedAt.IsZero())

	_, err = store.CreateUser(ctx, "alice", 1)
	assert.True(t, errors.Is(err, domain.ErrUsernameTaken), "got %v", err)

	byID, err := store.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", byID.Username)

	byName, err := store.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, u.ID, byName.ID)

	_, err = store.GetUserByUsername(ctx, "bob")
	assert.True(t, errors.Is(err, domain.ErrUserNotFound), "got %v", err)

	_, err = store.GetUserByID(ctx, "00000000-0000-0000-0000-000000000000")
	assert.True(t, errors.Is(err, domain.ErrUserNotFound), "got %v", err)

	clicker, err := store.GetClickerData(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.NewClickerData(u.ID), clicker, "registration creates default clicker data")
}

func testDebitCredit(t *testing.T, store repository.Store) {
	ctx := context.Background()
	u := NewUser(t, store, 100)

	balance, err := store.Debit(ctx, u.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 60, balance)

	_, err = store.Debit(ctx, u.ID, 61)
	assert.True(t, errors.Is(err, domain.ErrInsufficientFunds), "got %v", err)

	_, err = store.Debit(ctx, u.ID, -1)
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount), "got %v", err)

	_, err = store.Credit(ctx, u.ID, -1)
	assert.True(t, errors.Is(err, domain.ErrInvalidAmount), "got %v", err)

	balance, err = store.Credit(ctx, u.ID, 15)
	require.NoError(t, err)
	assert.Equal(t, 75, balance)

	balance, err = store.Debit(ctx, u.ID, 75)
	require.NoError(t, err)
	assert.Zero(t, balance, "the whole balance can be wagered")

	got, err := store.GetBalance(ctx, u.ID)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func testHistory(t *testing.T, store repository.Store) {
	ctx := context.Background()
	a := NewUser(t, store, 1000)
	b := NewUser(t, store, 1000)
	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	records := []domain.GameHistory{
		{UserID: a.ID, GameType: domain.GameSlots, BetAmount: 10, Result: domain.ResultLose, Profit: -10},
		{UserID: a.ID, GameType: domain.GameRoulette, BetAmount: 20, Result: domain.ResultWin, Profit: 20, Multiplier: 2},
		{UserID: b.ID, GameType: domain.GameSlots, BetAmount: 30, Result: domain.ResultWin, Profit: 30, Multiplier: 2},
	}
	for i := range records {
		records[i].CreatedAt = base.Add(time.Duration(i) * time.Minute)
		records[i].Details = json.RawMessage(`{"i":` + fmt.Sprint(i) + `}`)
		require.NoError(t, store.AppendHistory(ctx, &records[i]))
		assert.NotEmpty(t, records[i].ID)
	}

	all, err := store.QueryHistory(ctx, domain.HistoryFilter{}, domain.OldestFirst, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 10, all[0].BetAmount)
	assert.Equal(t, 30, all[2].BetAmount)
	assert.JSONEq(t, `{"i":1}`, string(all[1].Details))

	mine, err := store.QueryHistory(ctx, domain.HistoryFilter{UserID: a.ID}, domain.NewestFirst, 0)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, domain.GameRoulette, mine[0].GameType)
	assert.Equal(t, 2.0, mine[0].Multiplier)

	slots, err := store.QueryHistory(ctx, domain.HistoryFilter{GameType: domain.GameSlots}, domain.NewestFirst, 1)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, b.ID, slots[0].UserID)

	none, err := store.QueryHistory(ctx, domain.HistoryFilter{GameType: domain.GameMinebomb}, domain.NewestFirst, 0)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testClicker(t *testing.T, store repository.Store) {
	ctx := context.Background()
	u := NewUser(t, store, 0)

	data, err := store.GetClickerData(ctx, u.ID)
	require.NoError(t, err)

	data.ClickLevel = 2
	data.ClickPower = 2
	data.ClickCost = 15
	data.TotalClicks = 7
	data.TotalEarned = 9
	require.NoError(t, store.UpdateClickerData(ctx, data))

	got, err := store.GetClickerData(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func testCounters(t *testing.T, store repository.Store) {
	ctx := context.Background()

	v, err := store.GetCounter(ctx, "missing")
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = store.IncrementCounter(ctx, domain.CounterGamesSettled, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	v, err = store.IncrementCounter(ctx, domain.CounterGamesSettled, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)

	v, err = store.GetCounter(ctx, domain.CounterGamesSettled)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v)
}

func testAchievements(t *testing.T, store repository.Store) {
	ctx := context.Background()
	u := NewUser(t, store, 0)

	catalog, err := store.ListAchievements(ctx)
	require.NoError(t, err)
	require.Len(t, catalog, len(domain.AchievementCatalog))
	assert.Equal(t, "Premier pas", catalog[0].Name)
	assert.Equal(t, 100, catalog[0].Reward)

	held, err := store.ListUserAchievements(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, held, "nothing grants achievements")
}

func testTxCommit(t *testing.T, store repository.Store) {
	ctx := context.Background()
	u := NewUser(t, store, 100)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)
	defer repository.SafeRollback(ctx, tx)

	_, err = tx.Debit(ctx, u.ID, 50)
	require.NoError(t, err)
	balance, err := tx.Credit(ctx, u.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 150, balance)

	rec := &domain.GameHistory{UserID: u.ID, GameType: domain.GameSlots, BetAmount: 50, Result: domain.ResultWin, Profit: 50, Multiplier: 2}
	require.NoError(t, tx.AppendHistory(ctx, rec))

	data, err := tx.GetClickerData(ctx, u.ID)
	require.NoError(t, err)
	data.TotalClicks = 1
	require.NoError(t, tx.UpdateClickerData(ctx, data))

	require.NoError(t, tx.Commit(ctx))

	got, err := store.GetBalance(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 150, got)

	hist, err := store.QueryHistory(ctx, domain.HistoryFilter{UserID: u.ID}, domain.NewestFirst, 0)
	require.NoError(t, err)
	require.Len(t, hist, 1)
	assert.Equal(t, rec.ID, hist[0].ID)

	clicker, err := store.GetClickerData(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), clicker.TotalClicks)
}

func testTxRollback(t *testing.T, store repository.Store) {
	ctx := context.Background()
	u := NewUser(t, store, 100)

	tx, err := store.BeginTx(ctx)
	require.NoError(t, err)

	_, err = tx.Debit(ctx, u.ID, 30)
	require.NoError(t, err)
	require.NoError(t, tx.AppendHistory(ctx, &domain.GameHistory{UserID: u.ID, GameType: domain.GameRoulette, BetAmount: 30, Result: domain.ResultLose, Profit: -30}))
	data, err := tx.GetClickerData(ctx, u.ID)
	require.NoError(t, err)
	data.ClickPower = 99
	require.NoError(t, tx.UpdateClickerData(ctx, data))

	_, err = tx.Debit(ctx, u.ID, 1000)
	require.True(t, errors.Is(err, domain.ErrInsufficientFunds), "got %v", err)

	require.NoError(t, tx.Rollback(ctx))

	balance, err := store.GetBalance(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, balance)

	hist, err := store.QueryHistory(ctx, domain.HistoryFilter{UserID: u.ID}, domain.NewestFirst, 0)
	require.NoError(t, err)
	assert.Empty(t, hist)

	clicker, err := store.GetClickerData(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, clicker.ClickPower)
}
