package settlement

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Casino_Go/internal/database/memory"
	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/event"
	"github.com/osse101/Casino_Go/internal/stats"
)

type fixture struct {
	store *memory.Store
	svc   Service
	bus   *event.MemoryBus
	user  *domain.User
}

func newFixture(t *testing.T, money int) *fixture {
	t.Helper()
	store := memory.NewStore()
	u, err := store.CreateUser(context.Background(), "player", money)
	require.NoError(t, err)
	bus := event.NewMemoryBus()
	return &fixture{
		store: store,
		svc:   NewService(store, stats.NewService(store), bus),
		bus:   bus,
		user:  u,
	}
}

func (f *fixture) balance(t *testing.T) int {
	t.Helper()
	b, err := f.store.GetBalance(context.Background(), f.user.ID)
	require.NoError(t, err)
	return b
}

func (f *fixture) history(t *testing.T) []domain.GameHistory {
	t.Helper()
	h, err := f.store.QueryHistory(context.Background(), domain.HistoryFilter{UserID: f.user.ID}, domain.NewestFirst, 0)
	require.NoError(t, err)
	return h
}

func TestValidateBet(t *testing.T) {
	tests := []struct {
		name    string
		bet     int
		wantErr error
	}{
		{"minimum", domain.MinBet, nil},
		{"whole balance", 100, nil},
		{"below minimum", domain.MinBet - 1, domain.ErrInvalidBet},
		{"zero", 0, domain.ErrInvalidBet},
		{"negative", -50, domain.ErrInvalidBet},
		{"above balance", 101, domain.ErrInvalidBet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 100)
			err := f.svc.ValidateBet(context.Background(), f.user.ID, tt.bet)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			assert.Equal(t, 100, f.balance(t), "validation never mutates")
		})
	}
}

func TestValidateBet_UnknownUser(t *testing.T) {
	f := newFixture(t, 100)
	err := f.svc.ValidateBet(context.Background(), "ghost", 10)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound))
}

func TestPlaceBetThenSettle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 1000)

	balance, err := f.svc.PlaceBet(ctx, f.user.ID, 100)
	require.NoError(t, err)
	assert.Equal(t, 900, balance)
	assert.Empty(t, f.history(t), "no history while a game is pending")

	res, err := f.svc.Settle(ctx, domain.Outcome{
		UserID: f.user.ID, GameType: domain.GameBlackjack, Bet: 100,
		Result: domain.ResultWin, Payout: 200, Multiplier: 1,
		Details: domain.BlackjackDetails{PlayerTotal: 20, DealerTotal: 18},
	})
	require.NoError(t, err)

	assert.Equal(t, 1100, res.Balance)
	assert.Equal(t, 100, res.Profit)
	assert.Equal(t, domain.ResultWin, res.Result)
	require.NotNil(t, res.Stats)
	assert.Equal(t, 1, res.Stats.TotalGames)
	assert.Equal(t, 1100, f.balance(t))

	h := f.history(t)
	require.Len(t, h, 1)
	assert.Equal(t, res.HistoryID, h[0].ID)
	assert.Equal(t, 100, h[0].BetAmount)
	assert.Equal(t, 100, h[0].Profit)
	var details domain.BlackjackDetails
	require.NoError(t, json.Unmarshal(h[0].Details, &details))
	assert.Equal(t, 18, details.DealerTotal)
}

func TestSettle_LossKeepsBalance(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, 500)
	_, err := f.svc.PlaceBet(ctx, f.user.ID, 50)
	require.NoError(t, err)

	res, err := f.svc.Settle(ctx, domain.Outcome{UserID: f.user.ID, GameType: domain.GameMinebomb, Bet: 50, Result: domain.ResultLose})
	require.NoError(t, err)

	assert.Equal(t, 450, res.Balance)
	assert.Equal(t, -50, res.Profit)
	assert.Equal(t, 450, f.balance(t))
}

func TestPlaceBet_Rejected(t *testing.T) {
	f := newFixture(t, 40)

	_, err := f.svc.PlaceBet(context.Background(), f.user.ID, 50)

	assert.True(t, errors.Is(err, domain.ErrInvalidBet))
	assert.Equal(t, 40, f.balance(t))
}

func TestSettleInstant(t *testing.T) {
	tests := []struct {
		name        string
		result      domain.GameResult
		payout      int
		wantBalance int
		wantProfit  int
	}{
		{"loss", domain.ResultLose, 0, 900, -100},
		{"even money", domain.ResultWin, 200, 1100, 100},
		{"straight up", domain.ResultWin, 3600, 4500, 3500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 1000)
			res, err := f.svc.SettleInstant(context.Background(), domain.Outcome{
				UserID: f.user.ID, GameType: domain.GameRoulette, Bet: 100, Result: tt.result, Payout: tt.payout,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantBalance, res.Balance)
			assert.Equal(t, tt.wantProfit, res.Profit)
			assert.Equal(t, tt.wantBalance, f.balance(t))
			assert.Len(t, f.history(t), 1)
		})
	}
}

func TestSettleInstant_InvalidBetLeavesNoTrace(t *testing.T) {
	f := newFixture(t, 30)

	_, err := f.svc.SettleInstant(context.Background(), domain.Outcome{
		UserID: f.user.ID, GameType: domain.GameSlots, Bet: 50, Result: domain.ResultWin, Payout: 100,
	})

	assert.True(t, errors.Is(err, domain.ErrInvalidBet))
	assert.Equal(t, 30, f.balance(t))
	assert.Empty(t, f.history(t))
}

func TestSettleInstant_UnencodableDetails(t *testing.T) {
	f := newFixture(t, 100)

	_, err := f.svc.SettleInstant(context.Background(), domain.Outcome{
		UserID: f.user.ID, GameType: domain.GameSlots, Bet: 10, Details: make(chan int),
	})

	require.Error(t, err)
	assert.Equal(t, 100, f.balance(t))
	assert.Empty(t, f.history(t))
}

func TestSettle_PublishesEvent(t *testing.T) {
	f := newFixture(t, 100)
	var got []domain.GameSettledPayload
	f.bus.Subscribe(event.GameSettled, func(ctx context.Context, e event.Event) error {
		p, err := event.DecodePayload[domain.GameSettledPayload](e.Payload)
		got = append(got, p)
		return err
	})

	res, err := f.svc.SettleInstant(context.Background(), domain.Outcome{
		UserID: f.user.ID, GameType: domain.GameSlots, Bet: 10, Result: domain.ResultWin, Payout: 20, Multiplier: 2,
	})
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.Equal(t, res.HistoryID, got[0].HistoryID)
	assert.Equal(t, domain.GameSlots, got[0].GameType)
	assert.Equal(t, 110, got[0].Balance)
}

func TestSettle_AfterCommitFailuresAreSwallowed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	u, err := store.CreateUser(ctx, "p", 100)
	require.NoError(t, err)

	snap := new(MockSnapshotter)
	snap.On("GlobalSnapshot", mock.Anything).Return(nil, errors.New("db down"))
	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.AnythingOfType("event.Event")).Return(errors.New("bus down"))

	svc := NewService(store, snap, bus)
	res, err := svc.SettleInstant(ctx, domain.Outcome{UserID: u.ID, GameType: domain.GameSlots, Bet: 10, Result: domain.ResultLose})

	require.NoError(t, err)
	assert.Nil(t, res.Stats)
	assert.Equal(t, 90, res.Balance)
	snap.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestSettle_NilCollaborators(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	u, _ := store.CreateUser(ctx, "p", 100)

	res, err := NewService(store, nil, nil).SettleInstant(ctx, domain.Outcome{UserID: u.ID, GameType: domain.GameSlots, Bet: 10, Result: domain.ResultLose})

	require.NoError(t, err)
	assert.Nil(t, res.Stats)
}

func TestRefundBet(t *testing.T) {
	f := newFixture(t, 100)
	ctx := context.Background()

	_, err := f.svc.PlaceBet(ctx, f.user.ID, 40)
	require.NoError(t, err)

	balance, err := f.svc.RefundBet(ctx, f.user.ID, 40)
	require.NoError(t, err)
	assert.Equal(t, 100, balance)
	assert.Empty(t, f.history(t), "a refund is not a completed game")

	_, err = f.svc.RefundBet(ctx, "missing", 40)
	assert.True(t, errors.Is(err, domain.ErrUserNotFound), "got %v", err)
}
