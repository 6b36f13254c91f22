package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Casino_Go/internal/blackjack"
	"github.com/osse101/Casino_Go/internal/concurrency"
	"github.com/osse101/Casino_Go/internal/database/memory"
	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/minebomb"
	"github.com/osse101/Casino_Go/internal/rng"
	"github.com/osse101/Casino_Go/internal/roulette"
	"github.com/osse101/Casino_Go/internal/session"
	"github.com/osse101/Casino_Go/internal/settlement"
	"github.com/osse101/Casino_Go/internal/slots"
	"github.com/osse101/Casino_Go/internal/stats"
	"github.com/osse101/Casino_Go/internal/testing/storetest"
)

type mocks struct {
	bj    *MockBlackjack
	mb    *MockMinebomb
	rl    *MockRoulette
	sl    *MockSlots
	stats *MockSnapshotter
}

func newMockEngine() (Engine, *mocks) {
	m := &mocks{
		bj:    new(MockBlackjack),
		mb:    new(MockMinebomb),
		rl:    new(MockRoulette),
		sl:    new(MockSlots),
		stats: new(MockSnapshotter),
	}
	e := New(Games{Blackjack: m.bj, Minebomb: m.mb, Roulette: m.rl, Slots: m.sl}, m.stats)
	return e, m
}

func TestStartGame_Dispatch(t *testing.T) {
	ctx := context.Background()
	p := Params{UserID: "u1", Bet: 50, Bombs: 4, Mode: "color", Choice: "red"}

	tests := []struct {
		game  domain.GameType
		setup func(m *mocks)
		check func(t *testing.T, r *StartResult)
	}{
		{
			game: domain.GameBlackjack,
			setup: func(m *mocks) {
				m.bj.On("Start", ctx, "u1", 50).Return(&domain.BlackjackStartResult{NumDecks: 3}, nil)
			},
			check: func(t *testing.T, r *StartResult) {
				require.NotNil(t, r.Blackjack)
				assert.Equal(t, 3, r.Blackjack.NumDecks)
			},
		},
		{
			game: domain.GameMinebomb,
			setup: func(m *mocks) {
				m.mb.On("Start", ctx, "u1", 50, 4).Return(&domain.MinebombStartResult{Bombs: 4}, nil)
			},
			check: func(t *testing.T, r *StartResult) {
				require.NotNil(t, r.Minebomb)
				assert.Equal(t, 4, r.Minebomb.Bombs)
			},
		},
		{
			game: domain.GameRoulette,
			setup: func(m *mocks) {
				m.rl.On("Spin", ctx, "u1", 50, "color", "red").Return(&domain.RouletteResult{Number: 7}, nil)
			},
			check: func(t *testing.T, r *StartResult) {
				require.NotNil(t, r.Roulette)
				assert.Equal(t, 7, r.Roulette.Number)
			},
		},
		{
			game: domain.GameSlots,
			setup: func(m *mocks) {
				m.sl.On("Spin", ctx, "u1", 50).Return(&domain.SlotsResult{Multiplier: 2}, nil)
			},
			check: func(t *testing.T, r *StartResult) {
				require.NotNil(t, r.Slots)
				assert.Equal(t, 2.0, r.Slots.Multiplier)
			},
		},
	}

	for _, tt := range tests {
		t.Run(string(tt.game), func(t *testing.T) {
			e, m := newMockEngine()
			tt.setup(m)

			res, err := e.StartGame(ctx, tt.game, p)
			require.NoError(t, err)
			assert.Equal(t, tt.game, res.GameType)
			tt.check(t, res)

			m.bj.AssertExpectations(t)
			m.mb.AssertExpectations(t)
			m.rl.AssertExpectations(t)
			m.sl.AssertExpectations(t)
		})
	}
}

func TestStartGame_UnknownGame(t *testing.T) {
	e, _ := newMockEngine()

	_, err := e.StartGame(context.Background(), "poker", Params{UserID: "u1", Bet: 50})
	assert.True(t, errors.Is(err, domain.ErrInvalidParameters))
}

func TestStartGame_PropagatesErrors(t *testing.T) {
	e, m := newMockEngine()
	ctx := context.Background()
	m.sl.On("Spin", ctx, "u1", 5).Return(nil, domain.ErrInvalidBet)

	res, err := e.StartGame(ctx, domain.GameSlots, Params{UserID: "u1", Bet: 5})
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, domain.ErrInvalidBet))
}

func TestApplyAction_Dispatch(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		game   domain.GameType
		action string
		setup  func(m *mocks)
		check  func(t *testing.T, r *ActionResult)
	}{
		{domain.GameBlackjack, ActionHit, func(m *mocks) {
			m.bj.On("Hit", ctx, "u1").Return(&domain.BlackjackHitResult{PlayerTotal: 15}, nil)
		}, func(t *testing.T, r *ActionResult) {
			require.NotNil(t, r.BlackjackHit)
			assert.Equal(t, 15, r.BlackjackHit.PlayerTotal)
		}},
		{domain.GameBlackjack, ActionStand, func(m *mocks) {
			m.bj.On("Stand", ctx, "u1").Return(&domain.BlackjackStandResult{DealerTotal: 18}, nil)
		}, func(t *testing.T, r *ActionResult) {
			require.NotNil(t, r.BlackjackStand)
			assert.Equal(t, 18, r.BlackjackStand.DealerTotal)
		}},
		{domain.GameMinebomb, ActionReveal, func(m *mocks) {
			m.mb.On("Reveal", ctx, "u1", 12).Return(&domain.MinebombRevealResult{Type: domain.RevealDiamond, Index: 12}, nil)
		}, func(t *testing.T, r *ActionResult) {
			require.NotNil(t, r.MinebombReveal)
			assert.Equal(t, 12, r.MinebombReveal.Index)
		}},
		{domain.GameMinebomb, ActionCashout, func(m *mocks) {
			m.mb.On("Cashout", ctx, "u1").Return(&domain.MinebombCashoutResult{Diamonds: 2}, nil)
		}, func(t *testing.T, r *ActionResult) {
			require.NotNil(t, r.MinebombCashout)
			assert.Equal(t, 2, r.MinebombCashout.Diamonds)
		}},
	}

	for _, tt := range tests {
		t.Run(string(tt.game)+"/"+tt.action, func(t *testing.T) {
			e, m := newMockEngine()
			tt.setup(m)

			res, err := e.ApplyAction(ctx, tt.game, tt.action, Params{UserID: "u1", Index: 12})
			require.NoError(t, err)
			assert.Equal(t, tt.action, res.Action)
			tt.check(t, res)
		})
	}
}

func TestApplyAction_Rejected(t *testing.T) {
	tests := []struct {
		name   string
		game   domain.GameType
		action string
	}{
		{"single-shot game", domain.GameSlots, ActionHit},
		{"roulette", domain.GameRoulette, ActionStand},
		{"wrong game for action", domain.GameBlackjack, ActionReveal},
		{"unknown action", domain.GameMinebomb, "double"},
		{"unknown game", "poker", ActionHit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, m := newMockEngine()

			_, err := e.ApplyAction(context.Background(), tt.game, tt.action, Params{UserID: "u1"})
			assert.True(t, errors.Is(err, domain.ErrInvalidParameters), "got %v", err)
			m.bj.AssertNotCalled(t, "Hit")
			m.mb.AssertNotCalled(t, "Cashout")
		})
	}
}

func TestStatsSnapshot_Delegates(t *testing.T) {
	e, m := newMockEngine()
	ctx := context.Background()
	scope := domain.StatsScope{UserID: "u1"}
	want := &domain.StatsSnapshot{TotalGames: 3}
	m.stats.On("Snapshot", ctx, scope).Return(want, nil)

	got, err := e.StatsSnapshot(ctx, scope)
	require.NoError(t, err)
	assert.Same(t, want, got)
}

func newRealEngine(t *testing.T, money int) (Engine, *memory.Store, string) {
	t.Helper()
	store := memory.NewStore()
	user := storetest.NewUser(t, store, money)
	statsSvc := stats.NewService(store)
	settle := settlement.NewService(store, statsSvc, nil)
	sessions := session.NewLRUStore(100, time.Minute)
	locks := concurrency.NewLockManager()
	src := rng.NewSeeded(7)

	games := Games{
		Blackjack: blackjack.NewService(settle, sessions, src, locks),
		Minebomb:  minebomb.NewService(settle, sessions, src, locks),
		Roulette:  roulette.NewService(settle, src),
		Slots:     slots.NewService(settle, src),
	}
	return New(games, statsSvc), store, user.ID
}

func TestEngine_MinebombImmediateCashout(t *testing.T) {
	e, store, userID := newRealEngine(t, 1000)
	ctx := context.Background()

	_, err := e.StartGame(ctx, domain.GameMinebomb, Params{UserID: userID, Bet: 100, Bombs: 5})
	require.NoError(t, err)

	res, err := e.ApplyAction(ctx, domain.GameMinebomb, ActionCashout, Params{UserID: userID})
	require.NoError(t, err)
	assert.Equal(t, 0, res.MinebombCashout.Settlement.Profit)

	balance, err := store.GetBalance(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 1000, balance)

	_, err = e.ApplyAction(ctx, domain.GameMinebomb, ActionCashout, Params{UserID: userID})
	assert.True(t, errors.Is(err, domain.ErrNoActiveSession))
}

func TestEngine_StatsSnapshotIdempotent(t *testing.T) {
	e, _, userID := newRealEngine(t, 10000)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := e.StartGame(ctx, domain.GameSlots, Params{UserID: userID, Bet: 10})
		require.NoError(t, err)
	}

	first, err := e.StatsSnapshot(ctx, domain.GlobalScope)
	require.NoError(t, err)
	second, err := e.StatsSnapshot(ctx, domain.GlobalScope)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 5, first.TotalGames)
	assert.Equal(t, int64(50), first.TotalWagered)
}
