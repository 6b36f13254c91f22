package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/event"
)

func TestEventMetricsCollector_GameSettled(t *testing.T) {
	bus := event.NewMemoryBus()
	NewEventMetricsCollector().Register(bus)

	settled := GamesSettled.WithLabelValues("roulette", "win")
	wagered := AmountWagered.WithLabelValues("roulette")
	paid := AmountPaidOut.WithLabelValues("roulette")
	beforeSettled, beforeWagered, beforePaid := testutil.ToFloat64(settled), testutil.ToFloat64(wagered), testutil.ToFloat64(paid)

	evt := event.NewGameSettledEvent(
		domain.Outcome{UserID: "u", GameType: domain.GameRoulette, Bet: 100},
		&domain.Settlement{Result: domain.ResultWin, Payout: 3600, Profit: 3500, Multiplier: 36},
	)
	require.NoError(t, bus.Publish(context.Background(), evt))

	assert.Equal(t, beforeSettled+1, testutil.ToFloat64(settled))
	assert.Equal(t, beforeWagered+100, testutil.ToFloat64(wagered))
	assert.Equal(t, beforePaid+3600, testutil.ToFloat64(paid))
}

func TestEventMetricsCollector_ClickerUpgraded(t *testing.T) {
	c := NewEventMetricsCollector()
	upgrades := ClickerUpgrades.WithLabelValues("bank")
	before, spentBefore := testutil.ToFloat64(upgrades), testutil.ToFloat64(ClickerSpent)

	require.NoError(t, c.HandleEvent(context.Background(), event.NewClickerUpgradedEvent("u", "bank", 1000, 1)))

	assert.Equal(t, before+1, testutil.ToFloat64(upgrades))
	assert.Equal(t, spentBefore+1000, testutil.ToFloat64(ClickerSpent))
}

func TestEventMetricsCollector_BadPayloadIgnored(t *testing.T) {
	err := NewEventMetricsCollector().HandleEvent(context.Background(), event.Event{Type: event.GameSettled, Payload: make(chan int)})
	assert.NoError(t, err)
}

func TestRecordHandlerError_ViaBusHook(t *testing.T) {
	bus := event.NewMemoryBus()
	bus.OnHandlerError(RecordHandlerError)
	bus.Subscribe(event.UserRegistered, func(context.Context, event.Event) error { return errors.New("db down") })
	bus.Subscribe(event.UserRegistered, func(context.Context, event.Event) error { return nil })

	failures := EventHandlerErrors.WithLabelValues(string(event.UserRegistered))
	before := testutil.ToFloat64(failures)

	err := bus.Publish(context.Background(), event.Event{Type: event.UserRegistered})

	require.Error(t, err)
	assert.Equal(t, before+1, testutil.ToFloat64(failures))
}

func TestRecordSnapshot(t *testing.T) {
	RecordSnapshot(&domain.StatsSnapshot{
		TotalGames:   7,
		TotalWagered: 700,
		BiggestWin:   350,
		ByGame:       map[domain.GameType]domain.GameBreakdown{domain.GameSlots: {Games: 4}},
	})

	assert.Equal(t, 7.0, testutil.ToFloat64(StatsTotalGames))
	assert.Equal(t, 700.0, testutil.ToFloat64(StatsTotalWagered))
	assert.Equal(t, 350.0, testutil.ToFloat64(StatsBiggestWin))
	assert.Equal(t, 4.0, testutil.ToFloat64(StatsGames.WithLabelValues("slots")))

	RecordSnapshot(nil)
}

func TestMiddleware_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/users/{id}", "418")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/abc", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
