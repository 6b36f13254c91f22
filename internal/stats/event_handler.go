package stats

import (
	"context"
	"fmt"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/event"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/repository"
)

// EventHandler keeps the global counter table in step with settlements
type EventHandler struct {
	counters repository.Counters
}

// NewEventHandler creates a new stats event handler
func NewEventHandler(counters repository.Counters) *EventHandler {
	return &EventHandler{counters: counters}
}

// Register subscribes the handler to relevant events
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.GameSettled, h.HandleGameSettled)
}

// HandleGameSettled bumps the total and per-game settlement counters
func (h *EventHandler) HandleGameSettled(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.GameSettledPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextDecodePayload, err)
	}

	for _, key := range []string{domain.CounterGamesSettled, domain.CounterGamesSettledPrefix + string(payload.GameType)} {
		if _, err := h.counters.IncrementCounter(ctx, key, 1); err != nil {
			logger.FromContext(ctx).Warn(LogMsgCounterIncrementFailed, "key", key, "error", err)
			return err
		}
	}
	return nil
}
