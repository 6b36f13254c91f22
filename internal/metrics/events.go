package metrics

import (
	"context"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/event"
	"github.com/osse101/Casino_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range event.AllTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.GameSettled:
		p, err := event.DecodePayload[domain.GameSettledPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		game := string(p.GameType)
		GamesSettled.WithLabelValues(game, string(p.Result)).Inc()
		AmountWagered.WithLabelValues(game).Add(float64(p.Bet))
		AmountPaidOut.WithLabelValues(game).Add(float64(p.Payout))

	case event.UserRegistered:
		UsersRegistered.Inc()

	case event.ClickerUpgraded:
		p, err := event.DecodePayload[domain.ClickerUpgradedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgUnexpectedPayload, "type", evt.Type, "error", err)
			return nil
		}
		ClickerUpgrades.WithLabelValues(p.Track).Inc()
		ClickerSpent.Add(float64(p.Cost))
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// RecordHandlerError counts a failed event subscriber. Install with
// event.MemoryBus.OnHandlerError.
func RecordHandlerError(t event.Type, _ error) {
	EventHandlerErrors.WithLabelValues(string(t)).Inc()
}
