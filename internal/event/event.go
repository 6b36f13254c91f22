package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/Casino_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Event types published by the engine
const (
	GameSettled     Type = domain.EventTypeGameSettled
	UserRegistered  Type = domain.EventTypeUserRegistered
	ClickerUpgraded Type = domain.EventTypeClickerUpgraded
)

// AllTypes lists every event type the engine publishes
var AllTypes = []Type{GameSettled, UserRegistered, ClickerUpgraded}

// NewGameSettledEvent builds the event published after a wager is written to history
func NewGameSettledEvent(outcome domain.Outcome, s *domain.Settlement) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GameSettled,
		Payload: domain.GameSettledPayload{
			HistoryID:  s.HistoryID,
			UserID:     outcome.UserID,
			GameType:   outcome.GameType,
			Bet:        outcome.Bet,
			Result:     s.Result,
			Payout:     s.Payout,
			Profit:     s.Profit,
			Multiplier: s.Multiplier,
			Balance:    s.Balance,
			Timestamp:  time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			MetadataKeyGameType: string(outcome.GameType),
		},
	}
}

// NewUserRegisteredEvent builds the event published after an account is created
func NewUserRegisteredEvent(user *domain.User) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UserRegistered,
		Payload: domain.UserRegisteredPayload{
			UserID:    user.ID,
			Username:  user.Username,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewClickerUpgradedEvent builds the event published after an upgrade purchase
func NewClickerUpgradedEvent(userID, track string, cost, newLevel int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ClickerUpgraded,
		Payload: domain.ClickerUpgradedPayload{
			UserID:   userID,
			Track:    track,
			Cost:     cost,
			NewLevel: newLevel,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	onError  func(Type, error)
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	onError := b.onError
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			if onError != nil {
				onError(event.Type, err)
			}
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe registers a handler for an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// OnHandlerError installs fn to observe every failing subscriber, once per failure
func (b *MemoryBus) OnHandlerError(fn func(Type, error)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onError = fn
}

// Forward republishes events of the given types from one bus onto another.
// Wrap to in a ResilientPublisher so a slow or failing sink never fails the source bus.
func Forward(from Bus, to Bus, types ...Type) {
	for _, t := range types {
		from.Subscribe(t, to.Publish)
	}
}
