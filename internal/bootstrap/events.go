package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"

	"github.com/osse101/Casino_Go/internal/config"
	"github.com/osse101/Casino_Go/internal/event"
)

// EventSystem is the in-process bus plus the optional outbound NATS bridge
type EventSystem struct {
	Bus *event.MemoryBus

	conn       *nats.Conn
	publisher  *event.ResilientPublisher
	deadLetter *event.DeadLetterWriter
}

// InitializeEventSystem creates the event bus. When NATS_URL is set, every event
// type is also forwarded to NATS through a resilient publisher whose exhausted
// retries land in the dead-letter file.
func InitializeEventSystem(cfg *config.Config) (*EventSystem, error) {
	es := &EventSystem{Bus: event.NewMemoryBus()}

	if cfg.NATSURL == "" {
		slog.Info(LogMsgNATSBridgeDisabled)
		slog.Info(LogMsgEventSystemInitialized)
		return es, nil
	}

	deadLetter, err := event.NewDeadLetterWriter(cfg.EventDeadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetter, err)
	}

	conn, err := event.ConnectNATS(cfg.NATSURL, NATSClientName)
	if err != nil {
		_ = deadLetter.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectNATS, err)
	}

	es.conn = conn
	es.deadLetter = deadLetter
	es.publisher = event.NewResilientPublisher(event.NewNATSBridge(conn, cfg.NATSSubject), event.ResilientConfig{
		MaxRetries: EventDefaultMaxRetries,
		RetryDelay: EventDefaultRetryDelay,
		DeadLetter: deadLetter,
	})
	event.Forward(es.Bus, es.publisher, event.AllTypes...)

	slog.Info(LogMsgNATSBridgeEnabled, "subject_prefix", cfg.NATSSubject, "deadletter_path", cfg.EventDeadLetterPath)
	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", EventDefaultMaxRetries,
		"retry_delay", EventDefaultRetryDelay)

	return es, nil
}

// Shutdown waits for in-flight retries, then drains the NATS connection and
// closes the dead-letter file
func (es *EventSystem) Shutdown(ctx context.Context) {
	if es.publisher == nil {
		return
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := es.publisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}
	if err := es.conn.Drain(); err != nil {
		es.conn.Close()
	}
	if err := es.deadLetter.Close(); err != nil {
		slog.Error(LogMsgDeadLetterCloseFailed, "error", err)
	}
}
