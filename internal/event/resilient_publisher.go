package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Casino_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
	DeadLetter *DeadLetterWriter
}

// ResilientPublisher wraps an Event Bus to add retry logic and dead letter queuing
type ResilientPublisher struct {
	inner  Bus
	config ResilientConfig
	wg     sync.WaitGroup
	stop   chan struct{}
	once   sync.Once
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}
	return &ResilientPublisher{
		inner:  inner,
		config: config,
		stop:   make(chan struct{}),
	}
}

// Publish attempts to publish an event. If it fails, a background retry loop takes over
// and the caller gets nil: settlement has already committed and must not be reported as failed.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(event, err)

	return nil
}

func (p *ResilientPublisher) retryLoop(event Event, lastErr error) {
	defer p.wg.Done()
	ctx := context.Background()

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		select {
		case <-time.After(CalculateRetryDelay(p.config.RetryDelay, attempt)):
		case <-p.stop:
			p.deadLetter(event, attempt, lastErr)
			return
		}

		if lastErr = p.inner.Publish(ctx, event); lastErr == nil {
			logger.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempt)
			return
		}

		logger.Warn(LogMsgEventRetryFailed, "event_type", event.Type, "attempt", attempt, "error", lastErr)
	}

	logger.Error(LogMsgEventRetryExhausted, "event_type", event.Type)
	p.deadLetter(event, p.config.MaxRetries+1, lastErr)
}

func (p *ResilientPublisher) deadLetter(event Event, attempts int, lastErr error) {
	if p.config.DeadLetter == nil {
		return
	}
	if err := p.config.DeadLetter.Write(event, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", err)
	}
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown stops pending retries, dead-lettering their events, and waits for the loops to exit
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.stop) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}
