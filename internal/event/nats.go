package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nats-io/nats.go"

	"github.com/osse101/Casino_Go/internal/logger"
)

// Publisher is the slice of *nats.Conn the bridge needs
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSBridge is an outbound-only Bus publishing onto NATS subjects of the form <prefix>.<event type>
type NATSBridge struct {
	conn   Publisher
	prefix string
}

// NewNATSBridge creates a bridge publishing under prefix
func NewNATSBridge(conn Publisher, prefix string) *NATSBridge {
	return &NATSBridge{conn: conn, prefix: prefix}
}

// ConnectNATS dials the NATS server, reconnecting indefinitely
func ConnectNATS(url, name string) (*nats.Conn, error) {
	nc, err := nats.Connect(url,
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			logger.Warn(LogMsgNATSDisconnected, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", url, err)
	}
	logger.Info(LogMsgNATSConnected, "url", nc.ConnectedUrl())
	return nc, nil
}

// Subject returns the NATS subject used for an event type
func (b *NATSBridge) Subject(t Type) string {
	return b.prefix + "." + string(t)
}

// Publish serialises an event and publishes it to its subject
func (b *NATSBridge) Publish(ctx context.Context, evt Event) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to encode event %s: %w", evt.Type, err)
	}
	if err := b.conn.Publish(b.Subject(evt.Type), data); err != nil {
		logger.FromContext(ctx).Warn(LogMsgNATSPublishFailed, "event_type", evt.Type, "error", err)
		return err
	}
	return nil
}

// Subscribe is a no-op: the bridge only mirrors outbound events
func (b *NATSBridge) Subscribe(Type, Handler) {}
