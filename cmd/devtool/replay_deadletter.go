package main

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/Casino_Go/internal/config"
	"github.com/osse101/Casino_Go/internal/event"
)

const replayClientName = "casino-devtool-replay"

// ReplayDeadLetterCommand pushes dead-lettered events back onto NATS once the
// broker is reachable again
type ReplayDeadLetterCommand struct{}

func (c *ReplayDeadLetterCommand) Name() string {
	return "replay-deadletter"
}

func (c *ReplayDeadLetterCommand) Description() string {
	return "Republish events from the dead-letter file to NATS ([path])"
}

func (c *ReplayDeadLetterCommand) Run(ctx context.Context, con *Console, args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("%w: replay-deadletter [path]", errUsage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NATSURL == "" {
		return fmt.Errorf("NATS_URL is not set")
	}

	path := cfg.EventDeadLetterPath
	if len(args) == 1 {
		path = args[0]
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	entries, err := event.ReadDeadLetters(f)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		con.Info("No dead-lettered events in %s", path)
		return nil
	}

	conn, err := event.ConnectNATS(cfg.NATSURL, replayClientName)
	if err != nil {
		return err
	}
	defer conn.Close()

	con.Header("Replaying dead letters")
	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	replayed, err := event.Replay(ctx, event.NewNATSBridge(conn, cfg.NATSSubject), entries)
	if flushErr := conn.FlushWithContext(ctx); flushErr != nil && err == nil {
		err = flushErr
	}
	con.Info("Replayed %d/%d events from %s", replayed, len(entries), path)
	if err != nil {
		return err
	}
	con.Success("Dead-letter file can be truncated")
	return nil
}
