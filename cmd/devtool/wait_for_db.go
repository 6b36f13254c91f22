package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Casino_Go/internal/config"
	"github.com/osse101/Casino_Go/internal/database"
)

const (
	waitMaxRetries    = 30
	waitRetryInterval = 2 * time.Second
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Block until the configured Postgres accepts connections"
}

func (c *WaitForDBCommand) Run(ctx context.Context, con *Console, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	con.Header("Waiting for database")
	ticker := time.NewTicker(waitRetryInterval)
	defer ticker.Stop()

	for attempt := 1; attempt <= waitMaxRetries; attempt++ {
		// NewPool pings before returning
		pool, err := database.NewPool(cfg.GetDBConnString(), 1, time.Minute, time.Minute)
		if err == nil {
			pool.Close()
			con.Success("Database is ready")
			return nil
		}
		con.Info("Database not ready (%d/%d): %v", attempt, waitMaxRetries, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return fmt.Errorf("database failed to become ready after %d attempts", waitMaxRetries)
}
