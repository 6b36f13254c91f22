package main

import (
	"context"
	"fmt"

	"github.com/osse101/Casino_Go/internal/config"
	"github.com/osse101/Casino_Go/internal/database"
)

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Apply or inspect the embedded database migrations (up, status)"
}

func (c *MigrateCommand) Run(ctx context.Context, con *Console, args []string) error {
	if len(args) != 1 || (args[0] != "up" && args[0] != "status") {
		return fmt.Errorf("%w: migrate up|status", errUsage)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, dbTimeout)
	defer cancel()

	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	if args[0] == "status" {
		con.Header("Migration status")
		return database.MigrationStatus(ctx, pool)
	}

	con.Header("Applying migrations")
	if err := database.Migrate(ctx, pool); err != nil {
		return err
	}
	con.Success("Migrations applied to %s", cfg.DBName)
	return nil
}
