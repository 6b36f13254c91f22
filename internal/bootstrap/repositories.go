package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/Casino_Go/internal/config"
	"github.com/osse101/Casino_Go/internal/database"
	"github.com/osse101/Casino_Go/internal/database/memory"
	"github.com/osse101/Casino_Go/internal/database/postgres"
	"github.com/osse101/Casino_Go/internal/repository"
	"github.com/osse101/Casino_Go/internal/session"
)

// Repositories holds the persistence the application runs on: the durable
// store for accounts, history and clicker data, and the transient session store.
type Repositories struct {
	Store    repository.Store
	Sessions repository.Sessions

	pool *pgxpool.Pool
}

// InitializeRepositories builds the repositories selected by STORAGE_BACKEND and
// SESSION_BACKEND. A Postgres pool is opened and migrated only when one of them needs it.
func InitializeRepositories(ctx context.Context, cfg *config.Config) (*Repositories, error) {
	repos := &Repositories{}

	if cfg.UsesPostgres() {
		pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnectDB, err)
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)
		repos.pool = pool
	}

	switch cfg.StorageBackend {
	case config.BackendPostgres:
		repos.Store = postgres.NewStore(repos.pool)
	default:
		repos.Store = memory.NewStore()
	}

	switch cfg.SessionBackend {
	case config.BackendPostgres:
		repos.Sessions = postgres.NewSessionStore(repos.pool, cfg.SessionTTL)
	default:
		repos.Sessions = session.NewLRUStore(cfg.SessionCacheSize, cfg.SessionTTL)
	}

	slog.Info(LogMsgStorageInitialized,
		"storage_backend", cfg.StorageBackend,
		"session_backend", cfg.SessionBackend,
		"session_ttl", cfg.SessionTTL)

	return repos, nil
}

// Close releases the database pool, if one was opened
func (r *Repositories) Close() {
	if r.pool != nil {
		r.pool.Close()
	}
}
