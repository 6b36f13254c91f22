package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/Casino_Go/internal/scheduler"
	"github.com/osse101/Casino_Go/internal/server"
	"github.com/osse101/Casino_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Pool      *worker.Pool
	Events    *EventSystem
	Repos     *Repositories
}

// GracefulShutdown stops components in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and job workers (no new ticks, in-flight jobs cancelled)
// 3. Event publisher (flush pending retries)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgShuttingDownJobs)
	if c.Scheduler != nil {
		if err := c.Scheduler.Stop(ctx); err != nil {
			slog.Error(LogMsgSchedulerStopFailed, "error", err)
		}
	}
	if c.Pool != nil {
		c.Pool.Stop()
	}

	if c.Events != nil {
		c.Events.Shutdown(ctx)
	}

	if c.Repos != nil {
		c.Repos.Close()
	}

	slog.Info(LogMsgServerStopped)
}
