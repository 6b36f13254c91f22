package bootstrap

import (
	"context"

	"github.com/osse101/Casino_Go/internal/blackjack"
	"github.com/osse101/Casino_Go/internal/clicker"
	"github.com/osse101/Casino_Go/internal/concurrency"
	"github.com/osse101/Casino_Go/internal/config"
	"github.com/osse101/Casino_Go/internal/engine"
	"github.com/osse101/Casino_Go/internal/minebomb"
	"github.com/osse101/Casino_Go/internal/rng"
	"github.com/osse101/Casino_Go/internal/roulette"
	"github.com/osse101/Casino_Go/internal/scheduler"
	"github.com/osse101/Casino_Go/internal/server"
	"github.com/osse101/Casino_Go/internal/settlement"
	"github.com/osse101/Casino_Go/internal/slots"
	"github.com/osse101/Casino_Go/internal/stats"
	"github.com/osse101/Casino_Go/internal/user"
	"github.com/osse101/Casino_Go/internal/worker"
)

// App is the fully wired process: storage, events, services, HTTP server and
// background jobs
type App struct {
	Server *server.Server

	repos     *Repositories
	events    *EventSystem
	pool      *worker.Pool
	scheduler *scheduler.Scheduler
}

// NewApp wires every component from cfg. Nothing is started yet.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	repos, err := InitializeRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	events, err := InitializeEventSystem(cfg)
	if err != nil {
		repos.Close()
		return nil, err
	}
	RegisterEventHandlers(events.Bus, repos.Store)

	statsSvc := stats.NewService(repos.Store)
	settle := settlement.NewService(repos.Store, statsSvc, events.Bus)
	locks := concurrency.NewLockManager()
	src := rng.New(cfg.RNGSeed)

	eng := engine.New(engine.Games{
		Blackjack: blackjack.NewService(settle, repos.Sessions, src, locks),
		Minebomb:  minebomb.NewService(settle, repos.Sessions, src, locks),
		Roulette:  roulette.NewService(settle, src),
		Slots:     slots.NewService(settle, src),
	}, statsSvc)

	srv := server.NewServer(server.Options{
		Port:               cfg.Port,
		Version:            cfg.Version,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		MaxBodyBytes:       server.DefaultMaxBodyBytes,
	}, server.Services{
		Store:   repos.Store,
		Users:   user.NewService(repos.Store, events.Bus, user.DefaultCacheConfig()),
		Engine:  eng,
		Clicker: clicker.NewService(repos.Store, events.Bus),
		Stats:   statsSvc,
	})

	pool := worker.NewPool(JobWorkers, JobQueueSize)
	sched := scheduler.New(pool)
	if err := ScheduleJobs(sched, cfg, statsSvc, repos.Sessions); err != nil {
		events.Shutdown(ctx)
		repos.Close()
		return nil, err
	}

	return &App{
		Server:    srv,
		repos:     repos,
		events:    events,
		pool:      pool,
		scheduler: sched,
	}, nil
}

// StartBackground starts the job workers and the cron scheduler
func (a *App) StartBackground() {
	a.pool.Start()
	a.scheduler.Start()
}

// Shutdown stops the app in dependency order
func (a *App) Shutdown(ctx context.Context) {
	GracefulShutdown(ctx, ShutdownComponents{
		Server:    a.Server,
		Scheduler: a.scheduler,
		Pool:      a.pool,
		Events:    a.events,
		Repos:     a.repos,
	})
}
