package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/Casino_Go/internal/config"
	"github.com/osse101/Casino_Go/internal/repository"
	"github.com/osse101/Casino_Go/internal/scheduler"
	"github.com/osse101/Casino_Go/internal/worker"
)

// ScheduleJobs registers the periodic jobs. The stats gauge refresh always runs;
// the session purge only runs for stores that keep expired rows around.
func ScheduleJobs(sched *scheduler.Scheduler, cfg *config.Config, snapshots worker.Snapshotter, sessions repository.Sessions) error {
	if err := sched.Schedule(cfg.StatsRefreshCron, worker.NewStatsRefreshJob(snapshots)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
	}

	if purger, ok := sessions.(worker.Purger); ok {
		if err := sched.Schedule(cfg.SessionPurgeCron, worker.NewSessionPurgeJob(purger)); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedScheduleJob, err)
		}
	} else {
		slog.Info(LogMsgSessionPurgeSkipped)
	}

	slog.Info(LogMsgJobsScheduled,
		"stats_refresh", cfg.StatsRefreshCron,
		"session_purge", cfg.SessionPurgeCron)
	return nil
}
