package worker

import (
	"context"
	"fmt"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/metrics"
)

// Snapshotter computes the aggregate stats the refresh job publishes
type Snapshotter interface {
	GlobalSnapshot(ctx context.Context) (*domain.StatsSnapshot, error)
}

// Purger removes expired sessions and reports how many went
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// StatsRefreshJob recomputes the global snapshot and copies it into the stats gauges
type StatsRefreshJob struct {
	stats Snapshotter
}

// NewStatsRefreshJob creates the gauge refresh job
func NewStatsRefreshJob(stats Snapshotter) *StatsRefreshJob {
	return &StatsRefreshJob{stats: stats}
}

func (j *StatsRefreshJob) Name() string { return JobNameStatsRefresh }

func (j *StatsRefreshJob) Process(ctx context.Context) error {
	snap, err := j.stats.GlobalSnapshot(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextStatsRefresh, err)
	}
	metrics.RecordSnapshot(snap)
	logger.FromContext(ctx).Debug(LogMsgStatsRefreshed, "total_games", snap.TotalGames)
	return nil
}

// SessionPurgeJob deletes expired sessions from a durable session store
type SessionPurgeJob struct {
	purger Purger
}

// NewSessionPurgeJob creates the session purge job
func NewSessionPurgeJob(purger Purger) *SessionPurgeJob {
	return &SessionPurgeJob{purger: purger}
}

func (j *SessionPurgeJob) Name() string { return JobNameSessionPurge }

func (j *SessionPurgeJob) Process(ctx context.Context) error {
	n, err := j.purger.PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrContextSessionPurge, err)
	}
	if n > 0 {
		metrics.SessionsPurged.Add(float64(n))
		logger.FromContext(ctx).Info(LogMsgSessionsPurged, "count", n)
	}
	return nil
}
