package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Casino_Go/internal/config"
	"github.com/osse101/Casino_Go/internal/database/memory"
	"github.com/osse101/Casino_Go/internal/repository"
	"github.com/osse101/Casino_Go/internal/scheduler"
	"github.com/osse101/Casino_Go/internal/session"
	"github.com/osse101/Casino_Go/internal/stats"
	"github.com/osse101/Casino_Go/internal/worker"
)

func memoryConfig() *config.Config {
	return &config.Config{
		Port:               8080,
		LogLevel:           "info",
		LogFormat:          "text",
		Environment:        "test",
		ServiceName:        "casino",
		StorageBackend:     config.BackendMemory,
		SessionBackend:     config.BackendMemory,
		SessionTTL:         time.Minute,
		SessionCacheSize:   100,
		StatsRefreshCron:   "@every 1m",
		SessionPurgeCron:   "@every 5m",
		CORSAllowedOrigins: []string{"*"},
		RateLimitPerMinute: 120,
		RNGSeed:            42,
	}
}

// purgingSessions is an LRU store that also advertises expired-row purging
type purgingSessions struct {
	*session.LRUStore
}

func (purgingSessions) PurgeExpired(context.Context) (int64, error) { return 0, nil }

func TestNewApp_MemoryBackends(t *testing.T) {
	cfg := memoryConfig()

	app, err := NewApp(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, app.Server)
	assert.Nil(t, app.events.publisher, "no NATS URL means no bridge")

	app.StartBackground()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	app.Shutdown(ctx)
}

func TestNewApp_InvalidCronFails(t *testing.T) {
	cfg := memoryConfig()
	cfg.StatsRefreshCron = "every now and then"

	app, err := NewApp(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, app)
	assert.Contains(t, err.Error(), ErrMsgFailedScheduleJob)
}

func TestScheduleJobs_PurgeOnlyForPurgingStores(t *testing.T) {
	store := memory.NewStore()
	statsSvc := stats.NewService(store)

	tests := []struct {
		name     string
		sessions repository.Sessions
		wantErr  bool
	}{
		// a bad purge spec only surfaces when the purge job is actually scheduled
		{"lru store skips purge", session.NewLRUStore(10, time.Minute), false},
		{"purging store schedules purge", purgingSessions{session.NewLRUStore(10, time.Minute)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := memoryConfig()
			cfg.SessionPurgeCron = "not a schedule"

			pool := worker.NewPool(1, 1)
			sched := scheduler.New(pool)

			err := ScheduleJobs(sched, cfg, statsSvc, tt.sessions)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), worker.JobNameSessionPurge)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, LogFileRetentionCount)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var logs []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), LogFileExtension) {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, fmt.Sprintf(LogFileNamePattern, "2026-01-01_00-00-00"))
	assert.Contains(t, logs, fmt.Sprintf(LogFileNamePattern, "2026-01-12_00-00-00"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("stdout only", func(t *testing.T) {
		closer, err := SetupLogger(memoryConfig())
		require.NoError(t, err)
		assert.Nil(t, closer)
	})

	t.Run("mirrors into log dir", func(t *testing.T) {
		cfg := memoryConfig()
		cfg.LogDir = filepath.Join(t.TempDir(), "logs")

		closer, err := SetupLogger(cfg)
		require.NoError(t, err)
		require.NotNil(t, closer)

		slog.Info("hello from test")
		require.NoError(t, closer.Close())

		matches, err := filepath.Glob(filepath.Join(cfg.LogDir, "*"+LogFileExtension))
		require.NoError(t, err)
		require.Len(t, matches, 1)

		data, err := os.ReadFile(matches[0])
		require.NoError(t, err)
		assert.Contains(t, string(data), "hello from test")
		assert.Contains(t, string(data), LogMsgStartingCasino)
	})
}
