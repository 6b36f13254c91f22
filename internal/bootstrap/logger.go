package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/Casino_Go/internal/config"
	"github.com/osse101/Casino_Go/internal/logger"
)

// SetupLogger installs the process logger. Output always goes to stdout; when
// LOG_DIR is set it is mirrored into a timestamped file there, and older files
// beyond the retention count are removed.
// The returned closer is nil when no file was opened.
func SetupLogger(cfg *config.Config) (io.Closer, error) {
	logCfg := logger.ForEnvironment(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, cfg.Version, cfg.Environment)

	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, time.Now().Format(LogFileTimestampFormat)))
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	logger.InitLoggerWithWriter(logCfg, w)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "format", cfg.LogFormat, "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingCasino,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage_backend", cfg.StorageBackend,
		"session_backend", cfg.SessionBackend)
	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"nats_enabled", cfg.NATSURL != "")

	if logFile == nil {
		return nil, nil
	}
	return logFile, nil
}

// cleanupLogs removes the oldest log files so that at most keep remain.
// File names embed a sortable timestamp, so lexical order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			names = append(names, entry.Name())
		}
	}
	if len(names) <= keep {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-keep] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", name, "error", err)
		}
	}
}
