package bootstrap

import (
	"log/slog"

	"github.com/osse101/Casino_Go/internal/event"
	"github.com/osse101/Casino_Go/internal/metrics"
	"github.com/osse101/Casino_Go/internal/repository"
	"github.com/osse101/Casino_Go/internal/stats"
)

// RegisterEventHandlers subscribes the in-process consumers:
// - Metrics collector (settlement and clicker counters, handler failures)
// - Stats handler (global counter table)
func RegisterEventHandlers(bus *event.MemoryBus, counters repository.Counters) {
	bus.OnHandlerError(metrics.RecordHandlerError)
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	stats.NewEventHandler(counters).Register(bus)
	slog.Info(LogMsgStatsHandlerRegistered)
}
