package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/osse101/Casino_Go/internal/domain"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Game Metrics
var (
	GamesSettled = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesSettled,
			Help: HelpTextGamesSettled,
		},
		[]string{LabelGame, LabelResult},
	)

	AmountWagered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAmountWagered,
			Help: HelpTextAmountWagered,
		},
		[]string{LabelGame},
	)

	AmountPaidOut = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAmountPaidOut,
			Help: HelpTextAmountPaidOut,
		},
		[]string{LabelGame},
	)

	UsersRegistered = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersRegistered,
			Help: HelpTextUsersRegistered,
		},
	)

	ClickerUpgrades = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameClickerUpgrades,
			Help: HelpTextClickerUpgrades,
		},
		[]string{LabelTrack},
	)

	ClickerSpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameClickerSpent,
			Help: HelpTextClickerSpent,
		},
	)
)

// Stats Gauges, refreshed by the scheduler
var (
	StatsTotalGames = promauto.NewGauge(prometheus.GaugeOpts{
		Name: MetricNameStatsTotalGames,
		Help: HelpTextStatsTotalGames,
	})

	StatsTotalWagered = promauto.NewGauge(prometheus.GaugeOpts{
		Name: MetricNameStatsTotalWagered,
		Help: HelpTextStatsTotalWagered,
	})

	StatsTotalWinnings = promauto.NewGauge(prometheus.GaugeOpts{
		Name: MetricNameStatsTotalWinnings,
		Help: HelpTextStatsTotalWinnings,
	})

	StatsBiggestWin = promauto.NewGauge(prometheus.GaugeOpts{
		Name: MetricNameStatsBiggestWin,
		Help: HelpTextStatsBiggestWin,
	})

	StatsGames = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: MetricNameStatsGames,
		Help: HelpTextStatsGames,
	}, []string{LabelGame})

	SessionsPurged = promauto.NewCounter(prometheus.CounterOpts{
		Name: MetricNameSessionsPurged,
		Help: HelpTextSessionsPurged,
	})
)

// RecordSnapshot publishes a global stats snapshot to the stats gauges
func RecordSnapshot(s *domain.StatsSnapshot) {
	if s == nil {
		return
	}
	StatsTotalGames.Set(float64(s.TotalGames))
	StatsTotalWagered.Set(float64(s.TotalWagered))
	StatsTotalWinnings.Set(float64(s.TotalWinnings))
	StatsBiggestWin.Set(float64(s.BiggestWin))
	for game, breakdown := range s.ByGame {
		StatsGames.WithLabelValues(string(game)).Set(float64(breakdown.Games))
	}
}
