package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Game metric names
const (
	MetricNameGamesSettled    = "casino_games_settled_total"
	MetricNameAmountWagered   = "casino_amount_wagered_total"
	MetricNameAmountPaidOut   = "casino_amount_paid_out_total"
	MetricNameUsersRegistered = "casino_users_registered_total"
	MetricNameClickerUpgrades = "casino_clicker_upgrades_total"
	MetricNameClickerSpent    = "casino_clicker_spent_total"
)

// Stats gauge names
const (
	MetricNameStatsTotalGames    = "casino_stats_total_games"
	MetricNameStatsTotalWagered  = "casino_stats_total_wagered"
	MetricNameStatsTotalWinnings = "casino_stats_total_winnings"
	MetricNameStatsBiggestWin    = "casino_stats_biggest_win"
	MetricNameStatsGames         = "casino_stats_games"
	MetricNameSessionsPurged     = "casino_sessions_purged_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Game metric help text
const (
	HelpTextGamesSettled    = "Total number of settled games by game and result"
	HelpTextAmountWagered   = "Total amount wagered by game"
	HelpTextAmountPaidOut   = "Total amount paid out by game"
	HelpTextUsersRegistered = "Total number of registered users"
	HelpTextClickerUpgrades = "Total number of clicker upgrades by track"
	HelpTextClickerSpent    = "Total money spent on clicker upgrades"
)

// Stats gauge help text
const (
	HelpTextStatsTotalGames    = "Games in the ledger at the last stats refresh"
	HelpTextStatsTotalWagered  = "Amount wagered across the ledger at the last stats refresh"
	HelpTextStatsTotalWinnings = "Positive profit across the ledger at the last stats refresh"
	HelpTextStatsBiggestWin    = "Largest single profit in the ledger at the last stats refresh"
	HelpTextStatsGames         = "Games per game type at the last stats refresh"
	HelpTextSessionsPurged     = "Total number of expired game sessions purged"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelGame   = "game"
	LabelResult = "result"
	LabelTrack  = "track"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgUnexpectedPayload = "Event payload could not be decoded"
	LogMsgMetricsRecorded   = "Metrics recorded for event"
)

// unmatchedRoute labels requests that matched no chi route
const unmatchedRoute = "unmatched"
