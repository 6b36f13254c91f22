package handler

// Generic HTTP error messages for client responses.
// These never expose internal error details.
const (
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgRouteNotFound         = "Route not found"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingQueryParam     = "Missing %s query parameter"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
)

// Operation names used when logging failed service calls
const (
	OpRegisterUser     = "Failed to register user"
	OpGetUser          = "Failed to get user"
	OpStartGame        = "Failed to start game"
	OpApplyAction      = "Failed to apply game action"
	OpGetClicker       = "Failed to get clicker data"
	OpClick            = "Failed to process click"
	OpBuyUpgrade       = "Failed to buy clicker upgrade"
	OpCollectPassive   = "Failed to collect passive income"
	OpGlobalStats      = "Failed to get global stats"
	OpUserStats        = "Failed to get user stats"
	OpRecentHistory    = "Failed to get game history"
	OpListAchievements = "Failed to list achievements"
)

// Success log messages
const (
	LogMsgUserRegistered = "User registered"
	LogMsgGameStarted    = "Game started"
	LogMsgActionApplied  = "Game action applied"
	LogMsgUpgradeBought  = "Clicker upgrade bought"
)
