package postgres

// SQLSTATE codes
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

// Error contexts
const (
	ErrContextBeginTx       = "failed to begin transaction"
	ErrContextCommit        = "failed to commit transaction"
	ErrContextInsertUser    = "failed to insert user"
	ErrContextInsertClicker = "failed to insert clicker data"
	ErrContextGetUser       = "failed to get user"
	ErrContextDebit         = "failed to debit balance"
	ErrContextCredit        = "failed to credit balance"
	ErrContextInsertHistory = "failed to insert game history"
	ErrContextQueryHistory  = "failed to query game history"
	ErrContextGetClicker    = "failed to get clicker data"
	ErrContextUpdateClicker = "failed to update clicker data"
	ErrContextCounter       = "failed to update counter"
	ErrContextAchievements  = "failed to list achievements"
	ErrContextLoadSession   = "failed to load session"
	ErrContextSaveSession   = "failed to save session"
	ErrContextClearSession  = "failed to clear session"
	ErrContextPurgeSessions = "failed to purge expired sessions"
)

// Log messages
const (
	LogMsgSessionsPurged = "Expired game sessions purged"
)
