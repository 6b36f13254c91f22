package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Wager errors
	ErrMsgInvalidBet        = "invalid bet"
	ErrMsgInvalidParameters = "invalid parameters"
	ErrMsgNoActiveSession   = "no active session"

	// Account errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgInvalidAmount     = "invalid amount"
	ErrMsgUserNotFound      = "user not found"
	ErrMsgUsernameTaken     = "username already taken"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
	ErrMsgTxClosed      = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Wager errors
	ErrInvalidBet        = errors.New(ErrMsgInvalidBet)
	ErrInvalidParameters = errors.New(ErrMsgInvalidParameters)
	ErrNoActiveSession   = errors.New(ErrMsgNoActiveSession)

	// Account errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrInvalidAmount     = errors.New(ErrMsgInvalidAmount)
	ErrUserNotFound      = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken     = errors.New(ErrMsgUsernameTaken)

	// Database errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
	ErrTxClosed      = errors.New(ErrMsgTxClosed)
)

// Machine-checkable error kinds reported to callers
const (
	KindInvalidBet        = "InvalidBet"
	KindInvalidParameters = "InvalidParameters"
	KindNoActiveSession   = "NoActiveSession"
	KindInsufficientFunds = "InsufficientFunds"
	KindInvalidAmount     = "InvalidAmount"
	KindUserNotFound      = "UserNotFound"
	KindUsernameTaken     = "UsernameTaken"
	KindInternal          = "Internal"
)

// ErrorKind classifies err into one of the Kind* constants.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidBet):
		return KindInvalidBet
	case errors.Is(err, ErrInvalidParameters):
		return KindInvalidParameters
	case errors.Is(err, ErrNoActiveSession):
		return KindNoActiveSession
	case errors.Is(err, ErrInsufficientFunds):
		return KindInsufficientFunds
	case errors.Is(err, ErrInvalidAmount):
		return KindInvalidAmount
	case errors.Is(err, ErrUserNotFound):
		return KindUserNotFound
	case errors.Is(err, ErrUsernameTaken):
		return KindUsernameTaken
	default:
		return KindInternal
	}
}
