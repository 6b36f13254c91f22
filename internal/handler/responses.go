package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
)

// ErrorResponse represents an error response. Kind is one of the domain.Kind* values.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode before writing headers so a bad payload still yields a well-formed 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and renders its kind, status and user message
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	kind := domain.ErrorKind(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op, "error", err)
	} else {
		log.Warn(op, "error", err, "kind", kind)
	}

	respondJSON(w, status, ErrorResponse{Error: msg, Kind: kind})
}

// User-facing messages for service errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgInvalidBetError      = "Invalid bet. Bets must be a whole number of at least 10"
	ErrMsgInvalidParamsError   = "Invalid game parameters"
	ErrMsgNoActiveSessionError = "No game in progress. Start a new one"
	ErrMsgNotEnoughMoneyError  = "Not enough money"
	ErrMsgInvalidAmountError   = "Invalid amount"
	ErrMsgUserNotFoundError    = "User not found"
	ErrMsgUsernameTakenError   = "Username already taken"
	ErrMsgTooManyRequestsError = "Too many requests. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages
// users can act on. Anything outside the taxonomy is an internal error and its text
// is never exposed.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidBet):
		return http.StatusBadRequest, ErrMsgInvalidBetError
	case errors.Is(err, domain.ErrInvalidParameters):
		return http.StatusBadRequest, ErrMsgInvalidParamsError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughMoneyError
	case errors.Is(err, domain.ErrNoActiveSession):
		return http.StatusConflict, ErrMsgNoActiveSessionError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// HandleTooManyRequests renders the rate limiter's rejection in the API error shape
func HandleTooManyRequests(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Warn("Rate limit exceeded", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	respondError(w, http.StatusTooManyRequests, ErrMsgTooManyRequestsError)
}

// HandleNotFound renders unknown routes in the API error shape
func HandleNotFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, http.StatusNotFound, ErrMsgRouteNotFound)
}

// HandleMethodNotAllowed renders a known route hit with the wrong verb
func HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromContext(r.Context()).Debug(ErrMsgMethodNotAllowed, "method", r.Method, "path", r.URL.Path)
	respondError(w, http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed)
}
