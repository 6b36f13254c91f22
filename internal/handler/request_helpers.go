package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body, validates it, and returns appropriate errors.
// It logs the operation and returns a standardized error response to the client.
//
// Parameters:
//   - r: The HTTP request containing the JSON body
//   - w: The HTTP response writer to send error responses
//   - req: Pointer to the request struct to decode into (must implement validation tags)
//   - actionName: Human-readable name for the action (e.g., "Blackjack start", "Clicker upgrade")
//
// Returns:
//   - error: nil if successful, error if decoding or validation failed
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req StartBlackjackRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Blackjack start"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	// Decode JSON body
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: ErrMsgInvalidRequest,
			Kind:  domain.KindInvalidParameters,
		})
		return err
	}

	// Log the decoded request at debug level
	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	// Validate the request struct
	if err := GetValidator().ValidateStruct(req); err != nil {
		log.Warn(fmt.Sprintf("Invalid %s request", actionName), "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Kind:   validationKind(err),
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Kind   string            `json:"kind"`
	Fields map[string]string `json:"fields"`
}

// GetQueryParam retrieves and validates a required query parameter from the request.
// If the parameter is missing or empty, it writes an error response and returns false.
//
// Parameters:
//   - r: The HTTP request to extract the query parameter from
//   - w: The HTTP response writer to send error responses
//   - paramName: The name of the query parameter to retrieve
//
// Returns:
//   - value: The parameter value if present
//   - ok: true if the parameter was found and non-empty, false otherwise
//
// If ok is false, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	userID, ok := GetQueryParam(r, w, "user_id")
//	if !ok {
//	    return
//	}
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	log := logger.FromContext(r.Context())
	value := r.URL.Query().Get(paramName)
	if value == "" {
		log.Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf(ErrMsgMissingQueryParam, paramName),
			Kind:  domain.KindInvalidParameters,
		})
		return "", false
	}
	return value, true
}

// GetPathParam retrieves a required chi URL parameter, writing a 400 when it is empty
func GetPathParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := chi.URLParam(r, paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s path parameter", paramName))
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error: fmt.Sprintf(ErrMsgMissingPathParam, paramName),
			Kind:  domain.KindInvalidParameters,
		})
		return "", false
	}
	return value, true
}
