package handler

import (
	"net/http"

	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/user"
)

// HandleRegisterUser creates a player with the starting balance
// @Summary Register user
// @Description Create a player account funded with the starting balance
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Username"
// @Success 201 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		u, err := svc.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, OpRegisterUser, err)
			return
		}

		logger.FromContext(r.Context()).Info(LogMsgUserRegistered, "user_id", u.ID, "username", u.Username)
		respondJSON(w, http.StatusCreated, u)
	}
}

// HandleGetUser returns a player and their live balance
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} domain.User
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{id} [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetPathParam(r, w, "id")
		if !ok {
			return
		}

		u, err := svc.GetUser(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, OpGetUser, err)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}
