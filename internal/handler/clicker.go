package handler

import (
	"net/http"

	"github.com/osse101/Casino_Go/internal/clicker"
	"github.com/osse101/Casino_Go/internal/logger"
)

// ClickerHandler serves the clicker economy
type ClickerHandler struct {
	service clicker.Service
}

// NewClickerHandler creates a new clicker handler
func NewClickerHandler(service clicker.Service) *ClickerHandler {
	return &ClickerHandler{service: service}
}

// HandleGetData returns the player's clicker progression
// @Summary Get clicker data
// @Tags clicker
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.ClickerState
// @Failure 404 {object} ErrorResponse
// @Router /clicker [get]
func (h *ClickerHandler) HandleGetData(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	state, err := h.service.GetData(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, OpGetClicker, err)
		return
	}
	respondJSON(w, http.StatusOK, state)
}

// HandleClick credits one click's worth of money
// @Summary Click
// @Tags clicker
// @Accept json
// @Produce json
// @Param request body UserRequest true "Player"
// @Success 200 {object} domain.ClickResult
// @Failure 404 {object} ErrorResponse
// @Router /clicker/click [post]
func (h *ClickerHandler) HandleClick(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Click"); err != nil {
		return
	}

	res, err := h.service.Click(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, OpClick, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}

// HandleUpgrade buys one level on an upgrade track
// @Summary Buy clicker upgrade
// @Tags clicker
// @Accept json
// @Produce json
// @Param request body ClickerUpgradeRequest true "Upgrade"
// @Success 200 {object} domain.UpgradeResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /clicker/upgrade [post]
func (h *ClickerHandler) HandleUpgrade(w http.ResponseWriter, r *http.Request) {
	var req ClickerUpgradeRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Clicker upgrade"); err != nil {
		return
	}

	res, err := h.service.BuyUpgrade(r.Context(), req.UserID, req.Track)
	if err != nil {
		respondServiceError(w, r, OpBuyUpgrade, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgUpgradeBought, "user_id", req.UserID, "track", req.Track, "cost", res.Cost)
	respondJSON(w, http.StatusOK, res)
}

// HandlePassive collects one passive income tick
// @Summary Collect passive income
// @Tags clicker
// @Accept json
// @Produce json
// @Param request body UserRequest true "Player"
// @Success 200 {object} domain.PassiveResult
// @Failure 404 {object} ErrorResponse
// @Router /clicker/passive [post]
func (h *ClickerHandler) HandlePassive(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Passive income"); err != nil {
		return
	}

	res, err := h.service.CollectPassive(r.Context(), req.UserID)
	if err != nil {
		respondServiceError(w, r, OpCollectPassive, err)
		return
	}
	respondJSON(w, http.StatusOK, res)
}
