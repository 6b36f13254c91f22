package handler

import (
	"net/http"

	"github.com/osse101/Casino_Go/internal/domain"
	"github.com/osse101/Casino_Go/internal/engine"
	"github.com/osse101/Casino_Go/internal/logger"
)

// GameHandler serves the wager games through the engine facade
type GameHandler struct {
	engine engine.Engine
}

// NewGameHandler creates a new game handler
func NewGameHandler(e engine.Engine) *GameHandler {
	return &GameHandler{engine: e}
}

func (h *GameHandler) start(w http.ResponseWriter, r *http.Request, game domain.GameType, p engine.Params) {
	res, err := h.engine.StartGame(r.Context(), game, p)
	if err != nil {
		respondServiceError(w, r, OpStartGame, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgGameStarted, "game", game, "user_id", p.UserID, "bet", p.Bet)
	respondJSON(w, http.StatusOK, res)
}

func (h *GameHandler) act(w http.ResponseWriter, r *http.Request, game domain.GameType, action string, p engine.Params) {
	res, err := h.engine.ApplyAction(r.Context(), game, action, p)
	if err != nil {
		respondServiceError(w, r, OpApplyAction, err)
		return
	}

	logger.FromContext(r.Context()).Debug(LogMsgActionApplied, "game", game, "action", action, "user_id", p.UserID)
	respondJSON(w, http.StatusOK, res)
}

// HandleBlackjackStart deals a new blackjack hand
// @Summary Start blackjack
// @Description Debits the bet and deals two cards to the player and dealer
// @Tags games
// @Accept json
// @Produce json
// @Param request body WagerRequest true "Wager"
// @Success 200 {object} engine.StartResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /games/blackjack/start [post]
func (h *GameHandler) HandleBlackjackStart(w http.ResponseWriter, r *http.Request) {
	var req WagerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Blackjack start"); err != nil {
		return
	}
	h.start(w, r, domain.GameBlackjack, engine.Params{UserID: req.UserID, Bet: req.Bet})
}

// HandleBlackjackHit draws one card for the player
// @Summary Blackjack hit
// @Tags games
// @Accept json
// @Produce json
// @Param request body UserRequest true "Player"
// @Success 200 {object} engine.ActionResult
// @Failure 409 {object} ErrorResponse
// @Router /games/blackjack/hit [post]
func (h *GameHandler) HandleBlackjackHit(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Blackjack hit"); err != nil {
		return
	}
	h.act(w, r, domain.GameBlackjack, engine.ActionHit, engine.Params{UserID: req.UserID})
}

// HandleBlackjackStand plays out the dealer and settles the hand
// @Summary Blackjack stand
// @Tags games
// @Accept json
// @Produce json
// @Param request body UserRequest true "Player"
// @Success 200 {object} engine.ActionResult
// @Failure 409 {object} ErrorResponse
// @Router /games/blackjack/stand [post]
func (h *GameHandler) HandleBlackjackStand(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Blackjack stand"); err != nil {
		return
	}
	h.act(w, r, domain.GameBlackjack, engine.ActionStand, engine.Params{UserID: req.UserID})
}

// HandleRouletteSpin spins the wheel and settles immediately
// @Summary Spin roulette
// @Description Color mode pays 2x, number mode pays 35x
// @Tags games
// @Accept json
// @Produce json
// @Param request body RouletteSpinRequest true "Wager"
// @Success 200 {object} engine.StartResult
// @Failure 400 {object} ErrorResponse
// @Router /games/roulette/spin [post]
func (h *GameHandler) HandleRouletteSpin(w http.ResponseWriter, r *http.Request) {
	var req RouletteSpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Roulette spin"); err != nil {
		return
	}
	h.start(w, r, domain.GameRoulette, engine.Params{
		UserID: req.UserID,
		Bet:    req.Bet,
		Mode:   req.Mode,
		Choice: string(req.Choice),
	})
}

// HandleMinebombStart opens a 5x5 board with the requested bomb count
// @Summary Start minebomb
// @Tags games
// @Accept json
// @Produce json
// @Param request body MinebombStartRequest true "Wager"
// @Success 200 {object} engine.StartResult
// @Failure 400 {object} ErrorResponse
// @Router /games/minebomb/start [post]
func (h *GameHandler) HandleMinebombStart(w http.ResponseWriter, r *http.Request) {
	var req MinebombStartRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Minebomb start"); err != nil {
		return
	}
	h.start(w, r, domain.GameMinebomb, engine.Params{UserID: req.UserID, Bet: req.Bet, Bombs: req.Bombs})
}

// HandleMinebombReveal reveals one cell
// @Summary Minebomb reveal
// @Tags games
// @Accept json
// @Produce json
// @Param request body MinebombRevealRequest true "Cell"
// @Success 200 {object} engine.ActionResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /games/minebomb/reveal [post]
func (h *GameHandler) HandleMinebombReveal(w http.ResponseWriter, r *http.Request) {
	var req MinebombRevealRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Minebomb reveal"); err != nil {
		return
	}
	h.act(w, r, domain.GameMinebomb, engine.ActionReveal, engine.Params{UserID: req.UserID, Index: *req.Index})
}

// HandleMinebombCashout settles the board at the current multiplier
// @Summary Minebomb cashout
// @Tags games
// @Accept json
// @Produce json
// @Param request body UserRequest true "Player"
// @Success 200 {object} engine.ActionResult
// @Failure 409 {object} ErrorResponse
// @Router /games/minebomb/cashout [post]
func (h *GameHandler) HandleMinebombCashout(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Minebomb cashout"); err != nil {
		return
	}
	h.act(w, r, domain.GameMinebomb, engine.ActionCashout, engine.Params{UserID: req.UserID})
}

// HandleSlotsSpin spins three reels and settles immediately
// @Summary Spin slots
// @Tags games
// @Accept json
// @Produce json
// @Param request body WagerRequest true "Wager"
// @Success 200 {object} engine.StartResult
// @Failure 400 {object} ErrorResponse
// @Router /games/slots/spin [post]
func (h *GameHandler) HandleSlotsSpin(w http.ResponseWriter, r *http.Request) {
	var req WagerRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Slots spin"); err != nil {
		return
	}
	h.start(w, r, domain.GameSlots, engine.Params{UserID: req.UserID, Bet: req.Bet})
}
