package handler

import (
	"net/http"

	"github.com/osse101/Casino_Go/internal/stats"
)

// HandleGetGlobalStats returns the aggregate over every player's history
// @Summary Get global stats
// @Tags stats
// @Produce json
// @Success 200 {object} domain.StatsSnapshot
// @Failure 500 {object} ErrorResponse
// @Router /stats/global [get]
func HandleGetGlobalStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snap, err := svc.GlobalSnapshot(r.Context())
		if err != nil {
			respondServiceError(w, r, OpGlobalStats, err)
			return
		}
		respondJSON(w, http.StatusOK, snap)
	}
}

// HandleGetUserStats returns one player's aggregate with win rate and net profit
// @Summary Get user stats
// @Tags stats
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} domain.UserStats
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /stats/user [get]
func HandleGetUserStats(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		us, err := svc.UserSnapshot(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, OpUserStats, err)
			return
		}
		respondJSON(w, http.StatusOK, us)
	}
}

// HandleGetHistory returns the player's most recent games, newest first
// @Summary Get game history
// @Tags stats
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {array} domain.GameHistory
// @Failure 400 {object} ErrorResponse
// @Router /history [get]
func HandleGetHistory(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		hist, err := svc.RecentHistory(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, OpRecentHistory, err)
			return
		}
		respondJSON(w, http.StatusOK, hist)
	}
}

// HandleListAchievements returns the achievement catalog
// @Summary List achievements
// @Tags stats
// @Produce json
// @Success 200 {array} domain.Achievement
// @Router /achievements [get]
func HandleListAchievements(svc stats.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Achievements(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListAchievements, err)
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}
