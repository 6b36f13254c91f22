package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/osse101/Casino_Go/internal/logger"
)

// readinessTimeout bounds all dependency probes of one /readyz call
const readinessTimeout = 2 * time.Second

const (
	healthStatusOK          = "ok"
	healthStatusUnavailable = "unavailable"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// Pinger is any backing store that can report connectivity. Both the Postgres
// store and the in-memory store satisfy it.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ReadinessCheck names one dependency probed by /readyz
type ReadinessCheck struct {
	Name   string
	Pinger Pinger
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the process is serving requests
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: healthStatusOK})
	}
}

// HandleReadyz probes every dependency and reports 503 if any of them fails
// @Summary Readiness check
// @Description Returns OK when every storage dependency answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(checks ...ReadinessCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		resp := HealthResponse{Status: healthStatusOK, Checks: make(map[string]string, len(checks))}
		for _, c := range checks {
			if err := c.Pinger.Ping(ctx); err != nil {
				logger.FromContext(ctx).Error("Readiness check failed", "dependency", c.Name, "error", err)
				resp.Checks[c.Name] = healthStatusUnavailable
				resp.Status = healthStatusUnavailable
				continue
			}
			resp.Checks[c.Name] = healthStatusOK
		}

		if resp.Status != healthStatusOK {
			resp.Message = "dependency check failed"
			respondJSON(w, http.StatusServiceUnavailable, resp)
			return
		}
		respondJSON(w, http.StatusOK, resp)
	}
}
