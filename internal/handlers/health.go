package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the health check response
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// example: OK
	Status string `json:"status"`

	// Current server time, RFC 3339
	// example: 2025-01-15T10:00:00Z
	Timestamp string `json:"timestamp"`
}

// NewHealthHandler returns an HTTP handler for the health check.
// @Summary Health check
// @Description Reports service liveness.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service is up"
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:    "OK",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
