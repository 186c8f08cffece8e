package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/middlewares"
	"github.com/actrac/actrac-server/internal/models"
)

// StatsGetter defines the interface that the stats service must
// implement for the full statistics summary.
type StatsGetter interface {
	Stats(ctx context.Context, userID int64) (*models.StatsSummary, error)
}

// StatsErrorResponse represents an error response for the stats endpoint
// swagger:model StatsErrorResponse
type StatsErrorResponse struct {
	// Error message
	// example: Failed to retrieve statistics
	Error string `json:"error"`
}

// NewStatsHandler returns an HTTP handler for the user's activity statistics.
// @Summary Get activity statistics
// @Description Returns count, total, average, max and min points over the authenticated user's activities, plus remaining points to the goal.
// @Tags stats
// @Produce json
// @Success 200 {object} models.StatsSummary "Activity statistics"
// @Failure 401 {object} handlers.StatsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.StatsErrorResponse "Internal server error"
// @Router /stats [get]
// @Security UserID
func NewStatsHandler(svc StatsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(StatsErrorResponse{Error: "Invalid user"})
			return
		}

		stats, err := svc.Stats(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to retrieve statistics", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(StatsErrorResponse{
				Error: "Failed to retrieve statistics",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}
