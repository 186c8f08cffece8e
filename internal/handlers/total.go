package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/middlewares"
	"github.com/actrac/actrac-server/internal/models"
)

// TotalGetter defines the interface that the stats service must
// implement for the running total.
type TotalGetter interface {
	Total(ctx context.Context, userID int64) (*models.TotalSummary, error)
}

// TotalErrorResponse represents an error response for the total endpoint
// swagger:model TotalErrorResponse
type TotalErrorResponse struct {
	// Error message
	// example: Failed to calculate total
	Error string `json:"error"`
}

// NewTotalHandler returns an HTTP handler for the user's points total.
// @Summary Get points total
// @Description Returns the sum of the authenticated user's activity points and the points remaining to the 100-point goal.
// @Tags stats
// @Produce json
// @Success 200 {object} models.TotalSummary "Total and remaining points"
// @Failure 401 {object} handlers.TotalErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.TotalErrorResponse "Internal server error"
// @Router /total [get]
// @Security UserID
func NewTotalHandler(svc TotalGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TotalErrorResponse{Error: "Invalid user"})
			return
		}

		total, err := svc.Total(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to calculate total", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TotalErrorResponse{
				Error: "Failed to calculate total",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(total)
	}
}
