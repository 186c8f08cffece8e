package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/middlewares"
	"github.com/actrac/actrac-server/internal/services"
)

// ActivityDeleter defines the interface that the activity service must
// implement for deleting activities.
type ActivityDeleter interface {
	Delete(ctx context.Context, userID, activityID int64) error
}

// DeleteActivityResponse represents a successful deletion response
// swagger:model DeleteActivityResponse
type DeleteActivityResponse struct {
	// Success message
	// example: Activity deleted successfully
	Message string `json:"message"`
}

// NewDeleteActivityHandler returns an HTTP handler for deleting an activity.
// @Summary Delete an activity
// @Description Deletes an activity owned by the authenticated user. A foreign-owned activity fails identically to a nonexistent one.
// @Tags activities
// @Produce json
// @Param id path int true "Activity ID"
// @Success 200 {object} handlers.DeleteActivityResponse "Activity deleted"
// @Failure 400 {object} handlers.ActivityErrorResponse "Invalid activity id"
// @Failure 401 {object} handlers.ActivityErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ActivityErrorResponse "Activity not found or unauthorized"
// @Failure 500 {object} handlers.ActivityErrorResponse "Internal server error"
// @Router /activities/{id} [delete]
// @Security UserID
func NewDeleteActivityHandler(svc ActivityDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ActivityErrorResponse{Error: "Invalid user"})
			return
		}

		activityID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ActivityErrorResponse{
				Error: "Valid activity ID is required",
			})
			return
		}

		if err := svc.Delete(r.Context(), user.ID, activityID); err != nil {
			if errors.Is(err, services.ErrActivityNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ActivityErrorResponse{
					Error: "Activity not found or unauthorized",
				})
				return
			}
			logger.Log.Errorw("failed to delete activity", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ActivityErrorResponse{
				Error: "Failed to delete activity",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteActivityResponse{
			Message: "Activity deleted successfully",
		})
	}
}
