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
	"github.com/actrac/actrac-server/internal/models"
	"github.com/actrac/actrac-server/internal/services"
)

// ActivityUpdater defines the interface that the activity service must
// implement for updating activities.
type ActivityUpdater interface {
	Update(ctx context.Context, userID, activityID int64, fields models.ActivityFields) (*models.ActivityDB, error)
}

// NewUpdateActivityHandler returns an HTTP handler for editing an activity.
// All editable fields are replaced together; partial updates are not
// supported.
// @Summary Edit an activity
// @Description Replaces all editable fields of an activity owned by the authenticated user. A foreign-owned activity fails identically to a nonexistent one.
// @Tags activities
// @Accept json
// @Produce json
// @Param id path int true "Activity ID"
// @Param activityRequest body handlers.ActivityRequest true "Activity fields"
// @Success 200 {object} models.ActivityDB "Updated activity"
// @Failure 400 {object} handlers.ActivityErrorResponse "Validation error"
// @Failure 401 {object} handlers.ActivityErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ActivityErrorResponse "Activity not found or unauthorized"
// @Failure 500 {object} handlers.ActivityErrorResponse "Internal server error"
// @Router /activities/{id} [put]
// @Security UserID
func NewUpdateActivityHandler(svc ActivityUpdater) http.HandlerFunc {
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

		var req ActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ActivityErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		fields, err := req.fields()
		if err != nil {
			writeValidationError(w, err)
			return
		}

		activity, err := svc.Update(r.Context(), user.ID, activityID, fields)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			if errors.Is(err, services.ErrActivityNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ActivityErrorResponse{
					Error: "Activity not found or unauthorized",
				})
				return
			}
			logger.Log.Errorw("failed to update activity", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ActivityErrorResponse{
				Error: "Failed to update activity",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(activity)
	}
}
