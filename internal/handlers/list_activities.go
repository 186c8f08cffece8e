package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/middlewares"
	"github.com/actrac/actrac-server/internal/models"
)

// ActivityLister defines the interface that the activity service must
// implement for listing activities.
type ActivityLister interface {
	List(ctx context.Context, userID int64) ([]models.ActivityDB, error)
}

// NewListActivitiesHandler returns an HTTP handler for listing the
// authenticated user's activities, newest first.
// @Summary List activities
// @Description Returns all activities owned by the authenticated user, ordered by creation time descending.
// @Tags activities
// @Produce json
// @Success 200 {array} models.ActivityDB "Activities"
// @Failure 401 {object} handlers.ActivityErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ActivityErrorResponse "Internal server error"
// @Router /activities [get]
// @Security UserID
func NewListActivitiesHandler(svc ActivityLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ActivityErrorResponse{Error: "Invalid user"})
			return
		}

		activities, err := svc.List(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to list activities", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ActivityErrorResponse{
				Error: "Failed to retrieve activities",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(activities)
	}
}
