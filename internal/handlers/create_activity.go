package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/middlewares"
	"github.com/actrac/actrac-server/internal/models"
	"github.com/actrac/actrac-server/internal/services"
)

// ActivityAdder defines the interface that the activity service must
// implement for creating activities.
type ActivityAdder interface {
	Add(ctx context.Context, userID int64, fields models.ActivityFields) (*models.ActivityDB, error)
}

// ActivityRequest represents the JSON body for creating or updating an activity
// swagger:model ActivityRequest
type ActivityRequest struct {
	// Activity name
	// required: true
	// example: Morning run
	Name string `json:"name"`

	// Points value, a whole number from 1 to 1000
	// required: true
	// example: 30
	Points float64 `json:"points"`

	// Calendar date, defaults to today
	// example: 2025-01-15
	Date string `json:"date"`

	// Optional host
	// example: City gym
	Host string `json:"host"`

	// Optional description
	// example: 5km along the river
	Description string `json:"description"`
}

// ActivityErrorResponse represents an error response for activity operations
// swagger:model ActivityErrorResponse
type ActivityErrorResponse struct {
	// Error message
	// example: Valid activity name is required
	Error string `json:"error"`
}

// fields converts the request body to ledger fields. Points arrives as
// a JSON number; fractional values and values outside the int32 range
// are rejected here since they can never pass the points constraint.
func (req ActivityRequest) fields() (models.ActivityFields, error) {
	if req.Points != math.Trunc(req.Points) || req.Points < math.MinInt32 || req.Points > math.MaxInt32 {
		return models.ActivityFields{}, services.ErrInvalidActivityPoints
	}
	return models.ActivityFields{
		Name:        req.Name,
		Points:      int(req.Points),
		Date:        req.Date,
		Host:        req.Host,
		Description: req.Description,
	}, nil
}

// writeValidationError maps the ledger's validation errors to 400
// responses. Returns false when err is not a validation error.
func writeValidationError(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, services.ErrInvalidActivityName):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ActivityErrorResponse{
			Error: "Valid activity name is required",
		})
	case errors.Is(err, services.ErrInvalidActivityPoints):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ActivityErrorResponse{
			Error: "Points must be a number between 1 and 1000",
		})
	case errors.Is(err, services.ErrInvalidActivityDate):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ActivityErrorResponse{
			Error: "Date must be in YYYY-MM-DD format",
		})
	default:
		return false
	}
	return true
}

// NewCreateActivityHandler returns an HTTP handler for adding an activity.
// @Summary Add an activity
// @Description Validates the fields and stores a new activity for the authenticated user. Date defaults to today when omitted.
// @Tags activities
// @Accept json
// @Produce json
// @Param activityRequest body handlers.ActivityRequest true "Activity fields"
// @Success 201 {object} models.ActivityDB "Stored activity"
// @Failure 400 {object} handlers.ActivityErrorResponse "Validation error"
// @Failure 401 {object} handlers.ActivityErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.ActivityErrorResponse "Internal server error"
// @Router /activities [post]
// @Security UserID
func NewCreateActivityHandler(svc ActivityAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user := middlewares.GetUserFromContext(r.Context())
		if user == nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(ActivityErrorResponse{Error: "Invalid user"})
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

		activity, err := svc.Add(r.Context(), user.ID, fields)
		if err != nil {
			if writeValidationError(w, err) {
				return
			}
			logger.Log.Errorw("failed to add activity", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ActivityErrorResponse{
				Error: "Failed to add activity",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(activity)
	}
}
