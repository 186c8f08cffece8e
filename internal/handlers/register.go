package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/models"
	"github.com/actrac/actrac-server/internal/services"
)

// minPasswordLength is enforced at registration only; existing
// credentials are never re-validated.
const minPasswordLength = 6

// Registerer defines the interface that the registration service must implement.
type Registerer interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	// Success message
	// example: User registered successfully
	Message string `json:"message"`
}

// RegisterErrorResponse represents an error response for registration
// swagger:model RegisterErrorResponse
type RegisterErrorResponse struct {
	// Error message
	// example: User already exists. Please login instead.
	Error string `json:"error"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Ensures unique username and email. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.RegisterErrorResponse "Missing fields or password too short"
// @Failure 409 {object} handlers.RegisterErrorResponse "Username or email already exists"
// @Failure 500 {object} handlers.RegisterErrorResponse "Internal server error"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req RegisterRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.Username == "" || req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Username, email, and password are required",
			})
			return
		}

		if len(req.Password) < minPasswordLength {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(RegisterErrorResponse{
				Error: "Password must be at least 6 characters",
			})
			return
		}

		user, err := svc.Register(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "User already exists. Please login instead.",
				})
			default:
				logger.Log.Errorw("registration failed", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(RegisterErrorResponse{
					Error: "Registration failed",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(RegisterResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Message:  "User registered successfully",
		})
	}
}
