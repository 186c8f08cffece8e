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

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, email, password string) (*models.User, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	User *models.User `json:"user"`

	// Success message
	// example: Login successful
	Message string `json:"message"`
}

// LoginErrorResponse represents an error response for login
// swagger:model LoginErrorResponse
type LoginErrorResponse struct {
	// Error message
	// example: Invalid email or password
	Error string `json:"error"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate a user by email and password. The response never includes the password hash.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login request"
// @Success 200 {object} handlers.LoginResponse "Authenticated user"
// @Failure 400 {object} handlers.LoginErrorResponse "Missing fields"
// @Failure 401 {object} handlers.LoginErrorResponse "Invalid email or password"
// @Failure 500 {object} handlers.LoginErrorResponse "Internal server error"
// @Router /login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		var req LoginRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		if req.Email == "" || req.Password == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(LoginErrorResponse{
				Error: "Email and password are required",
			})
			return
		}

		user, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidCredentials):
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Invalid email or password",
				})
			default:
				logger.Log.Errorw("login failed", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LoginErrorResponse{
					Error: "Login failed",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LoginResponse{
			User:    user,
			Message: "Login successful",
		})
	}
}
