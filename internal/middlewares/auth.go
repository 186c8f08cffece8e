package middlewares

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/actrac/actrac-server/internal/logger"
	"github.com/actrac/actrac-server/internal/models"
)

// identityHeader carries the caller's claimed user id. The value is not
// signed; it is resolved against the user directory on every request.
// Preserving this trust-on-claim contract is deliberate.
const identityHeader = "user-id"

// UserGetter resolves a user id to its public projection.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// IdentityMiddleware resolves the identity header to a verified user
// and attaches it to the request context. Requests without a resolvable
// identity are rejected before any handler logic runs.
func IdentityMiddleware(users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(identityHeader)
			if raw == "" {
				writeUnauthorized(w, "User ID is required")
				return
			}

			id, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				writeUnauthorized(w, "Invalid user")
				return
			}

			user, err := users.GetByID(r.Context(), id)
			if err != nil || user == nil {
				logger.Log.Infow("identity resolution failed", "user_id", raw, "error", err)
				writeUnauthorized(w, "Invalid user")
				return
			}

			ctx := SetUserToContext(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// contextKey is an unexported type for keys in context
type contextKey struct{}

var userKey = contextKey{}

// SetUserToContext stores the resolved user in the context
func SetUserToContext(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext retrieves the resolved user from the context.
// Returns nil if not present.
func GetUserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}
