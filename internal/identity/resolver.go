// Package identity resolves the acting user for a request. The resolution
// scheme is pluggable: note handlers only ever see the resolved User, so the
// weak client-id header scheme can be swapped for bearer tokens without
// touching them.
package identity

import (
	"context"
	"errors"
	"net/http"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/models"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/utils"
)

var (
	// ErrNoCredentials means the request carried no credentials at all.
	ErrNoCredentials = errors.New("missing credentials")
	// ErrInvalidCredentials means credentials were present but failed verification.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrMalformedCredentials means the credentials could not be parsed.
	ErrMalformedCredentials = errors.New("malformed credentials")
	// ErrUnknownUser means the credentials referenced a user that does not exist.
	ErrUnknownUser = errors.New("unknown user")
)

// Resolver derives the acting user from request credentials.
type Resolver interface {
	Resolve(r *http.Request) (*models.User, error)
}

type contextKey string

const userKey contextKey = "user"

// FromContext returns the user placed into the context by Middleware.
func FromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey).(*models.User)
	return user, ok
}

// Middleware resolves the request identity and injects it into the request
// context, converting resolution failures to the error taxonomy: 401 for
// missing or unverifiable credentials, 400 for malformed ones, 404 when the
// referenced user does not exist.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := resolver.Resolve(r)
			if err != nil {
				switch {
				case errors.Is(err, ErrNoCredentials):
					utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing credentials")
				case errors.Is(err, ErrInvalidCredentials):
					utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid credentials")
				case errors.Is(err, ErrMalformedCredentials):
					utils.WriteErrorResponse(w, http.StatusBadRequest, "Bad request", "Malformed credentials")
				case errors.Is(err, ErrUnknownUser):
					utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "User not found")
				default:
					utils.WriteErrorResponse(w, http.StatusInternalServerError, "Internal server error", "Failed to resolve identity")
				}
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
