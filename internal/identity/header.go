package identity

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/models"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/repositories"
)

// HeaderName is the header carrying the raw numeric user id.
const HeaderName = "client-id"

// HeaderResolver implements the client-id scheme: the caller proves identity
// by sending its numeric user id in a header. Weak on purpose; it exists to
// keep compatibility with clients of the original service.
type HeaderResolver struct {
	users repositories.UserRepository
}

func NewHeaderResolver(users repositories.UserRepository) *HeaderResolver {
	return &HeaderResolver{users: users}
}

func (hr *HeaderResolver) Resolve(r *http.Request) (*models.User, error) {
	raw := r.Header.Get(HeaderName)
	if raw == "" {
		return nil, ErrNoCredentials
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, ErrMalformedCredentials
	}

	user, err := hr.users.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrUnknownUser
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
