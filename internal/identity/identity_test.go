package identity

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/config"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/models"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/repositories"
)

type fakeUserRepo struct {
	users map[int]*models.User
	err   error
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	return errors.New("not implemented")
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}
}

func TestHeaderResolver(t *testing.T) {
	repo := &fakeUserRepo{users: map[int]*models.User{
		1: {ID: 1, Username: "johndoe", Name: "John Doe"},
	}}
	resolver := NewHeaderResolver(repo)

	tests := []struct {
		name    string
		header  string
		wantErr error
		wantID  int
	}{
		{name: "resolves known user", header: "1", wantID: 1},
		{name: "missing header", header: "", wantErr: ErrNoCredentials},
		{name: "non numeric header", header: "abc", wantErr: ErrMalformedCredentials},
		{name: "unknown user", header: "99", wantErr: ErrUnknownUser},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.header != "" {
				r.Header.Set(HeaderName, tt.header)
			}
			user, err := resolver.Resolve(r)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}

func TestTokenResolver_RoundTrip(t *testing.T) {
	user := &models.User{ID: 1, Username: "johndoe", Name: "John Doe"}
	repo := &fakeUserRepo{users: map[int]*models.User{1: user}}
	cfg := testJWTConfig()

	token, err := GenerateToken(user, cfg)
	require.NoError(t, err)

	resolver := NewTokenResolver(repo, cfg)
	r := httptest.NewRequest(http.MethodGet, "/notes", nil)
	r.Header.Set("Authorization", "Bearer "+token)

	resolved, err := resolver.Resolve(r)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestTokenResolver_Failures(t *testing.T) {
	repo := &fakeUserRepo{users: map[int]*models.User{}}
	cfg := testJWTConfig()
	resolver := NewTokenResolver(repo, cfg)

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/notes", nil)
		_, err := resolver.Resolve(r)
		assert.ErrorIs(t, err, ErrNoCredentials)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/notes", nil)
		r.Header.Set("Authorization", "Basic abc")
		_, err := resolver.Resolve(r)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("garbage token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/notes", nil)
		r.Header.Set("Authorization", "Bearer not.a.token")
		_, err := resolver.Resolve(r)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("token for deleted user", func(t *testing.T) {
		token, err := GenerateToken(&models.User{ID: 42, Username: "gone"}, cfg)
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/notes", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		_, err = resolver.Resolve(r)
		assert.ErrorIs(t, err, ErrUnknownUser)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		token, err := GenerateToken(&models.User{ID: 1}, &config.JWTConfig{Secret: "other", AccessTokenTTL: time.Hour})
		require.NoError(t, err)
		r := httptest.NewRequest(http.MethodGet, "/notes", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		_, err = resolver.Resolve(r)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestMiddleware_StatusMapping(t *testing.T) {
	repo := &fakeUserRepo{users: map[int]*models.User{
		1: {ID: 1, Username: "johndoe"},
	}}
	mw := Middleware(NewHeaderResolver(repo))
	var seen *models.User
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "resolved", header: "1", wantStatus: http.StatusOK},
		{name: "missing header is unauthorized", header: "", wantStatus: http.StatusUnauthorized},
		{name: "non numeric header is bad request", header: "abc", wantStatus: http.StatusBadRequest},
		{name: "unknown user is not found", header: "99", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seen = nil
			r := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.header != "" {
				r.Header.Set(HeaderName, tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				require.NotNil(t, seen)
				assert.Equal(t, 1, seen.ID)
			}
		})
	}
}

func TestMiddleware_ResolverError(t *testing.T) {
	repo := &fakeUserRepo{err: errors.New("db down")}
	mw := Middleware(NewHeaderResolver(repo))
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	}))

	r := httptest.NewRequest(http.MethodGet, "/notes", nil)
	r.Header.Set(HeaderName, "1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
