package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/config"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/dto"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", AccessTokenTTL: time.Hour}
}

func doRequest(t *testing.T, handler http.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	w := httptest.NewRecorder()
	handler(w, r)
	return w
}

func TestRegister_Success(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())

	w := doRequest(t, h.Register, http.MethodPost, "/register",
		`{"user":"johndoe","password":"secret123","name":"John Doe"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp dto.RegisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.ID)
	assert.NotEmpty(t, resp.Message)
}

func TestRegister_MissingFields(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())

	bodies := []string{
		`{}`,
		`{"user":"johndoe"}`,
		`{"user":"johndoe","password":"secret123"}`,
		`{"user":"  ","password":"secret123","name":"John Doe"}`,
	}
	for _, body := range bodies {
		w := doRequest(t, h.Register, http.MethodPost, "/register", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body: %s", body)
	}
}

func TestRegister_InvalidJSON(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())
	w := doRequest(t, h.Register, http.MethodPost, "/register", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRegister_DuplicateUser(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())
	body := `{"user":"johndoe","password":"secret123","name":"John Doe"}`

	first := doRequest(t, h.Register, http.MethodPost, "/register", body)
	require.Equal(t, http.StatusCreated, first.Code)

	second := doRequest(t, h.Register, http.MethodPost, "/register", body)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	h := NewAuthHandler(repo, testJWTConfig())

	created := doRequest(t, h.Register, http.MethodPost, "/register",
		`{"user":"johndoe","password":"secret123","name":"John Doe"}`)
	require.Equal(t, http.StatusCreated, created.Code)

	w := doRequest(t, h.Login, http.MethodPost, "/login",
		`{"user":"johndoe","password":"secret123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.UserID)
	assert.Equal(t, "John Doe", resp.Name)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	h := NewAuthHandler(repo, testJWTConfig())

	doRequest(t, h.Register, http.MethodPost, "/register",
		`{"user":"johndoe","password":"secret123","name":"John Doe"}`)

	w := doRequest(t, h.Login, http.MethodPost, "/login",
		`{"user":"johndoe","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_UnknownUser(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())
	w := doRequest(t, h.Login, http.MethodPost, "/login",
		`{"user":"ghost","password":"secret123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_MissingFields(t *testing.T) {
	h := NewAuthHandler(newFakeUserRepo(), testJWTConfig())
	w := doRequest(t, h.Login, http.MethodPost, "/login", `{"user":"johndoe"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
