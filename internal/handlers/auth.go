package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/config"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/dto"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/identity"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/models"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/repositories"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/utils"
)

// AuthHandler handles registration and login requests
type AuthHandler struct {
	users    repositories.UserRepository
	jwtCfg   *config.JWTConfig
	validate *validator.Validate
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(users repositories.UserRepository, jwtCfg *config.JWTConfig) *AuthHandler {
	return &AuthHandler{
		users:    users,
		jwtCfg:   jwtCfg,
		validate: validator.New(),
	}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new account with username, password, and display name
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.RegisterResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 409 {object} dto.ErrorResponse "User already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	// Passwords are taken verbatim; only identity fields are trimmed.
	req.User = strings.TrimSpace(req.User)
	req.Name = strings.TrimSpace(req.Name)
	if err := h.validate.Struct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "User, password, and name are required")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	user := models.User{
		Username:     req.User,
		Name:         req.Name,
		PasswordHash: hash,
	}
	if err := h.users.Create(r.Context(), &user); err != nil {
		if errors.Is(err, repositories.ErrUserExists) {
			utils.WriteErrorResponse(w, http.StatusConflict, "User already exists", "Username already registered")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		ID:      user.ID,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with username and password
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	req.User = strings.TrimSpace(req.User)
	if err := h.validate.Struct(req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "User and password are required")
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.User)
	if errors.Is(err, repositories.ErrUserNotFound) {
		// Same message as a wrong password so usernames cannot be probed.
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Username or password is incorrect")
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get user", err.Error())
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Username or password is incorrect")
		return
	}

	token, err := identity.GenerateToken(user, h.jwtCfg)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		UserID:  user.ID,
		Name:    user.Name,
		Token:   token,
	})
}
