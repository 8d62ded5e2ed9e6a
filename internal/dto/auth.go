package dto

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// RegisterResponse represents the response after successful registration
type RegisterResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	User     string `json:"user" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents the response after successful authentication.
// Token carries a signed JWT accepted by the bearer identity resolver;
// clients on the client-id scheme may ignore it.
type LoginResponse struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
	Name    string `json:"name"`
	Token   string `json:"token,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
