package dto

// HealthResponse represents the response structure for health checks
type HealthResponse struct {
	Status  string `json:"status"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse represents a bare informational message
type MessageResponse struct {
	Message string `json:"message"`
}
