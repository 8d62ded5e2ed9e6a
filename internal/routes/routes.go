package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/handlers"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/identity"
)

// SetupRoutes configures all application routes
func SetupRoutes(
	auth *handlers.AuthHandler,
	notes *handlers.NoteHandler,
	legacy *handlers.LegacyNoteHandler,
	health *handlers.HealthHandler,
	resolver identity.Resolver,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Health check routes
	mux.HandleFunc("GET /health", health.HealthCheck)
	mux.HandleFunc("GET /livez", health.LivenessCheck)
	mux.HandleFunc("GET /readyz", health.ReadinessCheck)

	// Authentication routes
	mux.HandleFunc("POST /register", auth.Register)
	mux.HandleFunc("POST /login", auth.Login)

	// Note routes require a resolved identity
	requireIdentity := identity.Middleware(resolver)
	mux.Handle("POST /notes", requireIdentity(http.HandlerFunc(notes.Create)))
	mux.Handle("GET /notes", requireIdentity(http.HandlerFunc(notes.List)))
	mux.Handle("GET /notes/{id}", requireIdentity(http.HandlerFunc(notes.Get)))

	// Legacy surface
	mux.HandleFunc("GET /api/notes/{user_id}", legacy.ListByUser)
	mux.HandleFunc("POST /api/notes/{$}", legacy.Create)
	mux.HandleFunc("GET /{$}", legacy.Home)

	// Swagger documentation
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return mux
}
