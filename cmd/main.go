// @title API de Notas
// @version 1.0
// @description Notes backend: user registration/login and user-scoped note storage

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/cors"

	_ "github.com/Martin-Moreno-Jara/notas-backend/docs" // swagger metadata
	"github.com/Martin-Moreno-Jara/notas-backend/internal/config"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/database"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/handlers"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/identity"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/logging"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/repositories"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.Setup(cfg.Env)
	logger.Info("starting notas service", slog.String("env", cfg.Env))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
	db, err := database.New(ctx, cfg.GetDSN())
	cancel()
	if err != nil {
		logger.Error("failed to init database", logging.Err(err))
		os.Exit(1)
	}
	defer db.Close()

	users := repositories.NewUserRepository(db.DB())
	notes := repositories.NewNoteRepository(db.DB())

	// Identity scheme for the /notes surface. Swap in
	// identity.NewTokenResolver(users, &cfg.JWT) to require bearer tokens.
	resolver := identity.NewHeaderResolver(users)

	authHandler := handlers.NewAuthHandler(users, &cfg.JWT)
	noteHandler := handlers.NewNoteHandler(notes)
	legacyHandler := handlers.NewLegacyNoteHandler(notes)
	healthHandler := handlers.NewHealthHandler(db)

	mux := routes.SetupRoutes(authHandler, noteHandler, legacyHandler, healthHandler, resolver)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})

	handler := logging.RequestLogger(logger, c.Handler(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", logging.Err(err))
			os.Exit(1)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", logging.Err(err))
	}
	logger.Info("server stopped")
}
