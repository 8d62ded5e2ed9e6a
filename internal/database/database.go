package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/database/migrations"
)

// Service owns the connection pool for the lifetime of the process.
// Repositories borrow the pool; only Close releases it.
type Service struct {
	db *sql.DB
}

// New opens a pool for the given DSN, verifies connectivity and applies
// pending schema migrations.
func New(ctx context.Context, dsn string) (*Service, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	s := &Service{db: db}
	if err := s.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return s, nil
}

// DB exposes the underlying pool for repository constructors.
func (s *Service) DB() *sql.DB {
	return s.db
}

// Ping checks database connectivity.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the pool.
func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return goose.UpContext(ctx, s.db, ".")
}
