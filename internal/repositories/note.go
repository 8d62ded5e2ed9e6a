package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/models"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id int) (*models.Note, error)
	GetAllByUser(ctx context.Context, userID string) ([]models.Note, error)
}

type noteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create inserts the note and fills in the generated id and both timestamps.
// The column defaults assign created_at and updated_at in the same statement,
// so a fresh note always has created_at == updated_at and a failed insert
// leaves no row behind.
func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (title, content, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, note.Title, note.Content, note.UserID).
		Scan(&note.ID, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating note: %w", err)
	}
	return nil
}

// GetByID fetches a note regardless of owner; the caller decides between
// not-found and forbidden.
func (r *noteRepository) GetByID(ctx context.Context, id int) (*models.Note, error) {
	note := models.Note{}
	query := `SELECT id, title, content, user_id, created_at, updated_at FROM notes WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&note.ID, &note.Title, &note.Content, &note.UserID, &note.CreatedAt, &note.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting note: %w", err)
	}
	return &note, nil
}

// GetAllByUser returns the user's notes, newest first. A user with no notes
// gets an empty slice, not an error.
func (r *noteRepository) GetAllByUser(ctx context.Context, userID string) ([]models.Note, error) {
	query := `
		SELECT id, title, content, user_id, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	defer rows.Close()

	notes := []models.Note{}
	for rows.Next() {
		var note models.Note
		err := rows.Scan(
			&note.ID,
			&note.Title,
			&note.Content,
			&note.UserID,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning note: %w", err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notes: %w", err)
	}
	return notes, nil
}
