package dto

import (
	"time"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/models"
)

// NoteResponse represents note data in API responses
type NoteResponse struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UserID    string `json:"user_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// NewNoteResponse converts a note entity to its transport form with
// ISO-8601 timestamps.
func NewNoteResponse(note models.Note) NoteResponse {
	return NoteResponse{
		ID:        note.ID,
		Title:     note.Title,
		Content:   note.Content,
		UserID:    note.UserID,
		CreatedAt: note.CreatedAt.Format(time.RFC3339),
		UpdatedAt: note.UpdatedAt.Format(time.RFC3339),
	}
}

// NewNoteResponseList converts a slice of note entities, keeping order.
func NewNoteResponseList(notes []models.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, note := range notes {
		out = append(out, NewNoteResponse(note))
	}
	return out
}

// CreateNoteRequest represents the request payload for note creation on the
// authenticated surface. Title is optional.
type CreateNoteRequest struct {
	Text  string `json:"text" validate:"required"`
	Title string `json:"title,omitempty"`
}

// NoteCreatedResponse represents the response after successful note creation
type NoteCreatedResponse struct {
	Message string       `json:"message"`
	Note    NoteResponse `json:"note"`
}

// NoteListResponse represents the authenticated note listing
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Total int            `json:"total"`
}

// NoteDetailResponse wraps a single note
type NoteDetailResponse struct {
	Note NoteResponse `json:"note"`
}

// LegacyCreateNoteRequest represents the request payload on the legacy
// surface, where the owner id travels in the body.
type LegacyCreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	UserID  string `json:"user_id"`
}

// LegacyListResponse represents the legacy note listing
type LegacyListResponse struct {
	Success bool           `json:"success"`
	Data    []NoteResponse `json:"data"`
	Count   int            `json:"count"`
}

// LegacyCreateResponse represents the legacy creation response
type LegacyCreateResponse struct {
	Success bool         `json:"success"`
	Data    NoteResponse `json:"data"`
	Message string       `json:"message"`
}

// LegacyErrorResponse represents a failure on the legacy surface
type LegacyErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
