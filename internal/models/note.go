package models

import "time"

// Note represents a stored note. UserID stays a string: rows written by the
// legacy surface carry a free-form owner id, while the authenticated surface
// writes the decimal id of a registered user.
type Note struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	UserID    string    `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
