package handlers

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/models"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/repositories"
)

type fakeUserRepo struct {
	users     map[int]*models.User
	nextID    int
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.users {
		if existing.Username == user.Username {
			return repositories.ErrUserExists
		}
	}
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.nextID++
	clone := *user
	f.users[user.ID] = &clone
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	for _, user := range f.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

type fakeNoteRepo struct {
	notes     map[int]*models.Note
	nextID    int
	createErr error
	queryErr  error
}

func newFakeNoteRepo() *fakeNoteRepo {
	return &fakeNoteRepo{notes: map[int]*models.Note{}, nextID: 1}
}

func (f *fakeNoteRepo) Create(ctx context.Context, note *models.Note) error {
	if f.createErr != nil {
		return f.createErr
	}
	note.ID = f.nextID
	note.CreatedAt = time.Now().UTC().Truncate(time.Second)
	note.UpdatedAt = note.CreatedAt
	f.nextID++
	clone := *note
	f.notes[note.ID] = &clone
	return nil
}

func (f *fakeNoteRepo) GetByID(ctx context.Context, id int) (*models.Note, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	note, ok := f.notes[id]
	if !ok {
		return nil, repositories.ErrNoteNotFound
	}
	return note, nil
}

func (f *fakeNoteRepo) GetAllByUser(ctx context.Context, userID string) ([]models.Note, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	out := []models.Note{}
	for _, note := range f.notes {
		if note.UserID == userID {
			out = append(out, *note)
		}
	}
	// Newest first, matching the repository's ordering guarantee.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// stubResolver resolves every request to a fixed user.
type stubResolver struct {
	user *models.User
	err  error
}

func (s *stubResolver) Resolve(r *http.Request) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}
