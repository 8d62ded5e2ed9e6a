package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/dto"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/identity"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/models"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/repositories"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/utils"
)

// NoteHandler handles note requests on the authenticated surface. The acting
// user is always taken from the request context, never from the payload.
type NoteHandler struct {
	notes repositories.NoteRepository
}

// NewNoteHandler creates a new NoteHandler instance
func NewNoteHandler(notes repositories.NoteRepository) *NoteHandler {
	return &NoteHandler{notes: notes}
}

// Create handles note creation
// @Summary Create a note
// @Description Create a note owned by the resolved user
// @Tags notes
// @Accept json
// @Produce json
// @Param client-id header string true "Numeric user id"
// @Param request body dto.CreateNoteRequest true "Note content"
// @Success 201 {object} dto.NoteCreatedResponse "Note created"
// @Failure 400 {object} dto.ErrorResponse "Missing text"
// @Failure 401 {object} dto.ErrorResponse "Missing credentials"
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes [post]
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing credentials")
		return
	}

	var req dto.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	req.Text = strings.TrimSpace(req.Text)
	if req.Text == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Text is required")
		return
	}

	note := models.Note{
		Title:   strings.TrimSpace(req.Title),
		Content: req.Text,
		UserID:  strconv.Itoa(user.ID),
	}
	if err := h.notes.Create(r.Context(), &note); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create note", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.NoteCreatedResponse{
		Message: "Note created successfully",
		Note:    dto.NewNoteResponse(note),
	})
}

// List handles note listing
// @Summary List notes
// @Description List the resolved user's notes, newest first
// @Tags notes
// @Produce json
// @Param client-id header string true "Numeric user id"
// @Success 200 {object} dto.NoteListResponse "Notes"
// @Failure 401 {object} dto.ErrorResponse "Missing credentials"
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes [get]
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing credentials")
		return
	}

	notes, err := h.notes.GetAllByUser(r.Context(), strconv.Itoa(user.ID))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to list notes", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NoteListResponse{
		Notes: dto.NewNoteResponseList(notes),
		Total: len(notes),
	})
}

// Get handles fetching a single note
// @Summary Get a note
// @Description Fetch one note by id; the note must belong to the resolved user
// @Tags notes
// @Produce json
// @Param client-id header string true "Numeric user id"
// @Param id path int true "Note id"
// @Success 200 {object} dto.NoteDetailResponse "Note"
// @Failure 400 {object} dto.ErrorResponse "Invalid note id"
// @Failure 403 {object} dto.ErrorResponse "Note owned by another user"
// @Failure 404 {object} dto.ErrorResponse "Note not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /notes/{id} [get]
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := identity.FromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Missing credentials")
		return
	}

	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid note id", "Note id must be an integer")
		return
	}

	note, err := h.notes.GetByID(r.Context(), id)
	if errors.Is(err, repositories.ErrNoteNotFound) {
		utils.WriteErrorResponse(w, http.StatusNotFound, "Note not found", "No note with that id")
		return
	}
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to get note", err.Error())
		return
	}

	if note.UserID != strconv.Itoa(user.ID) {
		utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Note belongs to another user")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NoteDetailResponse{
		Note: dto.NewNoteResponse(*note),
	})
}
