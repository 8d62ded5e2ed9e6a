package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Martin-Moreno-Jara/notas-backend/internal/dto"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/models"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/repositories"
	"github.com/Martin-Moreno-Jara/notas-backend/internal/utils"
)

// LegacyNoteHandler serves the /api/notes surface of the original service:
// no identity resolution, owner id travels in the path or body, and responses
// keep the original Spanish messages for existing clients.
type LegacyNoteHandler struct {
	notes repositories.NoteRepository
}

// NewLegacyNoteHandler creates a new LegacyNoteHandler instance
func NewLegacyNoteHandler(notes repositories.NoteRepository) *LegacyNoteHandler {
	return &LegacyNoteHandler{notes: notes}
}

// ListByUser handles the legacy note listing
// @Summary List notes for a user id (legacy)
// @Description List all notes whose user_id matches the path value
// @Tags legacy
// @Produce json
// @Param user_id path string true "Owner id"
// @Success 200 {object} dto.LegacyListResponse "Notes"
// @Failure 500 {object} dto.LegacyErrorResponse "Persistence failure"
// @Router /api/notes/{user_id} [get]
func (h *LegacyNoteHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("user_id")

	notes, err := h.notes.GetAllByUser(r.Context(), userID)
	if err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, dto.LegacyErrorResponse{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LegacyListResponse{
		Success: true,
		Data:    dto.NewNoteResponseList(notes),
		Count:   len(notes),
	})
}

// Create handles the legacy note creation
// @Summary Create a note (legacy)
// @Description Create a note with the owner id taken from the body
// @Tags legacy
// @Accept json
// @Produce json
// @Param request body dto.LegacyCreateNoteRequest true "Note data"
// @Success 201 {object} dto.LegacyCreateResponse "Note created"
// @Failure 400 {object} dto.LegacyErrorResponse "Missing field"
// @Failure 500 {object} dto.LegacyErrorResponse "Save failure"
// @Router /api/notes/ [post]
func (h *LegacyNoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.LegacyCreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONResponse(w, http.StatusBadRequest, dto.LegacyErrorResponse{
			Success: false,
			Error:   "No se proporcionaron datos",
		})
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	req.UserID = strings.TrimSpace(req.UserID)

	// Field checks keep the original order: title, content, user_id.
	if req.Title == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, dto.LegacyErrorResponse{
			Success: false,
			Error:   "El título es requerido",
		})
		return
	}
	if req.Content == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, dto.LegacyErrorResponse{
			Success: false,
			Error:   "El contenido es requerido",
		})
		return
	}
	if req.UserID == "" {
		utils.WriteJSONResponse(w, http.StatusBadRequest, dto.LegacyErrorResponse{
			Success: false,
			Error:   "El user_id es requerido",
		})
		return
	}

	note := models.Note{
		Title:   req.Title,
		Content: req.Content,
		UserID:  req.UserID,
	}
	if err := h.notes.Create(r.Context(), &note); err != nil {
		utils.WriteJSONResponse(w, http.StatusInternalServerError, dto.LegacyErrorResponse{
			Success: false,
			Error:   "Error al guardar la nota",
		})
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.LegacyCreateResponse{
		Success: true,
		Data:    dto.NewNoteResponse(note),
		Message: "Nota creada exitosamente",
	})
}

// Home handles the service banner
// @Summary Service banner
// @Tags legacy
// @Produce json
// @Success 200 {object} dto.MessageResponse "Banner"
// @Router / [get]
func (h *LegacyNoteHandler) Home(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{
		Message: "API de Notas - Backend funcionando",
	})
}
