package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"second-brain/models"
	"second-brain/repository"
)

// NoteHandler handles all note-related HTTP requests
type NoteHandler struct {
	repo   *repository.NoteRepository
	logger *slog.Logger
}

// NewNoteHandler creates a new handler
func NewNoteHandler(repo *repository.NoteRepository, logger *slog.Logger) *NoteHandler {
	return &NoteHandler{
		repo:   repo,
		logger: logger,
	}
}

// GetAllNotes handles GET /api/notes
func (h *NoteHandler) GetAllNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.repo.GetAll()
	if err != nil {
		h.logger.Error("failed to get notes", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}

	writeJSON(w, http.StatusOK, notes)
}

// CreateNote handles POST /api/notes
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req models.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "Content is required")
		return
	}

	h.logger.Info("creating note")

	note, err := h.repo.Create(req.Content, req.Tags)
	if err != nil {
		h.logger.Error("failed to create note", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":      note.ID,
		"message": "Note created successfully",
	})
}

// UpdateNote handles PUT /api/notes/{id}. Only fields present in the
// body are changed.
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var req models.UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.repo.GetByID(id)
	if err != nil {
		h.logger.Error("failed to get note", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if note == nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Tags != nil {
		note.Tags = *req.Tags
	}

	h.logger.Info("updating note", "id", id)

	if _, err := h.repo.Update(note.ID, note.Content, note.Tags); err != nil {
		h.logger.Error("failed to update note", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Note updated successfully"})
}

// DeleteNote handles DELETE /api/notes/{id}
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := h.repo.GetByID(id)
	if err != nil {
		h.logger.Error("failed to get note", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if note == nil {
		writeError(w, http.StatusNotFound, "Note not found")
		return
	}

	h.logger.Info("deleting note", "id", id)

	if err := h.repo.Delete(id); err != nil {
		h.logger.Error("failed to delete note", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}
