package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"second-brain/models"
	"second-brain/repository"
)

// TaskHandler handles all task-related HTTP requests
type TaskHandler struct {
	repo   *repository.TaskRepository
	logger *slog.Logger
}

// NewTaskHandler creates a new handler
func NewTaskHandler(repo *repository.TaskRepository, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		repo:   repo,
		logger: logger,
	}
}

// dueDateLayouts are the accepted due date formats, tried in order
var dueDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDueDate accepts a date-only string or a full timestamp. Anything
// unparseable degrades to nil rather than an error.
func parseDueDate(s string) *time.Time {
	for _, layout := range dueDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &t
		}
	}
	return nil
}

// GetAllTasks handles GET /api/tasks
func (h *TaskHandler) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.repo.GetAll()
	if err != nil {
		h.logger.Error("failed to get tasks", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Return empty array instead of null if no tasks
	responses := []models.TaskResponse{}
	for _, t := range tasks {
		responses = append(responses, models.NewTaskResponse(t))
	}

	writeJSON(w, http.StatusOK, responses)
}

// GetTask handles GET /api/tasks/{id}
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := h.repo.GetByID(id)
	if err != nil {
		h.logger.Error("failed to get task", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if task == nil {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}

	writeJSON(w, http.StatusOK, models.NewTaskResponse(*task))
}

// CreateTask handles POST /api/tasks
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "Title is required")
		return
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		dueDate = parseDueDate(req.DueDate)
	}

	h.logger.Info("creating task", "title", req.Title)

	task, err := h.repo.Create(req.Title, req.Description, dueDate)
	if err != nil {
		h.logger.Error("failed to create task", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":      task.ID,
		"message": "Task created successfully",
	})
}

// UpdateTask handles PUT /api/tasks/{id}. Only fields present in the
// body are changed.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	task, err := h.repo.GetByID(id)
	if err != nil {
		h.logger.Error("failed to get task", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if task == nil {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.Completed != nil {
		task.Completed = *req.Completed
	}
	if req.DueDate != nil {
		// an unparseable due date is ignored, not an error
		if parsed := parseDueDate(*req.DueDate); parsed != nil {
			task.DueDate = parsed
		}
	}

	h.logger.Info("updating task", "id", id)

	if _, err := h.repo.Update(task.ID, task.Title, task.Description, task.DueDate, task.Completed); err != nil {
		h.logger.Error("failed to update task", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task updated successfully"})
}

// DeleteTask handles DELETE /api/tasks/{id}
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid task ID")
		return
	}

	task, err := h.repo.GetByID(id)
	if err != nil {
		h.logger.Error("failed to get task", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if task == nil {
		writeError(w, http.StatusNotFound, "Task not found")
		return
	}

	h.logger.Info("deleting task", "id", id)

	if err := h.repo.Delete(id); err != nil {
		h.logger.Error("failed to delete task", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Task deleted successfully"})
}
