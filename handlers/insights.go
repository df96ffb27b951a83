package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"second-brain/models"
	"second-brain/repository"
	"second-brain/views"
)

// InsightsHandler serves the derived views: daily recap, search, and
// the dashboard data.
type InsightsHandler struct {
	tasks  *repository.TaskRepository
	notes  *repository.NoteRepository
	habits *repository.HabitRepository
	logger *slog.Logger

	// Now supplies the current time; overridden in tests
	Now func() time.Time
}

// NewInsightsHandler creates a new handler
func NewInsightsHandler(tasks *repository.TaskRepository, notes *repository.NoteRepository, habits *repository.HabitRepository, logger *slog.Logger) *InsightsHandler {
	return &InsightsHandler{
		tasks:  tasks,
		notes:  notes,
		habits: habits,
		logger: logger,
		Now:    time.Now,
	}
}

// DailyRecap handles GET /api/daily-recap
func (h *InsightsHandler) DailyRecap(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.tasks.GetAll()
	if err != nil {
		h.logger.Error("failed to get tasks for recap", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	notes, err := h.notes.GetAll()
	if err != nil {
		h.logger.Error("failed to get notes for recap", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(w, http.StatusOK, views.BuildRecap(tasks, notes, h.Now()))
}

// Search handles GET /api/search?q=. An empty query returns empty
// result sets without touching the store.
func (h *InsightsHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusOK, views.Search("", nil, nil, nil))
		return
	}

	tasks, err := h.tasks.GetAll()
	if err != nil {
		h.logger.Error("failed to get tasks for search", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	notes, err := h.notes.GetAll()
	if err != nil {
		h.logger.Error("failed to get notes for search", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	habits, err := h.habits.GetAll()
	if err != nil {
		h.logger.Error("failed to get habits for search", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("searching content", "query", query)

	writeJSON(w, http.StatusOK, views.Search(query, tasks, notes, habits))
}

// Dashboard handles GET /api/dashboard: open tasks due by now, tasks
// finished today, and the latest notes.
func (h *InsightsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	now := h.Now()

	tasks, err := h.tasks.GetAll()
	if err != nil {
		h.logger.Error("failed to get tasks for dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	todayTasks := []models.TaskResponse{}
	completedToday := 0
	for _, t := range tasks {
		if !t.Completed && t.DueDate != nil && !t.DueDate.After(now) {
			todayTasks = append(todayTasks, models.NewTaskResponse(t))
		}
		if t.Completed && views.SameDay(t.UpdatedAt, now) {
			completedToday++
		}
	}

	recentNotes, err := h.notes.Recent(5)
	if err != nil {
		h.logger.Error("failed to get notes for dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if recentNotes == nil {
		recentNotes = []models.Note{}
	}

	writeJSON(w, http.StatusOK, models.Dashboard{
		TodayTasks:     todayTasks,
		CompletedToday: completedToday,
		RecentNotes:    recentNotes,
	})
}
