package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"second-brain/models"
	"second-brain/repository"
)

// HabitHandler handles all habit-related HTTP requests
type HabitHandler struct {
	repo   *repository.HabitRepository
	logger *slog.Logger

	// Now supplies the current time; overridden in tests
	Now func() time.Time
}

// NewHabitHandler creates a new handler
func NewHabitHandler(repo *repository.HabitRepository, logger *slog.Logger) *HabitHandler {
	return &HabitHandler{
		repo:   repo,
		logger: logger,
		Now:    time.Now,
	}
}

// GetAllHabits handles GET /api/habits. A fresh store is seeded with
// the default habit set before listing.
func (h *HabitHandler) GetAllHabits(w http.ResponseWriter, r *http.Request) {
	if _, err := h.repo.SeedDefaults(); err != nil {
		h.logger.Error("failed to seed default habits", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	habits, err := h.repo.GetAll()
	if err != nil {
		h.logger.Error("failed to get habits", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	// Return empty array instead of null if no habits
	responses := []models.HabitResponse{}
	for _, habit := range habits {
		responses = append(responses, models.NewHabitResponse(habit))
	}

	writeJSON(w, http.StatusOK, responses)
}

// CompleteHabit handles POST /api/habits/{id}/complete
func (h *HabitHandler) CompleteHabit(w http.ResponseWriter, r *http.Request) {
	h.updateStreak(w, r, true)
}

// SkipHabit handles POST /api/habits/{id}/skip
func (h *HabitHandler) SkipHabit(w http.ResponseWriter, r *http.Request) {
	h.updateStreak(w, r, false)
}

func (h *HabitHandler) updateStreak(w http.ResponseWriter, r *http.Request, completed bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid habit ID")
		return
	}

	h.logger.Info("updating habit streak", "id", id, "completed", completed)

	habit, err := h.repo.UpdateStreak(id, completed, h.Now())
	if err != nil {
		h.logger.Error("failed to update habit streak", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if habit == nil {
		writeError(w, http.StatusNotFound, "Habit not found")
		return
	}

	message := "Habit skipped"
	if completed {
		message = fmt.Sprintf("Great job! Current streak: %d days", habit.StreakCount)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": message,
		"streak":  habit.StreakCount,
	})
}

// InitializeHabits handles POST /api/initialize-habits
func (h *HabitHandler) InitializeHabits(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.repo.SeedDefaults()
	if err != nil {
		h.logger.Error("failed to seed default habits", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	message := "Habits already initialized"
	if seeded {
		message = "Default habits created"
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}
