package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"second-brain/models"
	"second-brain/repository"
)

// LogHandler handles all daily-log HTTP requests. Storage errors on
// log endpoints never escape; they come back as 500s with the message
// in the error body.
type LogHandler struct {
	repo   *repository.LogRepository
	logger *slog.Logger

	// Now supplies the current time; overridden in tests
	Now func() time.Time
}

// NewLogHandler creates a new handler
func NewLogHandler(repo *repository.LogRepository, logger *slog.Logger) *LogHandler {
	return &LogHandler{
		repo:   repo,
		logger: logger,
		Now:    time.Now,
	}
}

// GetRecentLogs handles GET /api/logs, returning the last week of entries
func (h *LogHandler) GetRecentLogs(w http.ResponseWriter, r *http.Request) {
	logs, err := h.repo.Recent(7)
	if err != nil {
		h.logger.Error("failed to get logs", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	responses := []models.DailyLogResponse{}
	for _, l := range logs {
		responses = append(responses, models.NewDailyLogResponse(l))
	}

	writeJSON(w, http.StatusOK, responses)
}

// CreateLog handles POST /api/logs. At most one log may exist per
// calendar date; the unique index in storage is the real guard and the
// lookup here is just a friendlier first check.
func (h *LogHandler) CreateLog(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDailyLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	today := h.Now()

	existing, err := h.repo.GetByDate(today)
	if err != nil {
		h.logger.Error("failed to check today's log", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "A log already exists for today")
		return
	}

	h.logger.Info("creating daily log", "date", today.Format("2006-01-02"))

	log, err := h.repo.Create(today, req.Accomplishments, req.MissedItems, req.TomorrowPlan)
	if errors.Is(err, repository.ErrLogExists) {
		writeError(w, http.StatusBadRequest, "A log already exists for today")
		return
	}
	if err != nil {
		h.logger.Error("failed to create daily log", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"id":      log.ID,
		"message": "Daily log created successfully",
	})
}

// UpdateLog handles PUT /api/logs/{id}. Missing fields keep their
// prior values.
func (h *LogHandler) UpdateLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid log ID")
		return
	}

	var req models.UpdateDailyLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	log, err := h.repo.GetByID(id)
	if err != nil {
		h.logger.Error("failed to get log", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if log == nil {
		writeError(w, http.StatusNotFound, "Log not found")
		return
	}

	if req.Accomplishments != nil {
		log.Accomplishments = *req.Accomplishments
	}
	if req.MissedItems != nil {
		log.MissedItems = *req.MissedItems
	}
	if req.TomorrowPlan != nil {
		log.TomorrowPlan = *req.TomorrowPlan
	}

	h.logger.Info("updating daily log", "id", id)

	if _, err := h.repo.Update(log.ID, log.Accomplishments, log.MissedItems, log.TomorrowPlan); err != nil {
		h.logger.Error("failed to update log", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Daily log updated successfully"})
}

// DeleteLog handles DELETE /api/logs/{id}
func (h *LogHandler) DeleteLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid log ID")
		return
	}

	log, err := h.repo.GetByID(id)
	if err != nil {
		h.logger.Error("failed to get log", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if log == nil {
		writeError(w, http.StatusNotFound, "Log not found")
		return
	}

	h.logger.Info("deleting daily log", "id", id)

	if err := h.repo.Delete(id); err != nil {
		h.logger.Error("failed to delete log", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Daily log deleted successfully"})
}

// GetTodayLog handles GET /api/logs/today
func (h *LogHandler) GetTodayLog(w http.ResponseWriter, r *http.Request) {
	log, err := h.repo.GetByDate(h.Now())
	if err != nil {
		h.logger.Error("failed to get today's log", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if log == nil {
		writeJSON(w, http.StatusOK, map[string]bool{"exists": false})
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Exists bool `json:"exists"`
		models.DailyLogResponse
	}{true, models.NewDailyLogResponse(*log)})
}
