package handlers

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"second-brain/models"
	"second-brain/repository"
	"second-brain/views"
)

const csvNoteLimit = 50

// ExportHandler serves the CSV and JSON dumps of the whole store
type ExportHandler struct {
	tasks  *repository.TaskRepository
	notes  *repository.NoteRepository
	logs   *repository.LogRepository
	habits *repository.HabitRepository
	logger *slog.Logger

	// Now supplies the current time; overridden in tests
	Now func() time.Time
}

// NewExportHandler creates a new handler
func NewExportHandler(tasks *repository.TaskRepository, notes *repository.NoteRepository, logs *repository.LogRepository, habits *repository.HabitRepository, logger *slog.Logger) *ExportHandler {
	return &ExportHandler{
		tasks:  tasks,
		notes:  notes,
		logs:   logs,
		habits: habits,
		logger: logger,
		Now:    time.Now,
	}
}

// ExportCSV handles GET /api/export/csv: one flat table with a row per
// task, note, and habit.
func (h *ExportHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	tasks, notes, _, habits, err := h.loadAll()
	if err != nil {
		h.logger.Error("failed to load data for csv export", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.logger.Info("exporting csv", "tasks", len(tasks), "notes", len(notes), "habits", len(habits))

	filename := fmt.Sprintf("second_brain_export_%s.csv", h.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Type", "Title/Content", "Description/Tags", "Status", "Created Date"})

	for _, t := range tasks {
		status := "Pending"
		if t.Completed {
			status = "Completed"
		}
		_ = cw.Write([]string{"Task", t.Title, t.Description, status, t.CreatedAt.Format("2006-01-02")})
	}

	for _, n := range notes {
		_ = cw.Write([]string{"Note", views.Snippet(n.Content, csvNoteLimit), n.Tags, "", n.CreatedAt.Format("2006-01-02")})
	}

	for _, habit := range habits {
		status := fmt.Sprintf("Streak: %d days", habit.StreakCount)
		_ = cw.Write([]string{"Habit", habit.Name, habit.Description, status, habit.CreatedAt.Format("2006-01-02")})
	}

	cw.Flush()
}

// ExportJSON handles GET /api/export/json: a full dump of all four
// entity kinds plus the export date and version.
func (h *ExportHandler) ExportJSON(w http.ResponseWriter, r *http.Request) {
	tasks, notes, logs, habits, err := h.loadAll()
	if err != nil {
		h.logger.Error("failed to load data for json export", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	dump := models.ExportDump{
		ExportDate: h.Now().Format(time.RFC3339),
		Version:    appVersion,
		Tasks:      []models.TaskResponse{},
		Notes:      notes,
		Logs:       []models.DailyLogResponse{},
		Habits:     []models.HabitResponse{},
	}
	if dump.Notes == nil {
		dump.Notes = []models.Note{}
	}
	for _, t := range tasks {
		dump.Tasks = append(dump.Tasks, models.NewTaskResponse(t))
	}
	for _, l := range logs {
		dump.Logs = append(dump.Logs, models.NewDailyLogResponse(l))
	}
	for _, habit := range habits {
		dump.Habits = append(dump.Habits, models.NewHabitResponse(habit))
	}

	h.logger.Info("exporting json", "tasks", len(dump.Tasks), "notes", len(dump.Notes), "logs", len(dump.Logs), "habits", len(dump.Habits))

	writeJSON(w, http.StatusOK, dump)
}

func (h *ExportHandler) loadAll() ([]models.Task, []models.Note, []models.DailyLog, []models.Habit, error) {
	tasks, err := h.tasks.GetAll()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	notes, err := h.notes.GetAll()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	logs, err := h.logs.GetAll()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	habits, err := h.habits.GetAll()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return tasks, notes, logs, habits, nil
}
