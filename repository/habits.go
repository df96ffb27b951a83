package repository

import (
	"database/sql"
	"fmt"
	"time"

	"second-brain/models"
	"second-brain/views"
)

// HabitRepository handles database operations for habits
type HabitRepository struct {
	db *sql.DB
}

// NewHabitRepository creates the repository and its table
func NewHabitRepository(db *sql.DB) (*HabitRepository, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS habits (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		description TEXT,
		streak_count INTEGER NOT NULL DEFAULT 0,
		last_completed TEXT,
		created_at DATETIME
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create habits table: %w", err)
	}

	return &HabitRepository{db: db}, nil
}

// GetAll retrieves all habits
func (r *HabitRepository) GetAll() ([]models.Habit, error) {
	rows, err := r.db.Query("SELECT id, name, description, streak_count, last_completed, created_at FROM habits ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}

	return habits, rows.Err()
}

// GetByID retrieves a single habit by ID
func (r *HabitRepository) GetByID(id int) (*models.Habit, error) {
	row := r.db.QueryRow(
		"SELECT id, name, description, streak_count, last_completed, created_at FROM habits WHERE id = ?",
		id,
	)

	h, err := scanHabit(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return h, nil
}

// Create adds a new habit with an empty streak
func (r *HabitRepository) Create(name, description string) (*models.Habit, error) {
	result, err := r.db.Exec(
		"INSERT INTO habits (name, description, streak_count, created_at) VALUES (?, ?, 0, ?)",
		name, description, time.Now(),
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(int(id))
}

var defaultHabits = []struct {
	name        string
	description string
}{
	{"Morning Planning", "Plan your day each morning"},
	{"Evening Review", "Review what you got done each evening"},
	{"Daily Exercise", "Move your body at least once a day"},
	{"Learning Time", "Spend focused time learning something new"},
}

// SeedDefaults inserts the default habit set into an empty store.
// Safe to call on every request; a store with any habit is left alone.
func (r *HabitRepository) SeedDefaults() (bool, error) {
	var count int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM habits").Scan(&count); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	for _, d := range defaultHabits {
		if _, err := r.Create(d.name, d.description); err != nil {
			return false, err
		}
	}

	return true, nil
}

// UpdateStreak applies a completion or skip for the given calendar day
// and persists the result immediately. Returns the updated habit, or
// (nil, nil) when the id is unknown.
//
// Completion rules: a completion the day after the last one extends the
// streak; a repeat completion on the same day leaves the streak alone;
// anything else starts a fresh streak of 1. A skip breaks the streak
// only when the last completion is more than a day old, and never
// touches last_completed.
func (r *HabitRepository) UpdateStreak(id int, completed bool, today time.Time) (*models.Habit, error) {
	h, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, nil
	}

	if completed {
		switch {
		case h.LastCompleted == nil:
			h.StreakCount = 1
		case views.SameDay(*h.LastCompleted, today):
			// repeat completion, streak unchanged
		case views.DaysBetween(*h.LastCompleted, today) == 1:
			h.StreakCount++
		default:
			h.StreakCount = 1
		}
		day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
		h.LastCompleted = &day
	} else if h.LastCompleted != nil && views.DaysBetween(*h.LastCompleted, today) > 1 {
		h.StreakCount = 0
	}

	var last any
	if h.LastCompleted != nil {
		last = h.LastCompleted.Format(dateLayout)
	}
	_, err = r.db.Exec(
		"UPDATE habits SET streak_count = ?, last_completed = ? WHERE id = ?",
		h.StreakCount, last, h.ID,
	)
	if err != nil {
		return nil, err
	}

	return h, nil
}

func scanHabit(row rowScanner) (*models.Habit, error) {
	var h models.Habit
	var last sql.NullString
	err := row.Scan(&h.ID, &h.Name, &h.Description, &h.StreakCount, &last, &h.CreatedAt)
	if err != nil {
		return nil, err
	}
	if last.Valid {
		day, err := time.ParseInLocation(dateLayout, last.String, time.Local)
		if err != nil {
			return nil, fmt.Errorf("corrupt last_completed %q: %w", last.String, err)
		}
		h.LastCompleted = &day
	}
	return &h, nil
}
