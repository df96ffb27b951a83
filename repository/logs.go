package repository

import (
	"database/sql"
	"fmt"
	"time"

	"second-brain/models"
)

const dateLayout = "2006-01-02"

// LogRepository handles database operations for daily logs
type LogRepository struct {
	db *sql.DB
}

// NewLogRepository creates the repository and its table. The unique
// index on date enforces the one-log-per-day invariant at the storage
// level, regardless of what callers check first.
func NewLogRepository(db *sql.DB) (*LogRepository, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS daily_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL UNIQUE,
		accomplishments TEXT,
		missed_items TEXT,
		tomorrow_plan TEXT,
		created_at DATETIME
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create daily_logs table: %w", err)
	}

	return &LogRepository{db: db}, nil
}

// Create adds the log for the given date. Returns ErrLogExists when a
// log for that date is already present.
func (r *LogRepository) Create(date time.Time, accomplishments, missedItems, tomorrowPlan string) (*models.DailyLog, error) {
	result, err := r.db.Exec(
		"INSERT INTO daily_logs (date, accomplishments, missed_items, tomorrow_plan, created_at) VALUES (?, ?, ?, ?, ?)",
		date.Format(dateLayout), accomplishments, missedItems, tomorrowPlan, time.Now(),
	)
	if isUniqueViolation(err) {
		return nil, ErrLogExists
	}
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	return r.GetByID(int(id))
}

// GetByID retrieves a single log by ID
func (r *LogRepository) GetByID(id int) (*models.DailyLog, error) {
	return r.getOne("SELECT id, date, accomplishments, missed_items, tomorrow_plan, created_at FROM daily_logs WHERE id = ?", id)
}

// GetByDate retrieves the log for a calendar date, if any
func (r *LogRepository) GetByDate(date time.Time) (*models.DailyLog, error) {
	return r.getOne("SELECT id, date, accomplishments, missed_items, tomorrow_plan, created_at FROM daily_logs WHERE date = ?", date.Format(dateLayout))
}

func (r *LogRepository) getOne(q string, arg any) (*models.DailyLog, error) {
	var l models.DailyLog
	var dateStr string
	err := r.db.QueryRow(q, arg).Scan(&l.ID, &dateStr, &l.Accomplishments, &l.MissedItems, &l.TomorrowPlan, &l.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	l.Date, err = time.ParseInLocation(dateLayout, dateStr, time.Local)
	if err != nil {
		return nil, fmt.Errorf("corrupt log date %q: %w", dateStr, err)
	}

	return &l, nil
}

// Recent retrieves the n most recent logs by date
func (r *LogRepository) Recent(n int) ([]models.DailyLog, error) {
	rows, err := r.db.Query(
		"SELECT id, date, accomplishments, missed_items, tomorrow_plan, created_at FROM daily_logs ORDER BY date DESC LIMIT ?", n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.DailyLog
	for rows.Next() {
		var l models.DailyLog
		var dateStr string
		if err := rows.Scan(&l.ID, &dateStr, &l.Accomplishments, &l.MissedItems, &l.TomorrowPlan, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Date, err = time.ParseInLocation(dateLayout, dateStr, time.Local)
		if err != nil {
			return nil, fmt.Errorf("corrupt log date %q: %w", dateStr, err)
		}
		logs = append(logs, l)
	}

	return logs, rows.Err()
}

// GetAll retrieves every log, most recent first
func (r *LogRepository) GetAll() ([]models.DailyLog, error) {
	// -1 disables the LIMIT in sqlite
	return r.Recent(-1)
}

// Update replaces the text fields of a log
func (r *LogRepository) Update(id int, accomplishments, missedItems, tomorrowPlan string) (*models.DailyLog, error) {
	_, err := r.db.Exec(
		"UPDATE daily_logs SET accomplishments = ?, missed_items = ?, tomorrow_plan = ? WHERE id = ?",
		accomplishments, missedItems, tomorrowPlan, id,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Delete removes a log
func (r *LogRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM daily_logs WHERE id = ?", id)
	return err
}
