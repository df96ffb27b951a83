package repository

import (
	"database/sql"
	"fmt"
	"time"

	"second-brain/models"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *sql.DB
}

// NewTaskRepository creates the repository and its table
func NewTaskRepository(db *sql.DB) (*TaskRepository, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		due_date DATETIME,
		completed BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create tasks table: %w", err)
	}

	return &TaskRepository{db: db}, nil
}

// Create adds a new task
func (r *TaskRepository) Create(title, description string, dueDate *time.Time) (*models.Task, error) {
	now := time.Now()
	result, err := r.db.Exec(
		"INSERT INTO tasks (title, description, due_date, completed, created_at, updated_at) VALUES (?, ?, ?, 0, ?, ?)",
		title, description, nullableTime(dueDate), now, now,
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

// GetByID retrieves a single task by ID
func (r *TaskRepository) GetByID(id int) (*models.Task, error) {
	row := r.db.QueryRow(
		"SELECT id, title, description, due_date, completed, created_at, updated_at FROM tasks WHERE id = ?",
		id,
	)

	t, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetAll retrieves all tasks ordered by due date, undated tasks last
func (r *TaskRepository) GetAll() ([]models.Task, error) {
	rows, err := r.db.Query(
		"SELECT id, title, description, due_date, completed, created_at, updated_at FROM tasks ORDER BY due_date IS NULL, due_date ASC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *t)
	}

	return tasks, rows.Err()
}

// Update replaces the mutable fields of a task and refreshes updated_at
func (r *TaskRepository) Update(id int, title, description string, dueDate *time.Time, completed bool) (*models.Task, error) {
	_, err := r.db.Exec(
		"UPDATE tasks SET title = ?, description = ?, due_date = ?, completed = ?, updated_at = ? WHERE id = ?",
		title, description, nullableTime(dueDate), completed, time.Now(), id,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Delete removes a task
func (r *TaskRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM tasks WHERE id = ?", id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*models.Task, error) {
	var t models.Task
	var due sql.NullTime
	err := row.Scan(&t.ID, &t.Title, &t.Description, &due, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if due.Valid {
		t.DueDate = &due.Time
	}
	return &t, nil
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
