package repository

import (
	"database/sql"
	"fmt"
	"time"

	"second-brain/models"
)

// NoteRepository handles database operations for notes
type NoteRepository struct {
	db *sql.DB
}

// NewNoteRepository creates the repository and its table
func NewNoteRepository(db *sql.DB) (*NoteRepository, error) {
	createTableSQL := `
	CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		content TEXT NOT NULL,
		tags TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`

	if _, err := db.Exec(createTableSQL); err != nil {
		return nil, fmt.Errorf("failed to create notes table: %w", err)
	}

	return &NoteRepository{db: db}, nil
}

// Create adds a new note
func (r *NoteRepository) Create(content, tags string) (*models.Note, error) {
	now := time.Now()
	result, err := r.db.Exec(
		"INSERT INTO notes (content, tags, created_at, updated_at) VALUES (?, ?, ?, ?)",
		content, tags, now, now,
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

// GetByID retrieves a single note by ID
func (r *NoteRepository) GetByID(id int) (*models.Note, error) {
	var n models.Note
	err := r.db.QueryRow(
		"SELECT id, content, tags, created_at, updated_at FROM notes WHERE id = ?",
		id,
	).Scan(&n.ID, &n.Content, &n.Tags, &n.CreatedAt, &n.UpdatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &n, nil
}

// GetAll retrieves all notes, most recently updated first
func (r *NoteRepository) GetAll() ([]models.Note, error) {
	return r.query("SELECT id, content, tags, created_at, updated_at FROM notes ORDER BY updated_at DESC")
}

// Recent retrieves the n most recently updated notes
func (r *NoteRepository) Recent(n int) ([]models.Note, error) {
	return r.query("SELECT id, content, tags, created_at, updated_at FROM notes ORDER BY updated_at DESC LIMIT ?", n)
}

func (r *NoteRepository) query(q string, args ...any) ([]models.Note, error) {
	rows, err := r.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Content, &n.Tags, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

// Update replaces the mutable fields of a note and refreshes updated_at
func (r *NoteRepository) Update(id int, content, tags string) (*models.Note, error) {
	_, err := r.db.Exec(
		"UPDATE notes SET content = ?, tags = ?, updated_at = ? WHERE id = ?",
		content, tags, time.Now(), id,
	)
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// Delete removes a note
func (r *NoteRepository) Delete(id int) error {
	_, err := r.db.Exec("DELETE FROM notes WHERE id = ?", id)
	return err
}
