package models

import "time"

// Note is a free-form text capture with comma-separated tags
type Note struct {
	ID        int       `json:"id"`
	Content   string    `json:"content"`
	Tags      string    `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateNoteRequest is the payload for creating a new note
type CreateNoteRequest struct {
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

// UpdateNoteRequest is the payload for a partial note update
type UpdateNoteRequest struct {
	Content *string `json:"content"`
	Tags    *string `json:"tags"`
}
