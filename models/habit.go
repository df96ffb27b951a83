package models

import "time"

// Habit represents a recurring behavior tracked by a consecutive-day streak
type Habit struct {
	ID            int        `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	StreakCount   int        `json:"streak_count"`
	LastCompleted *time.Time `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
}

// HabitResponse is the wire shape for a habit
type HabitResponse struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	StreakCount   int    `json:"streak_count"`
	LastCompleted string `json:"last_completed"`
	CreatedAt     string `json:"created_at"`
}

// NewHabitResponse converts a habit to its wire shape
func NewHabitResponse(h Habit) HabitResponse {
	last := ""
	if h.LastCompleted != nil {
		last = h.LastCompleted.Format("2006-01-02")
	}
	return HabitResponse{
		ID:            h.ID,
		Name:          h.Name,
		Description:   h.Description,
		StreakCount:   h.StreakCount,
		LastCompleted: last,
		CreatedAt:     h.CreatedAt.Format(time.RFC3339),
	}
}
