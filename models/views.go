package models

// Recap is the daily recap derived from today's task and note activity
type Recap struct {
	CompletedCount    int    `json:"completed_count"`
	OverdueCount      int    `json:"overdue_count"`
	NotesCount        int    `json:"notes_count"`
	Summary           string `json:"summary"`
	ProductivityScore int    `json:"productivity_score"`
}

// SearchTask is a task row in search results
type SearchTask struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// SearchNote is a note row in search results; content is truncated
type SearchNote struct {
	ID      int    `json:"id"`
	Content string `json:"content"`
	Tags    string `json:"tags"`
}

// SearchHabit is a habit row in search results
type SearchHabit struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	StreakCount int    `json:"streak_count"`
}

// SearchResults groups matches by entity kind
type SearchResults struct {
	Tasks  []SearchTask  `json:"tasks"`
	Notes  []SearchNote  `json:"notes"`
	Habits []SearchHabit `json:"habits"`
}

// Dashboard is the landing-page data: open tasks due by now, count of
// tasks finished today, and the latest notes
type Dashboard struct {
	TodayTasks     []TaskResponse `json:"today_tasks"`
	CompletedToday int            `json:"completed_today"`
	RecentNotes    []Note         `json:"recent_notes"`
}

// ExportDump is the full JSON export of the store
type ExportDump struct {
	ExportDate string             `json:"export_date"`
	Version    string             `json:"version"`
	Tasks      []TaskResponse     `json:"tasks"`
	Notes      []Note             `json:"notes"`
	Logs       []DailyLogResponse `json:"logs"`
	Habits     []HabitResponse    `json:"habits"`
}
