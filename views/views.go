// Package views holds the derived-view computations: daily recap,
// productivity scoring, and content search. Everything here is a pure
// function over already-loaded records; callers pass the current time
// explicitly so date-boundary behavior stays testable.
package views

import (
	"fmt"
	"strings"
	"time"

	"second-brain/models"
)

const noteSnippetLimit = 100

// ProductivityScore computes the bounded daily metric from completed
// and overdue task counts. Clamped to [0, 100].
func ProductivityScore(completed, overdue int) int {
	score := completed*10 - overdue*5
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// SameDay reports whether two instants fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// DaysBetween returns the number of calendar days from a to b,
// ignoring time of day. Negative when b precedes a. Both dates are
// normalized to UTC midnights so the count stays exact across DST
// transitions, where a local day is not 24 hours long.
func DaysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}

// BuildRecap derives the daily recap from the full task and note sets.
func BuildRecap(tasks []models.Task, notes []models.Note, now time.Time) models.Recap {
	var completedTitles []string
	completed := 0
	overdue := 0

	for _, t := range tasks {
		if t.Completed && SameDay(t.UpdatedAt, now) {
			completed++
			completedTitles = append(completedTitles, t.Title)
		}
		if !t.Completed && t.DueDate != nil && t.DueDate.Before(now) {
			overdue++
		}
	}

	notesToday := 0
	for _, n := range notes {
		if SameDay(n.CreatedAt, now) {
			notesToday++
		}
	}

	return models.Recap{
		CompletedCount:    completed,
		OverdueCount:      overdue,
		NotesCount:        notesToday,
		Summary:           buildSummary(completedTitles, completed, overdue, notesToday),
		ProductivityScore: ProductivityScore(completed, overdue),
	}
}

func buildSummary(titles []string, completed, overdue, notesToday int) string {
	if completed == 0 && notesToday == 0 {
		return "A quiet day so far. No tasks completed and no notes captured yet. Tomorrow is a new opportunity."
	}

	var parts []string

	if completed > 0 {
		shown := titles
		suffix := "."
		if len(shown) > 3 {
			shown = shown[:3]
			suffix = "..."
		}
		parts = append(parts, fmt.Sprintf("You completed %d task(s) today: %s%s",
			completed, strings.Join(shown, ", "), suffix))
	}

	if overdue > 0 {
		parts = append(parts, fmt.Sprintf("Watch out, %d task(s) are overdue.", overdue))
	}

	if notesToday > 0 {
		parts = append(parts, fmt.Sprintf("You captured %d note(s) today.", notesToday))
	}

	delta := completed - overdue
	switch {
	case delta > 3:
		parts = append(parts, "Incredible momentum, keep crushing it!")
	case delta > 0:
		parts = append(parts, "Solid progress, keep it up!")
	default:
		parts = append(parts, "Tomorrow is a new opportunity.")
	}

	return strings.Join(parts, " ")
}

// Search runs a case-insensitive substring match across tasks, notes,
// and habits. Note content in the results is truncated to a snippet;
// the underlying records are never modified.
func Search(query string, tasks []models.Task, notes []models.Note, habits []models.Habit) models.SearchResults {
	q := strings.ToLower(query)

	results := models.SearchResults{
		Tasks:  []models.SearchTask{},
		Notes:  []models.SearchNote{},
		Habits: []models.SearchHabit{},
	}
	if q == "" {
		return results
	}

	for _, t := range tasks {
		if contains(t.Title, q) || contains(t.Description, q) {
			results.Tasks = append(results.Tasks, models.SearchTask{
				ID:        t.ID,
				Title:     t.Title,
				Completed: t.Completed,
			})
		}
	}

	for _, n := range notes {
		if contains(n.Content, q) || contains(n.Tags, q) {
			results.Notes = append(results.Notes, models.SearchNote{
				ID:      n.ID,
				Content: Snippet(n.Content, noteSnippetLimit),
				Tags:    n.Tags,
			})
		}
	}

	for _, h := range habits {
		if contains(h.Name, q) || contains(h.Description, q) {
			results.Habits = append(results.Habits, models.SearchHabit{
				ID:          h.ID,
				Name:        h.Name,
				StreakCount: h.StreakCount,
			})
		}
	}

	return results
}

func contains(s, lowerQuery string) bool {
	return strings.Contains(strings.ToLower(s), lowerQuery)
}

// Snippet truncates s to limit characters, marking the cut with an
// ellipsis. Limits count runes, not bytes, so multibyte content is
// never cut mid-character.
func Snippet(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
