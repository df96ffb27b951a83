package models

import "time"

// DailyLog is the end-of-day journal entry; at most one exists per calendar date
type DailyLog struct {
	ID              int       `json:"id"`
	Date            time.Time `json:"-"`
	Accomplishments string    `json:"accomplishments"`
	MissedItems     string    `json:"missed_items"`
	TomorrowPlan    string    `json:"tomorrow_plan"`
	CreatedAt       time.Time `json:"created_at"`
}

// DailyLogResponse is the wire shape for a daily log
type DailyLogResponse struct {
	ID              int    `json:"id"`
	Date            string `json:"date"`
	Accomplishments string `json:"accomplishments"`
	MissedItems     string `json:"missed_items"`
	TomorrowPlan    string `json:"tomorrow_plan"`
	CreatedAt       string `json:"created_at"`
}

// NewDailyLogResponse converts a daily log to its wire shape
func NewDailyLogResponse(l DailyLog) DailyLogResponse {
	return DailyLogResponse{
		ID:              l.ID,
		Date:            l.Date.Format("2006-01-02"),
		Accomplishments: l.Accomplishments,
		MissedItems:     l.MissedItems,
		TomorrowPlan:    l.TomorrowPlan,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
	}
}

// CreateDailyLogRequest is the payload for creating today's log
type CreateDailyLogRequest struct {
	Accomplishments string `json:"accomplishments"`
	MissedItems     string `json:"missed_items"`
	TomorrowPlan    string `json:"tomorrow_plan"`
}

// UpdateDailyLogRequest is the payload for a partial log update
type UpdateDailyLogRequest struct {
	Accomplishments *string `json:"accomplishments"`
	MissedItems     *string `json:"missed_items"`
	TomorrowPlan    *string `json:"tomorrow_plan"`
}
