package model

import "time"

// Task statuses.
const (
	TaskPending    = "pending"
	TaskInProgress = "in_progress"
	TaskCompleted  = "completed"
)

type Task struct {
	ID        int        `json:"id"`
	WeddingID int        `json:"wedding_id"`
	Title     string     `json:"title"`
	Status    string     `json:"status"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

func ValidTaskStatus(s string) bool {
	return s == TaskPending || s == TaskInProgress || s == TaskCompleted
}
