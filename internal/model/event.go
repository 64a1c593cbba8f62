package model

import "time"

// EventRehearsalDinner is recognized by the milestone engine.
const EventRehearsalDinner = "rehearsal_dinner"

type Event struct {
	ID        int        `json:"id"`
	WeddingID int        `json:"wedding_id"`
	Name      string     `json:"name"`
	EventType string     `json:"event_type"`
	StartsAt  *time.Time `json:"starts_at,omitempty"`
	Location  string     `json:"location,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
