package model

import "time"

// RSVP statuses.
const (
	RSVPPending   = "pending"
	RSVPConfirmed = "confirmed"
	RSVPDeclined  = "declined"
)

// Guest priorities (invite tiers).
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

type Guest struct {
	ID         int       `json:"id"`
	WeddingID  int       `json:"wedding_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	RSVPStatus string    `json:"rsvp_status"`
	Priority   string    `json:"priority"`
	PartySize  int       `json:"party_size"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func ValidRSVPStatus(s string) bool {
	return s == RSVPPending || s == RSVPConfirmed || s == RSVPDeclined
}

func ValidPriority(p string) bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}
