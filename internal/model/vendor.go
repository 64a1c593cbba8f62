package model

import "time"

// Vendor statuses.
const (
	VendorResearching = "researching"
	VendorContacted   = "contacted"
	VendorBooked      = "booked"
	VendorRejected    = "rejected"
)

// VenueCategory is special-cased by the milestone engine.
const VenueCategory = "Venue"

type Vendor struct {
	ID           int       `json:"id"`
	WeddingID    int       `json:"wedding_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Status       string    `json:"status"`
	ContactEmail string    `json:"contact_email,omitempty"`
	ContactPhone string    `json:"contact_phone,omitempty"`
	QuoteCents   int64     `json:"quote_cents"`
	Notes        string    `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func ValidVendorStatus(s string) bool {
	switch s {
	case VendorResearching, VendorContacted, VendorBooked, VendorRejected:
		return true
	}
	return false
}
