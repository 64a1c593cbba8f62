package model

import "time"

// Wedding is the tenant. Every domain row is scoped by WeddingID.
type Wedding struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	WeddingDate *time.Time `json:"wedding_date,omitempty"`
	VenueName   string     `json:"venue_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// WeddingMember links a user to a wedding with a role (owner, planner,
// viewer). Roles map to permissions in pkg/rbac.
type WeddingMember struct {
	WeddingID int       `json:"wedding_id"`
	UserID    int       `json:"user_id"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
