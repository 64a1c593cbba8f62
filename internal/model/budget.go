package model

import "time"

type BudgetItem struct {
	ID             int       `json:"id"`
	WeddingID      int       `json:"wedding_id"`
	Category       string    `json:"category"`
	Name           string    `json:"name"`
	VendorID       *int      `json:"vendor_id,omitempty"`
	EstimatedCents int64     `json:"estimated_cents"`
	ActualCents    int64     `json:"actual_cents"`
	Paid           bool      `json:"paid"`
	CreatedAt      time.Time `json:"created_at"`
}

// BudgetSummary aggregates one wedding's budget per category.
type BudgetSummary struct {
	Categories     []BudgetCategoryTotal `json:"categories"`
	EstimatedCents int64                 `json:"estimated_cents"`
	ActualCents    int64                 `json:"actual_cents"`
	PaidCents      int64                 `json:"paid_cents"`
}

type BudgetCategoryTotal struct {
	Category       string `json:"category"`
	EstimatedCents int64  `json:"estimated_cents"`
	ActualCents    int64  `json:"actual_cents"`
	PaidCents      int64  `json:"paid_cents"`
}
