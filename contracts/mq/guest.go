// Package mq defines the JSON payloads shared between the API server
// (publisher) and the geocode worker (consumer).
package mq

// Routing keys on the events exchange.
const (
	RoutingKeyGuestImported       = "guest.imported"
	RoutingKeyGuestAddressUpdated = "guest.address_updated"
)

// GuestAddressEvent is published whenever a guest gains or changes an
// address. The worker geocodes it and writes coordinates back.
type GuestAddressEvent struct {
	GuestID   int    `json:"guest_id"`
	WeddingID int    `json:"wedding_id"`
	Address   string `json:"address"`
	// BatchID groups guests from one CSV import commit.
	BatchID string `json:"batch_id,omitempty"`
}
