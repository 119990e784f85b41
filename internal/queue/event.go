// Package queue defines message payloads exchanged over the message broker.
package queue

// OrderPlacedEvent is published when an order has been accepted by the
// lessons API.  It contains enough information for downstream consumers
// to log, notify, or trigger analytics without querying the remote
// store.
type OrderPlacedEvent struct {
	Reference    string   `json:"reference"`
	Name         string   `json:"name"`
	Lessons      []string `json:"lessons"`
	TotalSeats   int      `json:"total_seats"`
	Total        string   `json:"total"`
	SyncFailures int      `json:"sync_failures"`
	PlacedAt     string   `json:"placed_at"`
}
