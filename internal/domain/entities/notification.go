package entities

import "time"

// Notification reports a backend write that failed after the local state
// had already been updated.
type Notification struct {
	ID         string    `json:"id"`
	Entity     string    `json:"entity"`
	RecordID   string    `json:"record_id"`
	Operation  string    `json:"operation"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurred_at"`
}
