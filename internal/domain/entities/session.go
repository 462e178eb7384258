package entities

import "time"

// Session is the authenticated shop context every store operation runs in.
//
// PartitionKey scopes all reads and writes to one firm. It is a tenant
// filter, not a security boundary.
type Session struct {
	ID           string    `json:"session_id"`
	FirmID       string    `json:"firm_id"`
	FirmName     string    `json:"firm_name"`
	PartitionKey string    `json:"-"`
	IssuedAt     time.Time `json:"issued_at"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
