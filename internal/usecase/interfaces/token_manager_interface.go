package interfaces

import "time"

// ITokenManager issues and validates the bearer tokens handed out at login.
type ITokenManager interface {
	Issue(sessionID, firmID string, expiresAt time.Time) (string, error)
	Validate(token string) (sessionID string, firmID string, err error)
}
