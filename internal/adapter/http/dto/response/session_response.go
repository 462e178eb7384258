package response

import (
	"time"

	"repair_hub/internal/domain/entities"
)

type SessionResponse struct {
	Token     string    `json:"token,omitempty"`
	SessionID string    `json:"session_id"`
	FirmID    string    `json:"firm_id"`
	FirmName  string    `json:"firm_name"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func FromSession(s entities.Session, token string) SessionResponse {
	return SessionResponse{
		Token:     token,
		SessionID: s.ID,
		FirmID:    s.FirmID,
		FirmName:  s.FirmName,
		IssuedAt:  s.IssuedAt,
		ExpiresAt: s.ExpiresAt,
	}
}
