package security

import (
	"errors"
	"time"

	"repair_hub/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

const issuer = "repair-hub"

// SessionClaims binds a bearer token to one login session.
type SessionClaims struct {
	FirmID string `json:"firm_id"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	now    func() time.Time
}

var _ interfaces.ITokenManager = (*TokenManager)(nil)

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{secret: []byte(secret), now: time.Now}
}

// Issue signs an HS256 token whose jti is the session id.
func (m *TokenManager) Issue(sessionID, firmID string, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		FirmID: firmID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   firmID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(m.now()),
			Issuer:    issuer,
			ID:        sessionID,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenManager) Validate(tokenString string) (string, string, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithTimeFunc(m.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrExpiredToken
		}
		return "", "", ErrInvalidToken
	}
	if !token.Valid || claims.ID == "" || claims.FirmID == "" {
		return "", "", ErrInvalidToken
	}
	return claims.ID, claims.FirmID, nil
}
