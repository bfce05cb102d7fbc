package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultSessionTTL bounds how long a session token stays valid. An
// expired token behaves exactly like an unbound session.
const DefaultSessionTTL = 30 * 24 * time.Hour

var ErrInvalidSession = errors.New("invalid session token")

// sessionClaims binds a session to exactly one application field: the
// authenticated user's email.
type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionManager issues and verifies HMAC-signed session tokens. The token
// is the opaque value stored in the session cookie.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &SessionManager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the session lifetime, used for the cookie max-age.
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a new session token bound to email.
func (m *SessionManager) Issue(email string) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Verify parses a session token and returns the bound email. Any failure,
// including expiry and a tampered signature, yields ErrInvalidSession.
func (m *SessionManager) Verify(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSession
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidSession
	}
	if claims.Email == "" {
		return "", ErrInvalidSession
	}
	return claims.Email, nil
}
