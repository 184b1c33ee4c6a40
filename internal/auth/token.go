// Package auth issues and verifies the bearer tokens that protect the API.
//
// Tokens are stateless HS256 JWTs: there is no server-side session table and
// no revocation. An issued token stays valid until its embedded expiry
// elapses, even if the user's credentials change in the meantime. That is a
// deliberate trade-off (simplicity over revocability); deployments that need
// to cut off a user immediately must rotate SECRET_KEY, which invalidates
// every outstanding token at once.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the access-token claims: subject (username) plus expiry.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager signs and verifies tokens with a process-wide key loaded once
// at startup and never rotated during the process lifetime.
type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenManager(secretKey string, ttl time.Duration) *TokenManager {
	return &TokenManager{secretKey: []byte(secretKey), ttl: ttl}
}

// Issue creates a signed token for the subject, expiring after the
// configured TTL.
func (tm *TokenManager) Issue(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	})

	return token.SignedString(tm.secretKey)
}

// Verify checks signature and expiry and returns the embedded subject.
// Any failure (bad signature, malformed token, missing subject, expired)
// comes back as ErrInvalidToken.
func (tm *TokenManager) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return tm.secretKey, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", ErrInvalidToken
	}

	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
