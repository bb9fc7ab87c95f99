package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is the default lifetime for identity tokens. Bookings are
// made from phones on flaky connections, so sessions last a day rather than
// the short-lived tokens an OAuth2 deployment would use.
const DefaultTokenTTL = 24 * time.Hour

// Claims are the identity-token claims. The token is stateless: verifiers
// trust these values by signature alone and never re-check the store.
type Claims struct {
	jwt.RegisteredClaims

	// Admin marks the subject as having admin privileges.
	Admin bool `json:"adm,omitempty"`
}

// NewClaims builds minimally-correct identity claims for a user.
func NewClaims(subject string, admin bool, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Admin: admin,
	}
}
