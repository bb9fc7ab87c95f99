package service

import (
	"time"

	"github.com/ridewise/cabbook/internal/booking/domain"
	"github.com/ridewise/cabbook/pkg/jwtx"
)

// TokenService mints and verifies stateless identity tokens. Verification
// trusts the signed claims alone; there is no revocation list, so a token
// stays valid until its embedded expiry regardless of later account state.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
}

// Issue produces a signed token embedding the user id, admin flag,
// issued-at and expiry.
func (s *TokenService) Issue(userID string, isAdmin bool) (string, error) {
	ttl := s.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultTokenTTL
	}
	claims := jwtx.NewClaims(userID, isAdmin, ttl, s.Issuer, time.Now().UTC())
	return s.Signer.Sign(claims)
}

// Verify validates a token and returns the identity it carries. Failures
// are the jwtx sentinels (ErrMalformed, ErrBadSignature, ErrExpired).
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return domain.Identity{}, err
	}
	return domain.Identity{UserID: claims.Subject, IsAdmin: claims.Admin}, nil
}
