package service

import (
	"testing"
	"time"

	"github.com/ridewise/cabbook/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func newTokenService(t *testing.T, ttl time.Duration) *TokenService {
	t.Helper()

	secret := []byte("token-service-test-secret-value")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(secret, "cabbook-test")
	require.NoError(t, err)

	return &TokenService{Signer: signer, Verifier: verifier, Issuer: "cabbook-test", TTL: ttl}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTokenService(t, time.Hour)

	token, err := svc.Issue("user-abc", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ident, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-abc", ident.UserID)
	require.True(t, ident.IsAdmin)
}

func TestTokenService_NonAdminIdentity(t *testing.T) {
	svc := newTokenService(t, time.Hour)

	token, err := svc.Issue("user-def", false)
	require.NoError(t, err)

	ident, err := svc.Verify(token)
	require.NoError(t, err)
	require.False(t, ident.IsAdmin)
}

func TestTokenService_ExpiredToken(t *testing.T) {
	svc := newTokenService(t, -time.Minute)

	token, err := svc.Issue("user-abc", false)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestTokenService_GarbageToken(t *testing.T) {
	svc := newTokenService(t, time.Hour)

	_, err := svc.Verify("not-a-token")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}
