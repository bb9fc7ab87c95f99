package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testIssuer = "cabbook-test"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestPair(t *testing.T) (*HS256Signer, *HS256Verifier) {
	t.Helper()

	signer, err := NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := NewVerifierHS256(testSecret, testIssuer)
	require.NoError(t, err)
	return signer, verifier
}

func TestNewSignerHS256_EmptySecret(t *testing.T) {
	_, err := NewSignerHS256(nil)
	require.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewVerifierHS256([]byte{}, testIssuer)
	require.ErrorIs(t, err, ErrEmptySecret)
}

func TestHS256_RoundTrip(t *testing.T) {
	signer, verifier := newTestPair(t)

	now := time.Now().UTC()
	token, err := signer.Sign(NewClaims("user-123", true, time.Hour, testIssuer, now))
	require.NoError(t, err)
	require.Len(t, strings.Split(token, "."), 3)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.Subject)
	require.True(t, claims.Admin)
	require.Equal(t, testIssuer, claims.Issuer)
	require.WithinDuration(t, now.Add(time.Hour), claims.ExpiresAt.Time, 2*time.Second)
}

func TestHS256_NonAdminClaims(t *testing.T) {
	signer, verifier := newTestPair(t)

	token, err := signer.Sign(NewClaims("user-456", false, time.Hour, testIssuer, time.Now().UTC()))
	require.NoError(t, err)

	claims, err := verifier.Verify(token)
	require.NoError(t, err)
	require.False(t, claims.Admin)
}

func TestHS256_Expired(t *testing.T) {
	signer, verifier := newTestPair(t)

	// Already past expiry at issue time
	token, err := signer.Sign(NewClaims("user-123", false, -time.Minute, testIssuer, time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrExpired)
}

func TestHS256_BitFlippedSignature(t *testing.T) {
	signer, verifier := newTestPair(t)

	token, err := signer.Sign(NewClaims("user-123", false, time.Hour, testIssuer, time.Now().UTC()))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Swap one character of the signature for a different valid base64url
	// character, flipping at least one bit.
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = verifier.Verify(tampered)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestHS256_TamperedPayload(t *testing.T) {
	signer, verifier := newTestPair(t)

	token, err := signer.Sign(NewClaims("user-123", false, time.Hour, testIssuer, time.Now().UTC()))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = verifier.Verify(tampered)
	require.Error(t, err)
}

func TestHS256_WrongSecret(t *testing.T) {
	signer, _ := newTestPair(t)

	otherVerifier, err := NewVerifierHS256([]byte("a completely different secret!!!"), testIssuer)
	require.NoError(t, err)

	token, err := signer.Sign(NewClaims("user-123", false, time.Hour, testIssuer, time.Now().UTC()))
	require.NoError(t, err)

	_, err = otherVerifier.Verify(token)
	require.ErrorIs(t, err, ErrBadSignature)
}

func TestHS256_Malformed(t *testing.T) {
	_, verifier := newTestPair(t)

	for _, tok := range []string{"", "garbage", "a.b", "a.b.c.d", "not a token at all"} {
		_, err := verifier.Verify(tok)
		require.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestHS256_IssuerMismatch(t *testing.T) {
	signer, verifier := newTestPair(t)

	token, err := signer.Sign(NewClaims("user-123", false, time.Hour, "someone-else", time.Now().UTC()))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidClaim)
}
