package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ridewise/cabbook/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-for-middleware-tests")

func newVerifier(t *testing.T) jwtx.Verifier {
	t.Helper()
	v, err := jwtx.NewVerifierHS256(testSecret, "")
	require.NoError(t, err)
	return v
}

func signToken(t *testing.T, userID string, admin bool, ttl time.Duration) string {
	t.Helper()
	s, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	token, err := s.Sign(jwtx.NewClaims(userID, admin, ttl, "", time.Now().UTC()))
	require.NoError(t, err)
	return token
}

func TestAuthnMiddleware_MissingHeader(t *testing.T) {
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}), AuthnMiddleware(newVerifier(t)))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "unauthenticated")
}

func TestAuthnMiddleware_InvalidToken(t *testing.T) {
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}), AuthnMiddleware(newVerifier(t)))

	for _, token := range []string{"garbage", signToken(t, "u1", false, -time.Minute)} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(TokenHeader, token)

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}

func TestAuthnMiddleware_AttachesIdentity(t *testing.T) {
	var gotUserID string
	var gotAdmin bool
	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID = UserIDFromCtx(r.Context())
		gotAdmin = IsAdminFromCtx(r.Context())
		w.WriteHeader(http.StatusOK)
	}), AuthnMiddleware(newVerifier(t)))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(TokenHeader, signToken(t, "user-42", true, time.Hour))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "user-42", gotUserID)
	require.True(t, gotAdmin)
}

func TestRequireAdmin(t *testing.T) {
	verifier := newVerifier(t)

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), AuthnMiddleware(verifier), RequireAdmin())

	// Valid non-admin token is authenticated but not authorized.
	req := httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(TokenHeader, signToken(t, "user-1", false, time.Hour))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusForbidden, rec.Code)
	require.Contains(t, rec.Body.String(), "forbidden")

	// Admin token passes through.
	req = httptest.NewRequest(http.MethodPost, "/admin", nil)
	req.Header.Set(TokenHeader, signToken(t, "user-2", true, time.Hour))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	cfg := RateLimitConfig{RequestsPerWindow: 2, Window: time.Minute, Burst: 2}

	handler := Chain(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}), RateLimitByIP(cfg))

	makeReq := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		req.RemoteAddr = "192.0.2.1:4000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	require.Equal(t, http.StatusOK, makeReq().Code)
	require.Equal(t, http.StatusOK, makeReq().Code)

	rec := makeReq()
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// A different client is not affected.
	req := httptest.NewRequest(http.MethodGet, "/limited", nil)
	req.RemoteAddr = "192.0.2.2:4000"
	other := httptest.NewRecorder()
	handler.ServeHTTP(other, req)
	require.Equal(t, http.StatusOK, other.Code)
}
