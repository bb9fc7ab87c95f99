package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/ridewise/cabbook/pkg/jwtx"
	"github.com/ridewise/cabbook/pkg/slogx"
)

// TokenHeader is the fixed request field clients supply their token in.
// Every protected route accepts exactly this convention.
const TokenHeader = "x-auth-token"

// AuthnMiddleware verifies the identity token and attaches the embedded
// identity to the request context. Any verification failure collapses into
// a 401; the internal error class (malformed vs expired vs bad signature)
// goes to logs only, never to the client.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			raw := strings.TrimSpace(r.Header.Get(TokenHeader))
			if raw == "" {
				WriteError(w, http.StatusUnauthorized,
					"unauthenticated", "missing auth token")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				WriteError(w, http.StatusUnauthorized,
					"unauthenticated", "token verification failed")
				return
			}

			ctx = contextWithIdentity(ctx, claims.Subject, claims.Admin)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithIdentity(ctx context.Context, userID string, isAdmin bool) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, userID)
	ctx = context.WithValue(ctx, CtxKeyIsAdmin, isAdmin)
	return ctx
}
