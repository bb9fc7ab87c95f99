package httpx

import "net/http"

// RequireAdmin rejects callers whose identity lacks the admin flag. It must
// sit after AuthnMiddleware in the chain; it never sees an unauthenticated
// request.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !IsAdminFromCtx(r.Context()) {
				WriteError(w, http.StatusForbidden,
					"forbidden", "admin privileges required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
