package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID  ctxKey = "user_id"
	CtxKeyIsAdmin ctxKey = "is_admin"
)

// UserIDFromCtx returns the authenticated user id, or "" when the request
// never passed the authentication middleware.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// IsAdminFromCtx reports whether the authenticated identity carries the
// admin flag. False for unauthenticated requests.
func IsAdminFromCtx(ctx context.Context) bool {
	if v, ok := ctx.Value(CtxKeyIsAdmin).(bool); ok {
		return v
	}
	return false
}
