package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBootstrapService_EnsureAdmin(t *testing.T) {
	st := newTestStore(t)
	boot := &BootstrapService{Store: st}
	users := &UserService{Store: st}
	ctx := context.Background()

	require.NoError(t, boot.EnsureAdmin(ctx, "admin@example.com", "admin-pw"))

	admin, err := users.VerifyCredentials(ctx, "admin@example.com", "admin-pw")
	require.NoError(t, err)
	require.True(t, admin.IsAdmin)
}

func TestBootstrapService_EnsureAdmin_Idempotent(t *testing.T) {
	st := newTestStore(t)
	boot := &BootstrapService{Store: st}
	ctx := context.Background()

	require.NoError(t, boot.EnsureAdmin(ctx, "admin@example.com", "admin-pw"))

	// Second run with a different password leaves the account untouched.
	require.NoError(t, boot.EnsureAdmin(ctx, "admin@example.com", "other-pw"))

	users := &UserService{Store: st}
	_, err := users.VerifyCredentials(ctx, "admin@example.com", "admin-pw")
	require.NoError(t, err)
	_, err = users.VerifyCredentials(ctx, "admin@example.com", "other-pw")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestBootstrapService_EnsureAdmin_ExistingUserKeepsRole(t *testing.T) {
	st := newTestStore(t)
	users := &UserService{Store: st}
	boot := &BootstrapService{Store: st}
	ctx := context.Background()

	created, err := users.Register(ctx, "taken@example.com", "user-pw")
	require.NoError(t, err)

	// Bootstrap against an email already held by a regular user is a no-op,
	// it never promotes the existing account.
	require.NoError(t, boot.EnsureAdmin(ctx, "taken@example.com", "admin-pw"))

	fetched, err := users.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.False(t, fetched.IsAdmin)
}

func TestBootstrapService_EnsureAdmin_SkippedWithoutEmail(t *testing.T) {
	boot := &BootstrapService{Store: newTestStore(t)}
	require.NoError(t, boot.EnsureAdmin(context.Background(), "", "ignored"))
}
