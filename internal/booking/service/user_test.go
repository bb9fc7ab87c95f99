package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/ridewise/cabbook/internal/booking/store"
	"github.com/ridewise/cabbook/internal/booking/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestStore spins up a migrated sqlite store in a temp directory.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s", filepath.Join(t.TempDir(), "test.db"))
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

func TestUserService_RegisterAndVerify(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	created, err := svc.Register(ctx, "rider@example.com", "pw123456")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "rider@example.com", created.Email)
	require.False(t, created.IsAdmin)
	require.NotEqual(t, "pw123456", created.PasswordHash)

	verified, err := svc.VerifyCredentials(ctx, "rider@example.com", "pw123456")
	require.NoError(t, err)
	require.Equal(t, created.ID, verified.ID)

	fetched, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, created.Email, fetched.Email)
}

func TestUserService_DuplicateEmail(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Register(ctx, "taken@example.com", "first-pw")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "taken@example.com", "second-pw")
	require.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestUserService_EmailIsCaseSensitive(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Register(ctx, "Case@example.com", "pw123456")
	require.NoError(t, err)

	// Exact matching: a differently-cased email is a distinct account.
	_, err = svc.Register(ctx, "case@example.com", "pw123456")
	require.NoError(t, err)

	_, err = svc.VerifyCredentials(ctx, "CASE@example.com", "pw123456")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_InvalidCredentials(t *testing.T) {
	svc := &UserService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := svc.Register(ctx, "known@example.com", "right-pw")
	require.NoError(t, err)

	// Unknown email and wrong password must be indistinguishable.
	_, unknownErr := svc.VerifyCredentials(ctx, "nobody@example.com", "right-pw")
	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)

	_, wrongErr := svc.VerifyCredentials(ctx, "known@example.com", "wrong-pw")
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)

	require.Equal(t, unknownErr, wrongErr)
}
