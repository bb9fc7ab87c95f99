package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ridewise/cabbook/internal/booking/domain"
	"github.com/ridewise/cabbook/internal/booking/store"
	"github.com/ridewise/cabbook/pkg/cryptox"
	"github.com/ridewise/cabbook/pkg/idx"
	"github.com/ridewise/cabbook/pkg/slogx"
)

type BootstrapService struct {
	Store store.Store
}

// EnsureAdmin makes sure an admin account exists for the configured email.
// Idempotent: when a user with that email is already present (admin or
// not), nothing happens. Running two processes against the same store is
// safe, the unique email index means at most one insert wins and the loser
// treats the conflict as success.
func (s *BootstrapService) EnsureAdmin(ctx context.Context, email, password string) error {
	l := slogx.FromContext(ctx)

	if email == "" {
		l.Info("admin bootstrap skipped: no admin email configured")
		return nil
	}

	_, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err == nil {
		l.Info("admin bootstrap: account already present")
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return err
	}

	admin := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      true,
	}

	if err := s.Store.Users().CreateUser(ctx, admin); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// Lost the race to another process; the account exists, which
			// is all we wanted.
			l.Info("admin bootstrap: account created concurrently")
			return nil
		}
		return err
	}

	l.Info("admin bootstrap: account created", slog.String("user_id", admin.ID))
	return nil
}
