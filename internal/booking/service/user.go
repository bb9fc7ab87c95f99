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

var (
	// ErrDuplicateEmail reports a registration against a taken email.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// The two cases must stay indistinguishable to callers.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService struct {
	Store store.Store
}

// Register creates a user with a hashed password. Email matching is exact
// and case-sensitive; the store's unique index arbitrates races, so two
// concurrent registrations for one email yield exactly one success.
func (s *UserService) Register(ctx context.Context, email, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		l.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		IsAdmin:      false,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrDuplicateEmail
		}
		return domain.User{}, err
	}

	l.Info("user registered", slog.String("user_id", u.ID))
	return u, nil
}

// VerifyCredentials checks an email/password pair against the store. Both
// "no such user" and "wrong password" come back as ErrInvalidCredentials.
// The hash comparison is constant-time with respect to the stored hash.
func (s *UserService) VerifyCredentials(ctx context.Context, email, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		return domain.User{}, ErrInvalidCredentials
	}

	return u, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}
