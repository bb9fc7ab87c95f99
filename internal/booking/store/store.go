package store

import (
	"context"
	"errors"

	"github.com/ridewise/cabbook/internal/booking/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Cities() Cities
	Bookings() Bookings

	ApplyMigrations() error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks a user up by the exact (case-sensitive) email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when the email is taken; the unique index is
	// the only arbiter, so concurrent registrations race safely.
	CreateUser(ctx context.Context, u domain.User) error
}

type Cities interface {
	// GetCityByID returns a city by id.
	GetCityByID(ctx context.Context, id string) (domain.City, error)

	// ListCities returns all cities ordered by name.
	ListCities(ctx context.Context) ([]domain.City, error)

	// CreateCity inserts a new city. Returns ErrAlreadyExists on a
	// duplicate name.
	CreateCity(ctx context.Context, c domain.City) error

	// UpdateCity replaces name and available for an existing city and bumps
	// updated_at. Returns ErrNotFound when the id is unknown.
	UpdateCity(ctx context.Context, c domain.City) error

	// DeleteCity removes a city. Returns ErrNotFound when the id is unknown.
	DeleteCity(ctx context.Context, id string) error
}

type Bookings interface {
	// GetBookingByID returns a booking by id.
	GetBookingByID(ctx context.Context, id string) (domain.Booking, error)

	// ListBookingsByUser returns a user's bookings, newest first.
	ListBookingsByUser(ctx context.Context, userID string) ([]domain.Booking, error)

	// ListAllBookings returns every booking with the owner's email, newest
	// first. Admin-only view.
	ListAllBookings(ctx context.Context) ([]domain.BookingWithUser, error)

	// CreateBooking inserts a new booking.
	CreateBooking(ctx context.Context, b domain.Booking) error

	// UpdateBookingStatus sets the status and bumps updated_at. Returns
	// ErrNotFound when the id is unknown.
	UpdateBookingStatus(ctx context.Context, id, status string) error

	// DeleteBooking removes a booking. Returns ErrNotFound when the id is
	// unknown.
	DeleteBooking(ctx context.Context, id string) error
}
