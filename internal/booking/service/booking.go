package service

import (
	"context"
	"errors"
	"time"

	"github.com/ridewise/cabbook/internal/booking/domain"
	"github.com/ridewise/cabbook/internal/booking/store"
	"github.com/ridewise/cabbook/pkg/idx"
)

var (
	// ErrInvalidTripType reports an unsupported trip type.
	ErrInvalidTripType = errors.New("invalid trip type")

	// ErrInvalidStatus reports an unrecognised booking status.
	ErrInvalidStatus = errors.New("invalid booking status")
)

type BookingService struct {
	Store store.Store
}

// BookingInput carries the caller-supplied fields for a new booking. The
// HTTP boundary has already checked presence; domain rules live here.
type BookingInput struct {
	TripType      string
	FromCity      string
	ToCity        string
	DepartureDate time.Time
	ReturnDate    *time.Time
	PickupTime    string
}

// CreateBooking records a trip request owned by userID. New bookings always
// start pending.
func (s *BookingService) CreateBooking(ctx context.Context, userID string, in BookingInput) (domain.Booking, error) {
	if !domain.ValidTripType(in.TripType) {
		return domain.Booking{}, ErrInvalidTripType
	}

	b := domain.Booking{
		ID:            idx.New().String(),
		UserID:        userID,
		TripType:      in.TripType,
		FromCity:      in.FromCity,
		ToCity:        in.ToCity,
		DepartureDate: in.DepartureDate,
		ReturnDate:    in.ReturnDate,
		PickupTime:    in.PickupTime,
		Status:        domain.StatusPending,
	}

	if err := s.Store.Bookings().CreateBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	return s.Store.Bookings().GetBookingByID(ctx, b.ID)
}

// ListBookings returns the bookings visible to the caller: admins see every
// booking with the owner's email, users only their own.
func (s *BookingService) ListBookings(ctx context.Context, ident domain.Identity) ([]domain.BookingWithUser, error) {
	if ident.IsAdmin {
		return s.Store.Bookings().ListAllBookings(ctx)
	}

	own, err := s.Store.Bookings().ListBookingsByUser(ctx, ident.UserID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.BookingWithUser, len(own))
	for i, b := range own {
		out[i] = domain.BookingWithUser{Booking: b}
	}
	return out, nil
}

// GetBooking fetches a booking the caller may see. Requests for another
// user's booking come back as store.ErrNotFound so existence never leaks.
func (s *BookingService) GetBooking(ctx context.Context, id string, ident domain.Identity) (domain.Booking, error) {
	b, err := s.Store.Bookings().GetBookingByID(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if !ident.IsAdmin && b.UserID != ident.UserID {
		return domain.Booking{}, store.ErrNotFound
	}
	return b, nil
}

// UpdateStatus moves a booking to a new status. Admin-only; the router
// enforces that before this runs.
func (s *BookingService) UpdateStatus(ctx context.Context, id, status string) (domain.Booking, error) {
	if !domain.ValidStatus(status) {
		return domain.Booking{}, ErrInvalidStatus
	}
	if err := s.Store.Bookings().UpdateBookingStatus(ctx, id, status); err != nil {
		return domain.Booking{}, err
	}
	return s.Store.Bookings().GetBookingByID(ctx, id)
}

// DeleteBooking removes a booking the caller owns (or any booking for an
// admin). Non-owned bookings come back as store.ErrNotFound.
func (s *BookingService) DeleteBooking(ctx context.Context, id string, ident domain.Identity) error {
	b, err := s.Store.Bookings().GetBookingByID(ctx, id)
	if err != nil {
		return err
	}
	if !ident.IsAdmin && b.UserID != ident.UserID {
		return store.ErrNotFound
	}
	return s.Store.Bookings().DeleteBooking(ctx, id)
}
