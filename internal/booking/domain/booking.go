package domain

import "time"

// Trip types a booking can be made for.
const (
	TripOneWay    = "one-way"
	TripRoundTrip = "round-trip"
	TripAirport   = "airport"
	TripHourly    = "hourly"
)

// Booking statuses. New bookings start pending; only admins move them.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Booking is a trip request owned by a user.
type Booking struct {
	ID            string
	UserID        string
	TripType      string
	FromCity      string
	ToCity        string
	DepartureDate time.Time
	ReturnDate    *time.Time // only meaningful for round trips
	PickupTime    string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BookingWithUser pairs a booking with its owner's email for admin listings.
type BookingWithUser struct {
	Booking

	UserEmail string
}

// ValidTripType reports whether s is one of the supported trip types.
func ValidTripType(s string) bool {
	switch s {
	case TripOneWay, TripRoundTrip, TripAirport, TripHourly:
		return true
	}
	return false
}

// ValidStatus reports whether s is a recognised booking status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
