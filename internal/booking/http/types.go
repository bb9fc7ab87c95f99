package http

import (
	"errors"
	"net/mail"
	"time"

	"github.com/ridewise/cabbook/internal/booking/domain"
)

// Request bodies are validated once here, at the boundary, before anything
// reaches a service.

const minPasswordLength = 6

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return errors.New("email is not valid")
	}
	if len(r.Password) < minPasswordLength {
		return errors.New("password must be at least 6 characters")
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) Validate() error {
	if r.Email == "" {
		return errors.New("email is required")
	}
	if r.Password == "" {
		return errors.New("password is required")
	}
	return nil
}

type tokenResponse struct {
	Token string `json:"token"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserResponse(u domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}

type cityCreateRequest struct {
	Name      string `json:"name"`
	Available *bool  `json:"available"`
}

func (r cityCreateRequest) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}
	return nil
}

type cityUpdateRequest struct {
	Name      *string `json:"name"`
	Available *bool   `json:"available"`
}

func (r cityUpdateRequest) Validate() error {
	if r.Name == nil && r.Available == nil {
		return errors.New("nothing to update")
	}
	if r.Name != nil && *r.Name == "" {
		return errors.New("name must not be empty")
	}
	return nil
}

type cityResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

func newCityResponse(c domain.City) cityResponse {
	return cityResponse{ID: c.ID, Name: c.Name, Available: c.Available}
}

type bookingCreateRequest struct {
	TripType      string     `json:"tripType"`
	FromCity      string     `json:"fromCity"`
	ToCity        string     `json:"toCity"`
	DepartureDate time.Time  `json:"departureDate"`
	ReturnDate    *time.Time `json:"returnDate"`
	PickupTime    string     `json:"pickupTime"`
}

func (r bookingCreateRequest) Validate() error {
	if r.TripType == "" {
		return errors.New("tripType is required")
	}
	if r.FromCity == "" {
		return errors.New("fromCity is required")
	}
	if r.ToCity == "" {
		return errors.New("toCity is required")
	}
	if r.DepartureDate.IsZero() {
		return errors.New("departureDate is required")
	}
	if r.PickupTime == "" {
		return errors.New("pickupTime is required")
	}
	return nil
}

type bookingStatusRequest struct {
	Status string `json:"status"`
}

func (r bookingStatusRequest) Validate() error {
	if r.Status == "" {
		return errors.New("status is required")
	}
	return nil
}

type bookingResponse struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	UserEmail     string     `json:"userEmail,omitempty"`
	TripType      string     `json:"tripType"`
	FromCity      string     `json:"fromCity"`
	ToCity        string     `json:"toCity"`
	DepartureDate time.Time  `json:"departureDate"`
	ReturnDate    *time.Time `json:"returnDate,omitempty"`
	PickupTime    string     `json:"pickupTime"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
}

func newBookingResponse(b domain.Booking) bookingResponse {
	return bookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		TripType:      b.TripType,
		FromCity:      b.FromCity,
		ToCity:        b.ToCity,
		DepartureDate: b.DepartureDate,
		ReturnDate:    b.ReturnDate,
		PickupTime:    b.PickupTime,
		Status:        b.Status,
		CreatedAt:     b.CreatedAt,
	}
}

func newBookingWithUserResponse(bw domain.BookingWithUser) bookingResponse {
	resp := newBookingResponse(bw.Booking)
	resp.UserEmail = bw.UserEmail
	return resp
}
