package domain

import "time"

// City is a serviceable location. Name is unique; Available toggles whether
// new bookings may reference it.
type City struct {
	ID        string
	Name      string
	Available bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
