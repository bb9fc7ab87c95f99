package domain

import "time"

// User is an account record. Email is the unique, case-sensitive login
// identifier. Records are effectively immutable after creation; there is no
// password-change flow in the current scope.
type User struct {
	ID           string
	Email        string
	PasswordHash string // argon2id encoded, never exposed outside the store/service layers
	IsAdmin      bool
	CreatedAt    time.Time
}

// Identity is the per-request identity derived from a verified token. It is
// owned by the request that produced it and discarded with the response.
type Identity struct {
	UserID  string
	IsAdmin bool
}
