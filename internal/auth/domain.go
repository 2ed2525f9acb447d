package auth

import (
	"time"

	"github.com/concord-mediation/concord/internal/shared"
)

// Reason classifies why a token was rejected. The distinction is kept for
// logging; clients always receive the same unauthorized response.
type Reason string

const (
	ReasonMissing          Reason = "missing"
	ReasonMalformed        Reason = "malformed"
	ReasonInvalidSignature Reason = "invalid_signature"
	ReasonExpired          Reason = "expired"
)

// Error is a token verification failure.
type Error struct {
	Reason Reason
}

func (e *Error) Error() string { return "auth: token " + string(e.Reason) }

// Unwrap collapses every verification failure to shared.ErrUnauthorized so
// the HTTP layer maps them uniformly.
func (e *Error) Unwrap() error { return shared.ErrUnauthorized }

// Identity is the claim set decoded from a verified token. It carries no
// credential material.
type Identity struct {
	UserID    string
	Email     string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// User is an account row as the auth flows read it.
type User struct {
	ID             string
	Name           string
	Email          string
	PasswordHash   string
	RegisteredDate time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
