package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation indicates input that violates request policy.
	ErrValidation = errors.New("validation failed")
	// ErrConflict indicates a uniqueness violation in the store.
	ErrConflict = errors.New("already exists")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized indicates a missing or rejected bearer token.
	ErrUnauthorized = errors.New("unauthorized")
)
