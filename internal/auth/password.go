package auth

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/concord-mediation/concord/internal/shared"
)

// MinPasswordLength is the shortest password accepted at registration,
// counted in characters rather than bytes.
const MinPasswordLength = 6

// maxPasswordBytes is the longest input bcrypt will hash.
const maxPasswordBytes = 72

// hashCost is the bcrypt work factor. It is embedded in every produced hash,
// so it can be raised later without migrating stored credentials.
const hashCost = 10

// ErrCorruptCredential indicates a stored hash bcrypt cannot parse.
var ErrCorruptCredential = errors.New("auth: corrupt stored credential")

// CredentialService turns raw passwords into bcrypt hashes and checks raw
// passwords against stored hashes. Raw passwords are never persisted or
// logged.
type CredentialService struct {
	cost int
}

// NewCredentialService constructs a CredentialService with the default cost.
func NewCredentialService() *CredentialService {
	return &CredentialService{cost: hashCost}
}

// Hash produces a salted bcrypt hash of raw. Each call salts independently,
// so hashing the same password twice yields different strings.
func (s *CredentialService) Hash(raw string) (string, error) {
	if utf8.RuneCountInString(raw) < MinPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", shared.ErrValidation, MinPasswordLength)
	}
	if len(raw) > maxPasswordBytes {
		return "", fmt.Errorf("%w: password must be at most %d bytes", shared.ErrValidation, maxPasswordBytes)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), s.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether raw matches stored. A wrong password is a normal
// false; only an unparseable stored hash is an error.
func (s *CredentialService) Verify(raw, stored string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(raw))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrCorruptCredential, err)
	}
}
