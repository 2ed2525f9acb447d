package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime when the caller does not override it.
const DefaultTTL = time.Hour

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// TokenAuthority mints and validates HS256 bearer tokens. The secret is
// process-wide, read-only configuration; the authority holds no other state,
// so concurrent Issue and Verify calls are safe.
type TokenAuthority struct {
	secret []byte
	now    func() time.Time
}

// NewTokenAuthority constructs a TokenAuthority signing with secret.
func NewTokenAuthority(secret string) *TokenAuthority {
	return &TokenAuthority{secret: []byte(secret), now: time.Now}
}

// Issue signs a token for identity. A non-positive ttl falls back to
// DefaultTTL. The signature covers claims and expiry, so any tampering
// invalidates the token.
func (a *TokenAuthority) Issue(identity Identity, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := a.now()
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID: identity.UserID,
		Email:  identity.Email,
		Name:   identity.Name,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a signed token and returns the embedded
// identity. Failures carry a Reason; all of them unwrap to
// shared.ErrUnauthorized.
func (a *TokenAuthority) Verify(token string) (Identity, error) {
	if token == "" {
		return Identity{}, &Error{Reason: ReasonMissing}
	}
	var claims tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return a.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(a.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Identity{}, &Error{Reason: ReasonExpired}
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Identity{}, &Error{Reason: ReasonInvalidSignature}
		default:
			return Identity{}, &Error{Reason: ReasonMalformed}
		}
	}
	if !parsed.Valid {
		return Identity{}, &Error{Reason: ReasonInvalidSignature}
	}

	identity := Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
		Name:   claims.Name,
	}
	if claims.IssuedAt != nil {
		identity.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		identity.ExpiresAt = claims.ExpiresAt.Time
	}
	return identity, nil
}
