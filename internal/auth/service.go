package auth

import (
	"context"
	"errors"
	"time"

	"github.com/concord-mediation/concord/internal/shared"
)

// Service wraps the login flow on top of the credential and token layers.
type Service struct {
	repo        Repository
	credentials *CredentialService
	tokens      *TokenAuthority
	ttl         time.Duration
}

// NewService constructs a new Service. A non-positive ttl means DefaultTTL.
func NewService(repo Repository, credentials *CredentialService, tokens *TokenAuthority, ttl time.Duration) *Service {
	return &Service{repo: repo, credentials: credentials, tokens: tokens, ttl: ttl}
}

// Login validates email/password credentials and issues a token. Unknown
// email and wrong password return the same error so responses cannot be used
// to enumerate accounts.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", nil, shared.ErrInvalidCredentials
		}
		return "", nil, err
	}
	ok, err := s.credentials.Verify(password, user.PasswordHash)
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, shared.ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(Identity{UserID: user.ID, Email: user.Email, Name: user.Name}, s.ttl)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// CurrentUser resolves a verified identity back to its stored account.
func (s *Service) CurrentUser(ctx context.Context, identity Identity) (*User, error) {
	return s.repo.FindByID(ctx, identity.UserID)
}
