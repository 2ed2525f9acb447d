package users

import (
	"context"
	"time"

	"github.com/concord-mediation/concord/internal/auth"
)

// Service handles user business logic.
type Service struct {
	repo        RepositoryPort
	credentials *auth.CredentialService
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, credentials *auth.CredentialService) *Service {
	return &Service{repo: repo, credentials: credentials}
}

// CreateInput carries the fields required to register a user.
type CreateInput struct {
	Name           string
	Email          string
	Password       string
	RegisteredDate time.Time
	Status         string
}

// Create hashes the password and stores the user. The raw password never
// leaves this call.
func (s *Service) Create(ctx context.Context, in CreateInput) (*User, error) {
	hash, err := s.credentials.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	return s.repo.Insert(ctx, User{
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   hash,
		RegisteredDate: in.RegisteredDate,
		Status:         in.Status,
	})
}

// Get returns one user by id.
func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

// UpdateInput carries optional field changes. A non-nil Password is policy
// checked and re-hashed before it reaches the store.
type UpdateInput struct {
	Name           *string
	Email          *string
	Password       *string
	RegisteredDate *time.Time
	Status         *string
}

// Update applies the provided changes to an existing user.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*User, error) {
	update := Update{
		Name:           in.Name,
		Email:          in.Email,
		RegisteredDate: in.RegisteredDate,
		Status:         in.Status,
	}
	if in.Password != nil {
		hash, err := s.credentials.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		update.PasswordHash = &hash
	}
	return s.repo.UpdateByID(ctx, id, update)
}

// Delete removes a user and returns the removed record.
func (s *Service) Delete(ctx context.Context, id string) (*User, error) {
	return s.repo.DeleteByID(ctx, id)
}
