package mediations

import (
	"context"
	"time"
)

// Service handles mediation business logic.
type Service struct {
	repo RepositoryPort
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort) *Service {
	return &Service{repo: repo}
}

// CreateInput carries the fields required to open a mediation case.
type CreateInput struct {
	Name        string
	Description string
	Date        time.Time
	Status      string
}

// Create stores a new mediation record.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Mediation, error) {
	return s.repo.Insert(ctx, Mediation{
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		Status:      in.Status,
	})
}

// Get returns one mediation by id.
func (s *Service) Get(ctx context.Context, id string) (*Mediation, error) {
	return s.repo.FindByID(ctx, id)
}

// List returns all mediations.
func (s *Service) List(ctx context.Context) ([]Mediation, error) {
	return s.repo.List(ctx)
}

// UpdateInput carries optional field changes.
type UpdateInput struct {
	Name        *string
	Description *string
	Date        *time.Time
	Status      *string
}

// Update applies the provided changes to an existing mediation.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*Mediation, error) {
	return s.repo.UpdateByID(ctx, id, Update{
		Name:        in.Name,
		Description: in.Description,
		Date:        in.Date,
		Status:      in.Status,
	})
}

// Delete removes a mediation and returns the removed record.
func (s *Service) Delete(ctx context.Context, id string) (*Mediation, error) {
	return s.repo.DeleteByID(ctx, id)
}
