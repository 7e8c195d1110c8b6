package provider

import (
	"context"

	"homeserve/models"
)

// GetByID returns the provider with the given id.
func (s *DefaultProviderService) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	return s.Repo.GetByID(ctx, id)
}

// GetByEmail returns the provider with the given email.
func (s *DefaultProviderService) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
	return s.Repo.GetByEmail(ctx, email)
}

// GetAll returns every provider, for the admin dashboard.
func (s *DefaultProviderService) GetAll(ctx context.Context) ([]models.Provider, error) {
	return s.Repo.GetAll(ctx)
}

// ListAccepted returns the providers visible to customers.
func (s *DefaultProviderService) ListAccepted(ctx context.Context) ([]models.Provider, error) {
	return s.Repo.ListByStatus(ctx, models.ProviderAccepted)
}

// Status returns the provider's current lifecycle status. The provider
// dashboard polls this on a fixed interval while waiting for approval.
func (s *DefaultProviderService) Status(ctx context.Context, email string) (models.ProviderStatus, error) {
	p, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	return p.Status, nil
}
