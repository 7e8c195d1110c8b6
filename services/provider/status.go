package provider

import (
	"context"

	"homeserve/models"

	"go.uber.org/zap"
)

// Decide applies the administrative status decision. The decision is
// reversible (an admin may re-decide at will) and idempotent: re-applying the
// current status changes nothing observable.
func (s *DefaultProviderService) Decide(ctx context.Context, id string, status models.ProviderStatus) (*models.Provider, error) {
	if !status.AdminAssignable() {
		return nil, ErrStatusNotAssignable
	}

	updated, err := s.Repo.UpdateByID(ctx, id, func(p *models.Provider) error {
		if p.Status == status {
			return nil
		}
		zap.L().Info("provider status decided",
			zap.String("provider", p.Email),
			zap.String("from", string(p.Status)),
			zap.String("to", string(status)))
		p.Status = status
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// AcceptService records the provider's opt-in to receive bookings. Only an
// approved provider may accept; accepting twice is a no-op.
func (s *DefaultProviderService) AcceptService(ctx context.Context, email string) (*models.Provider, error) {
	return s.Repo.UpdateByEmail(ctx, email, func(p *models.Provider) error {
		switch p.Status {
		case models.ProviderAccepted:
			return nil
		case models.ProviderApproved:
			p.Status = models.ProviderAccepted
			return nil
		default:
			return ErrNotApproved
		}
	})
}

// AttachDocument stores the uploaded qualification document reference on the
// provider record.
func (s *DefaultProviderService) AttachDocument(ctx context.Context, email, documentURL string) (*models.Provider, error) {
	return s.Repo.UpdateByEmail(ctx, email, func(p *models.Provider) error {
		p.DocumentURL = documentURL
		return nil
	})
}
