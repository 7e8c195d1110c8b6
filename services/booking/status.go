package booking

import (
	"context"
	"strings"
	"time"

	"homeserve/models"

	"go.uber.org/zap"
)

// UpdateStatus moves the booking to target on behalf of actor. The move must
// be listed in the transition table: terminal bookings never transition
// again, and a customer may only cancel. The actor must be the booking's own
// customer or provider; admins act on any booking. Completing stamps the
// completion date. An unknown id reports not-found.
func (s *DefaultBookingService) UpdateStatus(ctx context.Context, id string, target models.BookingStatus, actor models.Role, actorEmail string) (*models.Booking, error) {
	if !target.Valid() {
		return nil, &InvalidTransitionError{To: target}
	}
	if actor == models.RoleCustomer && target != models.BookingCancelled {
		return nil, ErrActorNotAllowed
	}

	updated, err := s.Repo.Update(ctx, id, func(b *models.Booking) error {
		switch actor {
		case models.RoleCustomer:
			if !strings.EqualFold(b.CustomerEmail, actorEmail) {
				return ErrNotBookingOwner
			}
		case models.RoleProvider:
			if !strings.EqualFold(b.ProviderEmail, actorEmail) {
				return ErrNotBookingProvider
			}
		}
		if !b.Status.CanTransitionTo(target) {
			return &InvalidTransitionError{From: b.Status, To: target}
		}
		b.Status = target
		if target == models.BookingCompleted {
			now := time.Now().UTC()
			b.CompletedDate = &now
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("booking status updated",
		zap.String("booking", updated.ID),
		zap.String("status", string(updated.Status)),
		zap.String("actor", string(actor)))
	return updated, nil
}
