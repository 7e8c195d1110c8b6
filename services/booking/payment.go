package booking

import (
	"context"
	"strings"
	"time"

	"homeserve/models"

	"go.uber.org/zap"
)

// paymentProcessingDelay imitates the settlement round-trip of a real
// processor. The simulated payment always succeeds.
const paymentProcessingDelay = 1500 * time.Millisecond

// Pay runs the simulated payment for a pending booking owned by the given
// customer: after the artificial delay it marks the booking paid and confirms
// it through the regular transition table. The operation cannot be cancelled
// once the delay has elapsed; before that, context cancellation aborts it
// without touching the record.
func (s *DefaultBookingService) Pay(ctx context.Context, id, customerEmail string) (*models.Booking, error) {
	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(current.CustomerEmail, customerEmail) {
		return nil, ErrNotBookingOwner
	}
	if current.IsPaid {
		return nil, ErrAlreadyPaid
	}
	if !current.Status.CanTransitionTo(models.BookingConfirmed) {
		return nil, &InvalidTransitionError{From: current.Status, To: models.BookingConfirmed}
	}

	timer := time.NewTimer(paymentProcessingDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-timer.C:
	}

	updated, err := s.Repo.Update(ctx, id, func(b *models.Booking) error {
		if b.IsPaid {
			return ErrAlreadyPaid
		}
		if !b.Status.CanTransitionTo(models.BookingConfirmed) {
			return &InvalidTransitionError{From: b.Status, To: models.BookingConfirmed}
		}
		b.IsPaid = true
		b.Status = models.BookingConfirmed
		return nil
	})
	if err != nil {
		return nil, err
	}

	zap.L().Info("booking paid",
		zap.String("booking", updated.ID),
		zap.String("method", string(updated.PaymentMethod)))
	return updated, nil
}
