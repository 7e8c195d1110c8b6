package booking

import (
	"context"

	"homeserve/models"
)

// CustomerViews returns the customer's bookings split into upcoming and past.
func (s *DefaultBookingService) CustomerViews(ctx context.Context, customerEmail string) (*BookingViews, error) {
	items, err := s.Repo.ListByCustomer(ctx, customerEmail)
	if err != nil {
		return nil, err
	}
	return splitViews(items), nil
}

// ProviderViews returns the provider's bookings split into upcoming and past.
// Bookings are only served once the provider has accepted their service.
func (s *DefaultBookingService) ProviderViews(ctx context.Context, providerEmail string) (*BookingViews, error) {
	prov, err := s.Providers.GetByEmail(ctx, providerEmail)
	if err != nil {
		return nil, err
	}
	if !prov.CanReceiveBookings() {
		return nil, ErrProviderNotAccepting
	}

	items, err := s.Repo.ListByProvider(ctx, providerEmail)
	if err != nil {
		return nil, err
	}
	return splitViews(items), nil
}

// splitViews derives the upcoming/past partition and the per-status counters.
// "Past" is exactly the terminal states; "upcoming" is the complement.
func splitViews(items []models.Booking) *BookingViews {
	views := &BookingViews{}
	for _, b := range items {
		if b.Past() {
			views.Past = append(views.Past, b)
		} else {
			views.Upcoming = append(views.Upcoming, b)
		}
		switch b.Status {
		case models.BookingPending:
			views.Stats.Pending++
		case models.BookingConfirmed:
			views.Stats.Confirmed++
		case models.BookingCompleted:
			views.Stats.Completed++
		case models.BookingCancelled:
			views.Stats.Cancelled++
		}
	}
	return views
}
