package bookingRepo

import (
	"context"
	"strings"
	"time"

	"homeserve/models"

	"github.com/google/uuid"
)

// Append inserts a new booking record, never overwriting existing ones.
func (r *recordBookingRepo) Append(ctx context.Context, booking *models.Booking) error {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CustomerEmail = strings.ToLower(strings.TrimSpace(booking.CustomerEmail))
	booking.ProviderEmail = strings.ToLower(strings.TrimSpace(booking.ProviderEmail))
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.Mutate(ctx, func(items []models.Booking) ([]models.Booking, error) {
		return append(items, *booking), nil
	})
	return err
}

// GetByID returns the booking with the given id.
func (r *recordBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	items, _, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// GetAll returns every booking record.
func (r *recordBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	items, _, err := r.coll.Load(ctx)
	return items, err
}

// ListByCustomer returns the bookings created by the given customer email.
func (r *recordBookingRepo) ListByCustomer(ctx context.Context, email string) ([]models.Booking, error) {
	return r.list(ctx, func(b *models.Booking) bool {
		return strings.EqualFold(b.CustomerEmail, email)
	})
}

// ListByProvider returns the bookings targeting the given provider email.
func (r *recordBookingRepo) ListByProvider(ctx context.Context, email string) ([]models.Booking, error) {
	return r.list(ctx, func(b *models.Booking) bool {
		return strings.EqualFold(b.ProviderEmail, email)
	})
}

func (r *recordBookingRepo) list(ctx context.Context, match func(*models.Booking) bool) ([]models.Booking, error) {
	items, _, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Booking
	for i := range items {
		if match(&items[i]) {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// Update locates the booking by id, applies fn and persists the full
// collection. Returns ErrNotFound when the id is absent.
func (r *recordBookingRepo) Update(ctx context.Context, id string, fn func(*models.Booking) error) (*models.Booking, error) {
	var updated models.Booking
	_, err := r.coll.Mutate(ctx, func(items []models.Booking) ([]models.Booking, error) {
		for i := range items {
			if items[i].ID != id {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			updated = items[i]
			return items, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
