package reviewRepo

import (
	"context"
	"strings"
	"time"

	"homeserve/models"

	"github.com/google/uuid"
)

// Append inserts a new review record.
func (r *recordReviewRepo) Append(ctx context.Context, review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.ProviderEmail = strings.ToLower(strings.TrimSpace(review.ProviderEmail))
	review.CustomerEmail = strings.ToLower(strings.TrimSpace(review.CustomerEmail))
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now().UTC()
	}

	_, err := r.coll.Mutate(ctx, func(items []models.Review) ([]models.Review, error) {
		return append(items, *review), nil
	})
	return err
}

// GetAll returns every review record.
func (r *recordReviewRepo) GetAll(ctx context.Context) ([]models.Review, error) {
	items, _, err := r.coll.Load(ctx)
	return items, err
}

// ListByProvider returns the reviews left for the given provider email.
func (r *recordReviewRepo) ListByProvider(ctx context.Context, providerEmail string) ([]models.Review, error) {
	items, _, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Review
	for _, rev := range items {
		if strings.EqualFold(rev.ProviderEmail, providerEmail) {
			out = append(out, rev)
		}
	}
	return out, nil
}

// ListByBooking returns the reviews attached to the given booking id.
func (r *recordReviewRepo) ListByBooking(ctx context.Context, bookingID string) ([]models.Review, error) {
	items, _, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Review
	for _, rev := range items {
		if rev.BookingID == bookingID {
			out = append(out, rev)
		}
	}
	return out, nil
}
