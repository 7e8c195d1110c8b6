package review

import (
	"context"
	"strings"
	"time"

	"homeserve/models"

	"go.uber.org/zap"
)

// Submit validates the rating, flags the source booking reviewed, and appends
// the review record. The reviewed flag doubles as the duplicate guard: a
// booking takes exactly one review. The flag is claimed first, inside the
// booking collection's own mutation, so two racing submissions cannot both
// append.
func (s *DefaultReviewService) Submit(ctx context.Context, req SubmitRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, ErrRatingRequired
	}

	var reviewed models.Booking
	_, err := s.Bookings.Update(ctx, req.BookingID, func(b *models.Booking) error {
		if !strings.EqualFold(b.CustomerEmail, req.CustomerEmail) {
			return ErrNotBookingOwner
		}
		if b.Reviewed {
			return ErrAlreadyReviewed
		}
		b.Reviewed = true
		reviewed = *b
		return nil
	})
	if err != nil {
		return nil, err
	}

	rev := models.Review{
		BookingID:     reviewed.ID,
		ProviderEmail: reviewed.ProviderEmail,
		CustomerEmail: reviewed.CustomerEmail,
		Rating:        req.Rating,
		Comment:       req.Comment,
		ServiceTitle:  reviewed.ServiceTitle,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.Repo.Append(ctx, &rev); err != nil {
		return nil, err
	}

	zap.L().Info("review submitted",
		zap.String("booking", rev.BookingID),
		zap.String("provider", rev.ProviderEmail),
		zap.Int("rating", rev.Rating))
	return &rev, nil
}

// ListByProvider returns the reviews left for the given provider.
func (s *DefaultReviewService) ListByProvider(ctx context.Context, providerEmail string) ([]models.Review, error) {
	return s.Repo.ListByProvider(ctx, providerEmail)
}
