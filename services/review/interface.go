package review

import (
	"context"
	"errors"

	bookingRepo "homeserve/database/repository/booking"
	reviewRepo "homeserve/database/repository/review"
	"homeserve/models"
)

var (
	// ErrRatingRequired is returned for a zero or out-of-range rating; no
	// state is mutated in that case.
	ErrRatingRequired = errors.New("a rating between 1 and 5 is required")
	// ErrAlreadyReviewed is returned when the booking was reviewed before.
	ErrAlreadyReviewed = errors.New("booking has already been reviewed")
	// ErrNotBookingOwner is returned when someone other than the booking's
	// customer submits the review.
	ErrNotBookingOwner = errors.New("booking belongs to another customer")
)

// SubmitRequest carries a customer's review of a booking.
type SubmitRequest struct {
	BookingID     string `json:"bookingId"`
	CustomerEmail string `json:"-"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}

// ReviewService attaches a rating and comment to a booking/provider pair and
// flags the booking as reviewed.
type ReviewService interface {
	Submit(ctx context.Context, req SubmitRequest) (*models.Review, error)
	ListByProvider(ctx context.Context, providerEmail string) ([]models.Review, error)
}

// DefaultReviewService is the production implementation.
type DefaultReviewService struct {
	Repo     reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
}
