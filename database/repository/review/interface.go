package reviewRepo

import (
	"context"

	recordsRepo "homeserve/database/repository/records"
	"homeserve/models"
)

// ReviewRepository owns the reviews collection. Reviews are append-only.
type ReviewRepository interface {
	Append(ctx context.Context, review *models.Review) error
	GetAll(ctx context.Context) ([]models.Review, error)
	ListByProvider(ctx context.Context, providerEmail string) ([]models.Review, error)
	ListByBooking(ctx context.Context, bookingID string) ([]models.Review, error)
}

type recordReviewRepo struct {
	coll *recordsRepo.Collection[models.Review]
}

// NewRecordReviewRepo returns a ReviewRepository over the record store.
func NewRecordReviewRepo(store recordsRepo.Store) ReviewRepository {
	return &recordReviewRepo{
		coll: recordsRepo.NewCollection[models.Review](store, recordsRepo.ReviewsCollection),
	}
}
