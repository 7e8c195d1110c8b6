package bookingRepo

import (
	"context"
	"errors"

	recordsRepo "homeserve/database/repository/records"
	"homeserve/models"
)

// ErrNotFound indicates no booking record matched the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository owns the bookings collection. New bookings are always
// appended; status changes go through Update so the whole collection is
// rewritten under the store's compare-and-swap.
type BookingRepository interface {
	Append(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	GetAll(ctx context.Context) ([]models.Booking, error)
	ListByCustomer(ctx context.Context, email string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, email string) ([]models.Booking, error)

	// Update applies fn to the matching record inside the collection's
	// read-modify-write cycle and returns the updated record.
	Update(ctx context.Context, id string, fn func(*models.Booking) error) (*models.Booking, error)
}

type recordBookingRepo struct {
	coll *recordsRepo.Collection[models.Booking]
}

// NewRecordBookingRepo returns a BookingRepository over the record store.
func NewRecordBookingRepo(store recordsRepo.Store) BookingRepository {
	return &recordBookingRepo{
		coll: recordsRepo.NewCollection[models.Booking](store, recordsRepo.BookingsCollection),
	}
}
