package booking

import (
	"context"

	accountRepo "homeserve/database/repository/account"
	bookingRepo "homeserve/database/repository/booking"
	providerRepo "homeserve/database/repository/provider"
	"homeserve/models"
)

// CreateRequest carries a customer's booking request.
type CreateRequest struct {
	CustomerEmail string `json:"-"`
	ProviderEmail string `json:"providerEmail"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
	Location      string `json:"location,omitempty"`
	// Optional override; defaults to the customer's payment preference,
	// falling back to cash.
	PaymentMethod models.PaymentMethod `json:"paymentMethod,omitempty"`
}

// BookingViews is the upcoming/past split derived on the read side.
type BookingViews struct {
	Upcoming []models.Booking    `json:"upcoming"`
	Past     []models.Booking    `json:"past"`
	Stats    models.BookingStats `json:"stats"`
}

// BookingService drives the booking lifecycle: creation into pending, the
// guarded status transitions, the simulated payment, and the read-side views.
type BookingService interface {
	Create(ctx context.Context, req CreateRequest) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)

	// UpdateStatus moves a booking along the transition table on behalf of
	// the given actor; out-of-order transitions are rejected, and the actor
	// must be the booking's own customer or provider (admins excepted).
	UpdateStatus(ctx context.Context, id string, target models.BookingStatus, actor models.Role, actorEmail string) (*models.Booking, error)

	// Pay runs the simulated payment and confirms the booking.
	Pay(ctx context.Context, id, customerEmail string) (*models.Booking, error)

	CustomerViews(ctx context.Context, customerEmail string) (*BookingViews, error)
	ProviderViews(ctx context.Context, providerEmail string) (*BookingViews, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
	Accounts  accountRepo.AccountRepository
}
