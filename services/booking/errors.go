package booking

import (
	"errors"
	"fmt"

	"homeserve/models"
)

var (
	// ErrProviderNotAccepting is returned when booking a provider that has
	// not accepted their service.
	ErrProviderNotAccepting = errors.New("provider is not accepting bookings")
	// ErrActorNotAllowed is returned when the actor may not perform the
	// requested transition (customers may only cancel).
	ErrActorNotAllowed = errors.New("actor may not perform this status change")
	// ErrNotBookingOwner is returned when a customer operates on someone
	// else's booking.
	ErrNotBookingOwner = errors.New("booking belongs to another customer")
	// ErrNotBookingProvider is returned when a provider operates on a
	// booking addressed to someone else.
	ErrNotBookingProvider = errors.New("booking is addressed to another provider")
	// ErrAlreadyPaid is returned when paying a booking twice.
	ErrAlreadyPaid = errors.New("booking is already paid")
)

// InvalidTransitionError reports a status change outside the transition
// table, including attempts to leave a terminal state.
type InvalidTransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid booking transition %s -> %s", e.From, e.To)
}
