package models

import "time"

// BookingStatus is the booking lifecycle state.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// bookingTransitions is the allowed state machine. Completed and Cancelled
// are terminal; anything not listed here is an invalid transition.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingPending:   {BookingConfirmed, BookingCancelled},
	BookingConfirmed: {BookingCompleted},
}

// Valid reports whether s is a known booking status.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transitions are defined from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo reports whether s may move to target.
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, t := range bookingTransitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// Booking is a scheduled engagement between a customer and a provider.
// Customer and provider are referenced by email; there is no foreign-key
// enforcement beyond read-time matching.
type Booking struct {
	ID            string        `json:"id"`
	CustomerEmail string        `json:"customerEmail"`
	ProviderEmail string        `json:"providerEmail"`
	ServiceTitle  string        `json:"serviceTitle"`
	Date          string        `json:"date,omitempty"`
	Time          string        `json:"time,omitempty"`
	Location      string        `json:"location,omitempty"`
	Price         float64       `json:"price,omitempty"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	IsPaid        bool          `json:"isPaid"`
	Reviewed      bool          `json:"reviewed"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"createdAt"`
	CompletedDate *time.Time    `json:"completedDate,omitempty"`
}

// Past reports whether the booking belongs in the "past" view.
func (b Booking) Past() bool {
	return b.Status.Terminal()
}

// BookingStats are the per-status counters shown on dashboards.
type BookingStats struct {
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}
