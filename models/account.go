package models

import "time"

// PaymentMethod is how a customer prefers to settle bookings.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCash PaymentMethod = "cash"
)

// Valid reports whether m is a known payment method.
func (m PaymentMethod) Valid() bool {
	return m == PaymentCard || m == PaymentCash
}

// Role identifies the actor type carried in a session.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleProvider Role = "provider"
	RoleAdmin    Role = "admin"
)

// Account is a customer account. The payment preference is scoped per
// account, keyed by the (lowercased) email.
type Account struct {
	ID               string        `json:"id"`
	Email            string        `json:"email"`
	PreferredPayment PaymentMethod `json:"preferredPayment,omitempty"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}
