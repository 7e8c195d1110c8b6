package models

import "time"

// ProviderStatus is the canonical provider lifecycle state. The admin decides
// between Pending, Approved and Rejected; Accepted is the provider's own
// opt-in and is only reachable from Approved.
type ProviderStatus string

const (
	ProviderPending  ProviderStatus = "pending"
	ProviderApproved ProviderStatus = "approved"
	ProviderRejected ProviderStatus = "rejected"
	ProviderAccepted ProviderStatus = "accepted"
)

// Valid reports whether s is a known provider status.
func (s ProviderStatus) Valid() bool {
	switch s {
	case ProviderPending, ProviderApproved, ProviderRejected, ProviderAccepted:
		return true
	}
	return false
}

// AdminAssignable reports whether an administrator may set this status.
// Admin decisions are reversible, so any of the three administrative states
// may be re-applied at will; Accepted belongs to the provider alone.
func (s ProviderStatus) AdminAssignable() bool {
	switch s {
	case ProviderPending, ProviderApproved, ProviderRejected:
		return true
	}
	return false
}

// Provider is a service-offering account awaiting or holding marketplace
// approval. Email is the identity key and is stored lowercased.
type Provider struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`

	ServiceType        string `json:"serviceType"`
	ServiceTitle       string `json:"serviceTitle"`
	ServiceDescription string `json:"serviceDescription"`
	ServicePrice       string `json:"servicePrice,omitempty"`

	Experience string `json:"experience"`
	Location   string `json:"location"`
	// Optional reference to an uploaded qualification document.
	DocumentURL string `json:"documentUrl,omitempty"`

	Status    ProviderStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// FullName returns the provider's display name.
func (p Provider) FullName() string {
	return p.FirstName + " " + p.LastName
}

// CanReceiveBookings reports whether the provider has opted in to bookings.
func (p Provider) CanReceiveBookings() bool {
	return p.Status == ProviderAccepted
}
