package models

import "time"

// Review is customer feedback tied to a specific booking/provider pair.
type Review struct {
	ID            string    `json:"id"`
	BookingID     string    `json:"bookingId"`
	ProviderEmail string    `json:"providerEmail"`
	CustomerEmail string    `json:"customerEmail"`
	Rating        int       `json:"rating"` // 1..5
	Comment       string    `json:"comment,omitempty"`
	ServiceTitle  string    `json:"serviceTitle,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
