package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusTransitions(t *testing.T) {
	assert.True(t, BookingPending.CanTransitionTo(BookingConfirmed))
	assert.True(t, BookingPending.CanTransitionTo(BookingCancelled))
	assert.True(t, BookingConfirmed.CanTransitionTo(BookingCompleted))

	assert.False(t, BookingPending.CanTransitionTo(BookingCompleted))
	assert.False(t, BookingConfirmed.CanTransitionTo(BookingPending))
	assert.False(t, BookingCompleted.CanTransitionTo(BookingConfirmed))
	assert.False(t, BookingCancelled.CanTransitionTo(BookingPending))
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, BookingPending.Terminal())
	assert.False(t, BookingConfirmed.Terminal())
	assert.True(t, BookingCompleted.Terminal())
	assert.True(t, BookingCancelled.Terminal())
}

func TestProviderStatusAdminAssignable(t *testing.T) {
	assert.True(t, ProviderPending.AdminAssignable())
	assert.True(t, ProviderApproved.AdminAssignable())
	assert.True(t, ProviderRejected.AdminAssignable())
	assert.False(t, ProviderAccepted.AdminAssignable())
}

func TestCanReceiveBookings(t *testing.T) {
	assert.False(t, Provider{Status: ProviderApproved}.CanReceiveBookings())
	assert.True(t, Provider{Status: ProviderAccepted}.CanReceiveBookings())
}
