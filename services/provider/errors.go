package provider

import "errors"

var (
	// ErrNotApproved is returned when a provider tries to accept their
	// service before the admin has approved them.
	ErrNotApproved = errors.New("provider is not approved yet")
	// ErrStatusNotAssignable is returned for admin decisions outside the
	// administrative state set.
	ErrStatusNotAssignable = errors.New("status cannot be assigned by an administrator")
	// ErrUnknownServiceType is returned when registration names a service
	// type outside the catalog.
	ErrUnknownServiceType = errors.New("unknown service type")
	// ErrPasswordMismatch is returned when the confirmation password does
	// not match at registration.
	ErrPasswordMismatch = errors.New("passwords do not match")
)
