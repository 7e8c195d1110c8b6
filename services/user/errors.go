package user

import "errors"

var (
	// ErrPasswordMismatch is returned when the confirmation password does
	// not match at registration.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrNotAdmin is returned for an admin sign-in by a non-admin email.
	ErrNotAdmin = errors.New("email is not an administrator")
	// ErrProviderPending is returned for a provider sign-in before the
	// administrative approval.
	ErrProviderPending = errors.New("account is pending approval")
	// ErrProviderRejected is returned for a rejected provider's sign-in.
	ErrProviderRejected = errors.New("account application was rejected")
	// ErrNoProviderAccount is returned when no provider record exists for
	// the email.
	ErrNoProviderAccount = errors.New("no provider account found")
)
