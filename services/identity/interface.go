// Package identity wraps the external authentication provider behind a gate
// that owns session state, retry policy and role resolution.
package identity

import (
	"context"
	"fmt"
)

// Error codes surfaced by identity providers.
const (
	// CodeVisibilityUnavailable is the transient availability error; it is
	// the only code the gate retries.
	CodeVisibilityUnavailable = "visibility-check-was-unavailable"
	CodeInvalidCredentials    = "invalid-credentials"
	CodeEmailInUse            = "email-already-in-use"
	CodeUserNotFound          = "user-not-found"
)

// Error is a typed identity-boundary failure with a code discriminator.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Transient reports whether the error may succeed on retry.
func (e *Error) Transient() bool {
	return e.Code == CodeVisibilityUnavailable
}

// NewError builds a typed identity error.
func NewError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Provider is the opaque external authentication collaborator.
type Provider interface {
	CreateAccount(ctx context.Context, email, password string) error
	SignIn(ctx context.Context, email, password string) error
	SignOut(ctx context.Context, email string) error
}
