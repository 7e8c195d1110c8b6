package handlers

// HandlerBundle aggregates all route handlers for registration.
type HandlerBundle struct {
	Auth     *AuthHandler
	Provider *ProviderHandler
	Booking  *BookingHandler
	Review   *ReviewHandler
	Account  *AccountHandler
	Admin    *AdminHandler
}
