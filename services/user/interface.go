package user

import (
	"context"
	"time"

	accountRepo "homeserve/database/repository/account"
	providerRepo "homeserve/database/repository/provider"
	"homeserve/models"
	"homeserve/services/identity"
)

// AuthResponse is returned after registration or authentication.
type AuthResponse struct {
	Token          string                `json:"token"`
	Email          string                `json:"email"`
	Role           models.Role           `json:"role"`
	ProviderStatus models.ProviderStatus `json:"providerStatus,omitempty"`
}

// UserService fronts the identity gate for all three actor roles and owns the
// per-account payment preference.
type UserService interface {
	RegisterCustomer(ctx context.Context, email, password, confirmPassword string) (*AuthResponse, error)
	SignIn(ctx context.Context, email, password string, role models.Role) (*AuthResponse, error)
	SignOut(ctx context.Context, email string) error

	GetPaymentPreference(ctx context.Context, email string) (models.PaymentMethod, error)
	SetPaymentPreference(ctx context.Context, email string, method models.PaymentMethod) (*models.Account, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Gate      *identity.Gate
	Accounts  accountRepo.AccountRepository
	Providers providerRepo.ProviderRepository
	// TokenTTL defaults to 24h when zero.
	TokenTTL time.Duration
}

func (s *DefaultUserService) tokenTTL() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}
