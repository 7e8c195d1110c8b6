package provider

import (
	"context"

	providerRepo "homeserve/database/repository/provider"
	"homeserve/models"
	"homeserve/services/identity"
)

// RegistrationRequest carries the provider sign-up form, credentials
// included: registering creates both the provider record and the identity
// account the provider later signs in with.
type RegistrationRequest struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	ServiceType     string `json:"serviceType"`
	Experience      string `json:"experience"`
	Location        string `json:"location"`
}

// ProviderService drives the provider lifecycle: registration into pending,
// the administrative approve/reject decision, and the provider's own opt-in
// to receive bookings.
type ProviderService interface {
	Register(ctx context.Context, req RegistrationRequest) (*models.Provider, error)

	GetByID(ctx context.Context, id string) (*models.Provider, error)
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	GetAll(ctx context.Context) ([]models.Provider, error)
	ListAccepted(ctx context.Context) ([]models.Provider, error)
	Status(ctx context.Context, email string) (models.ProviderStatus, error)

	// Decide is the administrative status decision; it is reversible and
	// idempotent.
	Decide(ctx context.Context, id string, status models.ProviderStatus) (*models.Provider, error)
	// AcceptService is the provider's opt-in, valid only once approved.
	AcceptService(ctx context.Context, email string) (*models.Provider, error)
	// AttachDocument stores the uploaded qualification document reference.
	AttachDocument(ctx context.Context, email, documentURL string) (*models.Provider, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
	Gate *identity.Gate
}
