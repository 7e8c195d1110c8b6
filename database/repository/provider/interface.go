package providerRepo

import (
	"context"
	"errors"

	recordsRepo "homeserve/database/repository/records"
	"homeserve/models"
)

var (
	// ErrNotFound indicates no provider record matched the given key.
	ErrNotFound = errors.New("provider not found")
	// ErrDuplicateEmail indicates a provider already exists for the email.
	ErrDuplicateEmail = errors.New("provider with this email already exists")
)

// ProviderRepository owns the providers collection. Emails are normalized to
// lowercase at this boundary; providers are never hard-deleted.
type ProviderRepository interface {
	Create(ctx context.Context, provider *models.Provider) error
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	GetByEmail(ctx context.Context, email string) (*models.Provider, error)
	GetAll(ctx context.Context) ([]models.Provider, error)
	ListByStatus(ctx context.Context, status models.ProviderStatus) ([]models.Provider, error)

	// UpdateByID applies fn to the matching record inside the collection's
	// read-modify-write cycle and returns the updated record.
	UpdateByID(ctx context.Context, id string, fn func(*models.Provider) error) (*models.Provider, error)
	// UpdateByEmail is UpdateByID keyed by (lowercased) email.
	UpdateByEmail(ctx context.Context, email string, fn func(*models.Provider) error) (*models.Provider, error)
}

type recordProviderRepo struct {
	coll *recordsRepo.Collection[models.Provider]
}

// NewRecordProviderRepo returns a ProviderRepository over the record store.
func NewRecordProviderRepo(store recordsRepo.Store) ProviderRepository {
	return &recordProviderRepo{
		coll: recordsRepo.NewCollection[models.Provider](store, recordsRepo.ProvidersCollection),
	}
}
