package accountRepo

import (
	"context"
	"errors"

	recordsRepo "homeserve/database/repository/records"
	"homeserve/models"
)

// ErrNotFound indicates no account record matched the given email.
var ErrNotFound = errors.New("account not found")

// AccountRepository owns the customer accounts collection, which carries the
// per-account payment preference.
type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	// Ensure returns the account for email, creating it if absent.
	Ensure(ctx context.Context, email string) (*models.Account, error)
	// UpdateByEmail applies fn to the matching record, creating it first if
	// absent, and returns the updated record.
	UpdateByEmail(ctx context.Context, email string, fn func(*models.Account) error) (*models.Account, error)
}

type recordAccountRepo struct {
	coll *recordsRepo.Collection[models.Account]
}

// NewRecordAccountRepo returns an AccountRepository over the record store.
func NewRecordAccountRepo(store recordsRepo.Store) AccountRepository {
	return &recordAccountRepo{
		coll: recordsRepo.NewCollection[models.Account](store, recordsRepo.AccountsCollection),
	}
}
