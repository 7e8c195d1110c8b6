package accountRepo

import (
	"context"
	"strings"
	"time"

	"homeserve/models"

	"github.com/google/uuid"
)

// GetByEmail returns the account with the given email.
func (r *recordAccountRepo) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	items, _, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if strings.EqualFold(items[i].Email, email) {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// Ensure returns the account for email, creating it with defaults if absent.
func (r *recordAccountRepo) Ensure(ctx context.Context, email string) (*models.Account, error) {
	return r.UpdateByEmail(ctx, email, func(*models.Account) error { return nil })
}

// UpdateByEmail applies fn to the account, creating the record if needed.
func (r *recordAccountRepo) UpdateByEmail(ctx context.Context, email string, fn func(*models.Account) error) (*models.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var updated models.Account
	_, err := r.coll.Mutate(ctx, func(items []models.Account) ([]models.Account, error) {
		for i := range items {
			if !strings.EqualFold(items[i].Email, email) {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			items[i].UpdatedAt = time.Now().UTC()
			updated = items[i]
			return items, nil
		}

		now := time.Now().UTC()
		acct := models.Account{
			ID:        uuid.New().String(),
			Email:     email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := fn(&acct); err != nil {
			return nil, err
		}
		updated = acct
		return append(items, acct), nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
