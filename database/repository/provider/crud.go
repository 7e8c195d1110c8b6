package providerRepo

import (
	"context"
	"strings"
	"time"

	"homeserve/models"

	"github.com/google/uuid"
)

// Create inserts a new provider record. The uniqueness check runs inside the
// same mutation that appends, so two racing registrations cannot both win.
func (r *recordProviderRepo) Create(ctx context.Context, provider *models.Provider) error {
	if provider.ID == "" {
		provider.ID = uuid.New().String()
	}
	provider.Email = strings.ToLower(strings.TrimSpace(provider.Email))
	now := time.Now().UTC()
	provider.CreatedAt = now
	provider.UpdatedAt = now

	_, err := r.coll.Mutate(ctx, func(items []models.Provider) ([]models.Provider, error) {
		for _, p := range items {
			if strings.EqualFold(p.Email, provider.Email) {
				return nil, ErrDuplicateEmail
			}
		}
		return append(items, *provider), nil
	})
	return err
}

// GetByID returns the provider with the given id.
func (r *recordProviderRepo) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	items, _, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrNotFound
}

// GetByEmail returns the provider with the given email, matched case-insensitively.
func (r *recordProviderRepo) GetByEmail(ctx context.Context, email string) (*models.Provider, error) {
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

// GetAll returns every provider record.
func (r *recordProviderRepo) GetAll(ctx context.Context) ([]models.Provider, error) {
	items, _, err := r.coll.Load(ctx)
	return items, err
}

// ListByStatus returns providers currently in the given status.
func (r *recordProviderRepo) ListByStatus(ctx context.Context, status models.ProviderStatus) ([]models.Provider, error) {
	items, _, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Provider
	for _, p := range items {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *recordProviderRepo) UpdateByID(ctx context.Context, id string, fn func(*models.Provider) error) (*models.Provider, error) {
	return r.update(ctx, func(p *models.Provider) bool { return p.ID == id }, fn)
}

func (r *recordProviderRepo) UpdateByEmail(ctx context.Context, email string, fn func(*models.Provider) error) (*models.Provider, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.update(ctx, func(p *models.Provider) bool { return strings.EqualFold(p.Email, email) }, fn)
}

func (r *recordProviderRepo) update(ctx context.Context, match func(*models.Provider) bool, fn func(*models.Provider) error) (*models.Provider, error) {
	var updated models.Provider
	_, err := r.coll.Mutate(ctx, func(items []models.Provider) ([]models.Provider, error) {
		for i := range items {
			if !match(&items[i]) {
				continue
			}
			if err := fn(&items[i]); err != nil {
				return nil, err
			}
			items[i].UpdatedAt = time.Now().UTC()
			updated = items[i]
			return items, nil
		}
		return nil, ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
