package recordsRepo

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// casRetries bounds the read-modify-write retry loop on version conflicts.
const casRetries = 5

// Collection is a typed view over one named collection. Loading fails soft:
// an absent or malformed payload reads as an empty slice. Mutate is the only
// write path and re-reads before every attempt, so a conflicting writer never
// gets clobbered.
type Collection[T any] struct {
	store Store
	name  string
}

// NewCollection binds a typed collection to its store key.
func NewCollection[T any](store Store, name string) *Collection[T] {
	return &Collection[T]{store: store, name: name}
}

// Name returns the collection key.
func (c *Collection[T]) Name() string { return c.name }

// Load returns all records and the version they were read at.
func (c *Collection[T]) Load(ctx context.Context) ([]T, int64, error) {
	snap, err := c.store.Load(ctx, c.name)
	if err != nil {
		return nil, 0, fmt.Errorf("load collection %q: %w", c.name, err)
	}
	return c.decode(snap), snap.Version, nil
}

// Mutate applies fn to the current records and persists the result with a
// compare-and-swap, retrying on conflict. fn may return a modified slice or
// an error to abort without writing.
func (c *Collection[T]) Mutate(ctx context.Context, fn func(items []T) ([]T, error)) ([]T, error) {
	var lastErr error
	for attempt := 0; attempt < casRetries; attempt++ {
		snap, err := c.store.Load(ctx, c.name)
		if err != nil {
			return nil, fmt.Errorf("load collection %q: %w", c.name, err)
		}

		items, err := fn(c.decode(snap))
		if err != nil {
			return nil, err
		}

		payload, err := json.Marshal(items)
		if err != nil {
			return nil, fmt.Errorf("encode collection %q: %w", c.name, err)
		}

		err = c.store.Save(ctx, c.name, string(payload), snap.Version)
		if err == nil {
			return items, nil
		}
		if err != ErrConflict {
			return nil, fmt.Errorf("save collection %q: %w", c.name, err)
		}
		lastErr = err
	}
	return nil, fmt.Errorf("mutate collection %q: %w", c.name, lastErr)
}

func (c *Collection[T]) decode(snap Snapshot) []T {
	if snap.Data == "" {
		return nil
	}
	var items []T
	if err := json.Unmarshal([]byte(snap.Data), &items); err != nil {
		zap.L().Warn("malformed collection payload, treating as empty",
			zap.String("collection", c.name), zap.Error(err))
		return nil
	}
	return items
}
